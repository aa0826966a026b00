package pipeline

import (
	"context"

	"github.com/nicowilhelm/routedb/internal/applog"
	"github.com/nicowilhelm/routedb/internal/pipe"
)

// FilterFactory supplies the filters to run for a given stage. Filters within
// a stage may run in any order; the order returned here is the order the
// engine runs them in.
type FilterFactory interface {
	FiltersFor(stage Stage) []Filter
}

// StaticFilterFactory is a FilterFactory backed by a fixed, precomputed
// mapping, as built by internal/wiring.
type StaticFilterFactory map[Stage][]Filter

// FiltersFor implements FilterFactory.
func (f StaticFilterFactory) FiltersFor(stage Stage) []Filter {
	return f[stage]
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	logger applog.Logger
}

// WithLogger sets the Engine's logger. The default is applog.NopLogger.
func WithLogger(logger applog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

func applyOptions(opts ...Option) *engineConfig {
	cfg := &engineConfig{logger: applog.NopLogger{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Engine runs the fixed IMPORTING -> MERGING -> VALIDATION -> WRITING stage
// sequence, handing each stage's output Pipe to the next stage as its input.
// Scheduling is single-threaded and cooperative: stages run serially, and
// within a stage, filters run serially.
type Engine struct {
	factory FilterFactory
	logger  applog.Logger
}

// NewEngine constructs an Engine backed by factory.
func NewEngine(factory FilterFactory, opts ...Option) *Engine {
	cfg := applyOptions(opts...)
	return &Engine{factory: factory, logger: cfg.logger}
}

// Run executes every stage in order. The first stage receives an empty input
// Pipe. On any filter error, Run aborts immediately and returns a *StageError
// identifying the stage and filter responsible; no later stage runs, and in
// particular WRITING never starts if an earlier stage failed.
func (e *Engine) Run(ctx context.Context) error {
	input := pipe.New()

	for _, stage := range Stages {
		e.logger.Info("stage starting", "stage", stage.String())

		output := pipe.New()
		filters := e.factory.FiltersFor(stage)

		for _, filter := range filters {
			if err := runFilter(ctx, stage, filter, input, output); err != nil {
				e.logger.Error("stage aborted", "stage", stage.String(), "filter", filter.Name(), "error", err)
				return err
			}
		}

		e.logger.Info("stage complete", "stage", stage.String(), "filters", len(filters))
		input = output
	}

	return nil
}

func runFilter(ctx context.Context, stage Stage, filter Filter, input, output *pipe.Pipe) error {
	var err error
	switch f := filter.(type) {
	case SourceFilter:
		err = f.Run(ctx, output)
	case TransformFilter:
		err = f.Run(ctx, input, output)
	case SinkFilter:
		err = f.Run(ctx, input)
	default:
		return &UnknownFilterShapeError{Stage: stage, Filter: filter.Name()}
	}

	if err != nil {
		return &StageError{Stage: stage, Filter: filter.Name(), Cause: err}
	}
	return nil
}
