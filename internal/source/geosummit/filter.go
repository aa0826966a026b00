// Package geosummit is a minimal, illustrative IMPORT-stage source filter
// standing in for a geographic data service that resolves summit names to
// coordinates. It issues one JSON request per batch of summit names and
// turns the response into Summit entities carrying the resolved name as
// official name plus a high-grade position — no name-merging logic of its
// own, since that is MERGE's job once the summits reach the Pipe.
package geosummit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nicowilhelm/routedb/internal/applog"
	"github.com/nicowilhelm/routedb/internal/entity"
	"github.com/nicowilhelm/routedb/internal/pipe"
	"github.com/nicowilhelm/routedb/internal/source"
	"github.com/nicowilhelm/routedb/internal/transport"
)

const queryURL = "https://geosummit.example.org/api/v1/summits"

// defaultBatchSize bounds how many summit names are sent in a single
// request, matching the batching behavior of the original geographic data
// client.
const defaultBatchSize = 50

// coordinate is the wire shape of a single summit record in the response
// payload.
type coordinate struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Option configures a Filter.
type Option func(*Filter)

// WithLogger sets the Filter's logger. The default is applog.NopLogger.
func WithLogger(logger applog.Logger) Option {
	return func(f *Filter) {
		f.logger = logger
	}
}

// WithBatchSize overrides the number of summit names requested per call.
func WithBatchSize(n int) Option {
	return func(f *Filter) {
		if n > 0 {
			f.batchSize = n
		}
	}
}

// WithExtraForbiddenNames adds names to the forbidden-summit check alongside
// source.ForbiddenSummitNames, for names supplied via the run config's
// extra_forbidden_summit_names.
func WithExtraForbiddenNames(names []string) Option {
	return func(f *Filter) {
		for _, name := range names {
			f.extraForbidden[name] = struct{}{}
		}
	}
}

// Filter is an illustrative pipeline.SourceFilter resolving a fixed list of
// summit names to positions via a geographic data service.
type Filter struct {
	http           transport.HTTPBoundary
	summitNames    []string
	batchSize      int
	logger         applog.Logger
	extraForbidden map[string]struct{}
}

// New constructs a Filter that resolves summitNames via http.
func New(http transport.HTTPBoundary, summitNames []string, opts ...Option) *Filter {
	f := &Filter{
		http:           http,
		summitNames:    summitNames,
		batchSize:      defaultBatchSize,
		logger:         applog.NopLogger{},
		extraForbidden: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Filter) isForbidden(name string) bool {
	if source.IsForbiddenSummitName(name) {
		return true
	}
	_, ok := f.extraForbidden[name]
	return ok
}

// Name implements pipeline.Filter.
func (f *Filter) Name() string { return "geosummit" }

// Run implements pipeline.SourceFilter.
func (f *Filter) Run(ctx context.Context, output *pipe.Pipe) error {
	var resolved, skipped int
	for start := 0; start < len(f.summitNames); start += f.batchSize {
		end := min(start+f.batchSize, len(f.summitNames))
		batch := f.summitNames[start:end]

		payload, err := json.Marshal(struct {
			Names []string `json:"names"`
		}{Names: batch})
		if err != nil {
			return err
		}

		raw, err := f.http.RetrieveJSON(ctx, queryURL, nil, payload)
		if err != nil {
			f.logger.Warn("fetching summit batch failed, skipping batch", "batch_start", start, "error", err)
			skipped += len(batch)
			continue
		}

		var coordinates []coordinate
		if err := json.Unmarshal(raw, &coordinates); err != nil {
			f.logger.Warn("malformed response payload, skipping batch",
				"batch_start", start,
				"error", &source.DataProcessingError{Source: "geosummit", Detail: "malformed response payload", Cause: err})
			skipped += len(batch)
			continue
		}

		for _, c := range coordinates {
			if f.isForbidden(c.Name) {
				f.logger.Debug("ignoring forbidden summit", "summit", c.Name)
				skipped++
				continue
			}

			position, err := entity.FromDecimalDegrees(c.Latitude, c.Longitude)
			if err != nil {
				f.logger.Warn("summit has an invalid position, skipping",
					"summit", c.Name,
					"error", &source.DataProcessingError{
						Source: "geosummit",
						Detail: fmt.Sprintf("summit %q has an invalid position", c.Name),
						Cause:  err,
					})
				skipped++
				continue
			}

			summit := entity.NewSummit()
			summit.SetOfficialName(c.Name)
			summit.HighGradePosition = position
			output.AddSummit(summit)
			resolved++
		}
	}

	f.logger.Info("geosummit import complete", "resolved", resolved, "skipped", skipped)
	return nil
}
