package pipeline

import (
	"context"

	"github.com/nicowilhelm/routedb/internal/pipe"
)

// Filter is the common marker for the three filter shapes the engine
// dispatches on. A filter participates in exactly one of SourceFilter,
// TransformFilter, or SinkFilter — Go has no sealed interfaces, so the engine
// enforces this with a runtime type switch rather than the compiler.
type Filter interface {
	// Name identifies the filter in logs and error messages.
	Name() string
}

// SourceFilter writes to an output Pipe only. IMPORTING-stage filters are
// source filters: they have no predecessor stage to read from.
type SourceFilter interface {
	Filter
	Run(ctx context.Context, output *pipe.Pipe) error
}

// TransformFilter reads an input Pipe and writes an output Pipe. MERGING and
// VALIDATION-stage filters are transform filters.
type TransformFilter interface {
	Filter
	Run(ctx context.Context, input, output *pipe.Pipe) error
}

// SinkFilter reads an input Pipe and writes externally (to a database, a
// file, a remote service). WRITING-stage filters are sink filters.
type SinkFilter interface {
	Filter
	Run(ctx context.Context, input *pipe.Pipe) error
}
