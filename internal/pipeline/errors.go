package pipeline

import "fmt"

// StageError wraps the error a filter returned, with enough context to
// identify exactly where a run aborted. The engine never runs a later stage
// after one of these is produced.
type StageError struct {
	Stage  Stage
	Filter string
	Cause  error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: filter %q failed: %v", e.Stage, e.Filter, e.Cause)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}

// UnknownFilterShapeError is returned when a filter registered for a stage
// implements none of SourceFilter, TransformFilter, or SinkFilter.
type UnknownFilterShapeError struct {
	Stage  Stage
	Filter string
}

func (e *UnknownFilterShapeError) Error() string {
	return fmt.Sprintf("%s: filter %q implements none of SourceFilter, TransformFilter, SinkFilter", e.Stage, e.Filter)
}
