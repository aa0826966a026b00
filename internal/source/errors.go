// Package source holds the IMPORT-stage deny-lists shared by concrete
// source filters, and the DataProcessing taxonomy entry they raise when
// upstream data cannot be parsed.
package source

import (
	"errors"
	"fmt"
)

// ErrDataProcessing is the DataProcessing taxonomy entry: upstream data was
// malformed or otherwise unparseable.
var ErrDataProcessing = errors.New("data processing error")

// DataProcessingError carries the detail behind ErrDataProcessing.
type DataProcessingError struct {
	// Source names the originating source filter, e.g. "teufelsturm.de".
	Source string
	// Detail describes what was malformed.
	Detail string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements error.
func (e *DataProcessingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Source, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Detail)
}

// Unwrap returns the underlying cause, if any.
func (e *DataProcessingError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrDataProcessing.
func (e *DataProcessingError) Is(target error) bool {
	return target == ErrDataProcessing
}
