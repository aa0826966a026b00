package gradeparse

import (
	"errors"
	"fmt"
)

// ErrValueParse is the ValueParse taxonomy entry: a grade (or similarly
// shaped) string did not match the expected format.
var ErrValueParse = errors.New("value parse error")

// ValueParseError carries the detail behind ErrValueParse.
type ValueParseError struct {
	// Kind names what was being parsed, e.g. "climbing grade".
	Kind string
	// Value is the raw string that failed to parse.
	Value string
}

// Error implements error.
func (e *ValueParseError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Kind, e.Value)
}

// Is reports whether target is ErrValueParse.
func (e *ValueParseError) Is(target error) bool {
	return target == ErrValueParse
}
