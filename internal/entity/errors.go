package entity

import (
	"errors"
	"fmt"
)

// ErrIncompleteData is the sentinel matched by every IncompleteDataError,
// for use with errors.Is.
var ErrIncompleteData = errors.New("incomplete data")

// IncompleteDataError is raised by FixInvalidData when an entity is missing
// mandatory data that cannot be repaired automatically. The VALIDATE stage
// reacts to it by dropping the offending entity (and, for routes, the whole
// owning summit).
type IncompleteDataError struct {
	// Entity names the kind of entity that could not be repaired, e.g.
	// "summit" or "route".
	Entity string
	// MissingAttribute names the empty/invalid attribute.
	MissingAttribute string
}

// Error implements error.
func (e *IncompleteDataError) Error() string {
	return fmt.Sprintf("%s is missing required %q data", e.Entity, e.MissingAttribute)
}

// Is reports whether target is ErrIncompleteData.
func (e *IncompleteDataError) Is(target error) bool {
	return target == ErrIncompleteData
}
