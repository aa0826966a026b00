package merge

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel matched by every ConflictError, for use with
// errors.Is.
var ErrConflict = errors.New("merge conflict")

// ConflictError reports that two observations of the same entity disagree on
// an attribute that the merger has no basis to reconcile automatically. By
// design this aborts the MERGE stage: a person must resolve which
// observation is correct.
type ConflictError struct {
	// EntityType is "summit" or "route".
	EntityType string
	// Name identifies the entity in logs, e.g. its display name or route_name.
	Name string
	// Attribute names the conflicting field, e.g. "official name", "position",
	// or "grade".
	Attribute string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("merge conflict on %s %q: %s", e.EntityType, e.Name, e.Attribute)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
