package pipe

import (
	"errors"
	"fmt"
)

// ErrEntityNotFound is the sentinel wrapped by every NotFoundError. Callers
// that only care whether a lookup failed, not which kind of id was involved,
// can match on this with errors.Is.
var ErrEntityNotFound = errors.New("entity not found")

// NotFoundError reports that a mutating call referenced an id unknown to the
// Pipe — a SummitID passed to AddRoute, or a RouteID passed to AddPost.
type NotFoundError struct {
	Kind string // "summit" or "route"
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pipe: %s id %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrEntityNotFound
}
