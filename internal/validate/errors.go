package validate

import "github.com/nicowilhelm/routedb/internal/entity"

// ErrIncompleteData is the IncompleteData taxonomy entry (spec §7). It is
// the same sentinel entity.FixInvalidData methods raise; re-exported here so
// callers of this package never need to import internal/entity just to
// check the error kind.
var ErrIncompleteData = entity.ErrIncompleteData

// IncompleteDataError is the same type entity.Summit.FixInvalidData and
// entity.Route.FixInvalidData raise, re-exported under this package's name
// for callers that only depend on validate.
type IncompleteDataError = entity.IncompleteDataError
