package source

// ForbiddenSummitNames is the hard-coded set of summit names that are
// non-climbable or off-limits even though the upstream site still lists
// them — summits that were accessible in the past but have since been
// closed.
var ForbiddenSummitNames = map[string]struct{}{
	"Adlerlochturm":        {},
	"Hirschsuhlenturm":     {},
	"Kleiner Turm":         {},
	"Litfaßsäule":          {},
	"Schwarze Spitze":      {},
	"Schwarzschlüchteturm": {},
	"Slawe":                {},
	"Wobstspitze":          {},
}

// IsForbiddenSummitName reports whether name names a non-climbable summit.
func IsForbiddenSummitName(name string) bool {
	_, forbidden := ForbiddenSummitNames[name]
	return forbidden
}

// StaleEntityIDs is the hard-coded set of upstream entity IDs that the
// remote site still returns but which are actually caves or otherwise
// stale, non-route entries rather than climbing routes.
var StaleEntityIDs = map[int]struct{}{}

// IsStaleEntityID reports whether id names a stale, non-route entity.
func IsStaleEntityID(id int) bool {
	_, stale := StaleEntityIDs[id]
	return stale
}
