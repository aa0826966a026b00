package merge

import "github.com/nicowilhelm/routedb/internal/entity"

// matchRadiusMeters is the distance within which two summit observations'
// representative positions are considered the same physical point.
const matchRadiusMeters = 200

// canonicalRoute accumulates the routes (and their posts) that have folded
// into a single logical route, keyed by exact RouteName equality.
type canonicalRoute struct {
	route *entity.Route
	posts []*entity.Post
}

// canonicalSummit accumulates every observation that has been determined to
// describe the same physical summit.
type canonicalSummit struct {
	summit *entity.Summit

	routesByName map[string]*canonicalRoute
	routeOrder   []string // first-observation order, for deterministic WRITE order
}

func newCanonicalSummit(s *entity.Summit) *canonicalSummit {
	return &canonicalSummit{
		summit:       s,
		routesByName: make(map[string]*canonicalRoute),
	}
}

// addRoute folds r (with its posts) into this canonical summit, applying the
// route matching predicate (exact RouteName equality) and enrichment rules.
func (c *canonicalSummit) addRoute(r *entity.Route, posts []*entity.Post) error {
	existing, ok := c.routesByName[r.RouteName]
	if !ok {
		c.routesByName[r.RouteName] = &canonicalRoute{route: r, posts: posts}
		c.routeOrder = append(c.routeOrder, r.RouteName)
		return nil
	}

	if err := enrichRoute(existing.route, r); err != nil {
		return err
	}
	existing.posts = append(existing.posts, posts...)
	return nil
}

// foldIn merges other into c: c's summit is enriched with other's summit,
// and every route (with its posts) that other carries is folded into c's
// route set by the route matching predicate. other is discarded by the
// caller afterward.
func (c *canonicalSummit) foldIn(other *canonicalSummit) error {
	if err := enrichSummit(c.summit, other.summit); err != nil {
		return err
	}
	for _, name := range other.routeOrder {
		cr := other.routesByName[name]
		if err := c.addRoute(cr.route, cr.posts); err != nil {
			return err
		}
	}
	return nil
}

// matches reports whether an observation with the given normalized names and
// representative position describes the same physical summit as c: the
// normalized-name sets must intersect, AND at least one side's position must
// be undefined or both positions must be mutually within matchRadiusMeters.
func (c *canonicalSummit) matches(names []entity.NormalizedName, position entity.Position) bool {
	if !namesIntersect(c.summit.PossibleIdentifiers(), names) {
		return false
	}
	return positionsCompatible(c.summit.RepresentativePosition(), position)
}

func positionsCompatible(a, b entity.Position) bool {
	return a.IsUndefined() || b.IsUndefined() || a.WithinRadius(b, matchRadiusMeters)
}

func namesIntersect(a, b []entity.NormalizedName) bool {
	set := make(map[entity.NormalizedName]struct{}, len(a))
	for _, n := range a {
		set[n] = struct{}{}
	}
	for _, n := range b {
		if _, ok := set[n]; ok {
			return true
		}
	}
	return false
}
