package merge

import (
	"context"

	"github.com/nicowilhelm/routedb/internal/applog"
	"github.com/nicowilhelm/routedb/internal/entity"
	"github.com/nicowilhelm/routedb/internal/pipe"
)

// Option configures a Filter.
type Option func(*Filter)

// WithLogger sets the Filter's logger. The default is applog.NopLogger.
func WithLogger(logger applog.Logger) Option {
	return func(f *Filter) {
		f.logger = logger
	}
}

// Filter is the MERGING-stage pipeline.TransformFilter. It consolidates
// summit (and route) observations that describe the same physical entity,
// building an in-memory canonical set before writing it to the output Pipe
// in first-observation order.
type Filter struct {
	logger applog.Logger
}

// New constructs a Filter.
func New(opts ...Option) *Filter {
	f := &Filter{logger: applog.NopLogger{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name implements pipeline.Filter.
func (f *Filter) Name() string { return "merge" }

// Run implements pipeline.TransformFilter.
func (f *Filter) Run(_ context.Context, input, output *pipe.Pipe) error {
	var canonical []*canonicalSummit

	// get_all_normalized_names is repeatedly needed for the same incoming
	// summit while it is tested against every canonical entry; memoize it
	// keyed by the summit's object identity.
	identityCache := make(map[*entity.Summit][]entity.NormalizedName)

	for summitID, s := range input.IterSummits() {
		incoming := newCanonicalSummit(s)
		for routeID, r := range input.IterRoutesOf(summitID) {
			var posts []*entity.Post
			for post := range input.IterPostsOf(routeID) {
				posts = append(posts, post)
			}
			if err := incoming.addRoute(r, posts); err != nil {
				return err
			}
		}

		names, ok := identityCache[s]
		if !ok {
			names = s.PossibleIdentifiers()
			identityCache[s] = names
		}

		var err error
		canonical, err = fold(canonical, incoming, names, s.RepresentativePosition())
		if err != nil {
			return err
		}
	}

	for _, c := range canonical {
		summitID := output.AddSummit(c.summit)
		for _, name := range c.routeOrder {
			cr := c.routesByName[name]
			routeID, err := output.AddRoute(summitID, cr.route)
			if err != nil {
				return err
			}
			for _, post := range cr.posts {
				if err := output.AddPost(routeID, post); err != nil {
					return err
				}
			}
		}
	}

	f.logger.Info("merge complete", "canonical_summits", len(canonical))
	return nil
}

// fold tests incoming against every entry of canonical using the summit
// matching predicate. Every match is folded into the first match found, the
// incoming observation is then folded into that survivor too, and the
// now-subsumed entries are dropped from the returned set. If nothing
// matches, incoming is appended as a new canonical entry.
func fold(canonical []*canonicalSummit, incoming *canonicalSummit, names []entity.NormalizedName, position entity.Position) ([]*canonicalSummit, error) {
	var matchIdx []int
	for i, c := range canonical {
		if c.matches(names, position) {
			matchIdx = append(matchIdx, i)
		}
	}

	if len(matchIdx) == 0 {
		return append(canonical, incoming), nil
	}

	target := canonical[matchIdx[0]]
	for _, idx := range matchIdx[1:] {
		if err := target.foldIn(canonical[idx]); err != nil {
			return nil, err
		}
	}
	if err := target.foldIn(incoming); err != nil {
		return nil, err
	}

	subsumed := make(map[int]struct{}, len(matchIdx)-1)
	for _, idx := range matchIdx[1:] {
		subsumed[idx] = struct{}{}
	}

	result := make([]*canonicalSummit, 0, len(canonical)-len(subsumed))
	for i, c := range canonical {
		if _, ok := subsumed[i]; ok {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}
