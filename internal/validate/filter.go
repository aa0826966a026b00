package validate

import (
	"context"
	"errors"

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

// Filter is the VALIDATION-stage pipeline.TransformFilter. Its policy is
// deliberately coarse-grained: if anything on a summit cannot be repaired,
// the whole summit — all its routes and posts — is dropped, because
// downstream consumers require referential completeness.
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
func (f *Filter) Name() string { return "validate" }

// Run implements pipeline.TransformFilter.
func (f *Filter) Run(_ context.Context, input, output *pipe.Pipe) error {
	var kept, dropped int

	for summitID, summit := range input.IterSummits() {
		if err := summit.FixInvalidData(); err != nil {
			f.logSkip(summit.Name(), err)
			dropped++
			continue
		}

		type repairedRoute struct {
			route *entity.Route
			posts []*entity.Post
		}

		var routes []repairedRoute
		summitOK := true

		for routeID, route := range input.IterRoutesOf(summitID) {
			if err := route.FixInvalidData(); err != nil {
				f.logSkip(summit.Name(), err)
				summitOK = false
				break
			}

			var posts []*entity.Post
			for post := range input.IterPostsOf(routeID) {
				posts = append(posts, post)
			}
			routes = append(routes, repairedRoute{route: route, posts: posts})
		}

		if !summitOK {
			dropped++
			continue
		}

		outSummitID := output.AddSummit(summit)
		for _, r := range routes {
			outRouteID, err := output.AddRoute(outSummitID, r.route)
			if err != nil {
				return err
			}
			for _, post := range r.posts {
				if err := output.AddPost(outRouteID, post); err != nil {
					return err
				}
			}
		}
		kept++
	}

	f.logger.Info("validate complete", "kept", kept, "dropped", dropped)
	return nil
}

func (f *Filter) logSkip(summitName string, err error) {
	var incomplete *entity.IncompleteDataError
	if errors.As(err, &incomplete) {
		f.logger.Warn("dropping summit with incomplete data",
			"summit", summitName, "entity", incomplete.Entity, "missing_attribute", incomplete.MissingAttribute)
		return
	}
	f.logger.Warn("dropping summit", "summit", summitName, "error", err)
}
