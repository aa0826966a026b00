package teufelsturm

import (
	"context"
	"fmt"
	"hash/maphash"

	"github.com/nicowilhelm/routedb/internal/applog"
	"github.com/nicowilhelm/routedb/internal/entity"
	"github.com/nicowilhelm/routedb/internal/gradeparse"
	"github.com/nicowilhelm/routedb/internal/pipe"
	"github.com/nicowilhelm/routedb/internal/source"
	"github.com/nicowilhelm/routedb/internal/transport"
)

const routeDetailsURLTemplate = "https://www.teufelsturm.de/wege/bewertungen/anzeige.php?wegnr=%d"

// ParseRating parses a teufelsturm post rating label into Post.Rating's
// range. It is a thin re-export of internal/gradeparse.ParseRating, kept
// local to this package since rating labels are teufelsturm.de's own
// vocabulary, not a general grade-parsing concern.
func ParseRating(label string) int {
	return gradeparse.ParseRating(label)
}

// Option configures a Filter.
type Option func(*Filter)

// WithLogger sets the Filter's logger. The default is applog.NopLogger.
func WithLogger(logger applog.Logger) Option {
	return func(f *Filter) {
		f.logger = logger
	}
}

// WithExtraForbiddenNames adds names to the forbidden-summit check alongside
// source.ForbiddenSummitNames, for names supplied via the run config's
// extra_forbidden_summit_names.
func WithExtraForbiddenNames(names []string) Option {
	return func(f *Filter) {
		for _, name := range names {
			f.extraForbidden[name] = struct{}{}
		}
	}
}

// WithExtraStaleIDs adds ids to the stale-entity check alongside
// source.StaleEntityIDs, for ids supplied via the run config's
// extra_stale_entity_ids.
func WithExtraStaleIDs(ids []int) Option {
	return func(f *Filter) {
		for _, id := range ids {
			f.extraStale[id] = struct{}{}
		}
	}
}

// Filter is an illustrative IMPORT-stage pipeline.SourceFilter for
// teufelsturm.de. It walks routeIDs — a small fixed set, in a real
// deployment collected from the site's route-index pages, out of scope
// here — fetching and parsing one route detail page per ID.
type Filter struct {
	http           transport.HTTPBoundary
	routeIDs       []int
	logger         applog.Logger
	extraForbidden map[string]struct{}
	extraStale     map[int]struct{}
}

// New constructs a Filter that imports the given route IDs via http.
func New(http transport.HTTPBoundary, routeIDs []int, opts ...Option) *Filter {
	f := &Filter{
		http:           http,
		routeIDs:       routeIDs,
		logger:         applog.NopLogger{},
		extraForbidden: make(map[string]struct{}),
		extraStale:     make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Filter) isForbidden(name string) bool {
	if source.IsForbiddenSummitName(name) {
		return true
	}
	_, ok := f.extraForbidden[name]
	return ok
}

func (f *Filter) isStale(id int) bool {
	if source.IsStaleEntityID(id) {
		return true
	}
	_, ok := f.extraStale[id]
	return ok
}

// Name implements pipeline.Filter.
func (f *Filter) Name() string { return "teufelsturm.de" }

// Run implements pipeline.SourceFilter.
func (f *Filter) Run(ctx context.Context, output *pipe.Pipe) error {
	var seed maphash.Seed = maphash.MakeSeed()
	seenSummits := make(map[uint64]pipe.SummitID)

	var imported, skipped int
	for _, routeID := range f.routeIDs {
		if f.isStale(routeID) {
			skipped++
			continue
		}

		body, err := f.http.RetrieveText(ctx, fmt.Sprintf(routeDetailsURLTemplate, routeID), nil)
		if err != nil {
			f.logger.Warn("fetching route page failed, skipping", "route_id", routeID, "error", err)
			skipped++
			continue
		}

		parsed, err := parsePage(body)
		if err != nil {
			f.logger.Warn("parsing route page failed, skipping", "route_id", routeID, "error", err)
			skipped++
			continue
		}

		if f.isForbidden(parsed.summitName) {
			f.logger.Debug("ignoring forbidden summit", "summit", parsed.summitName)
			skipped++
			continue
		}

		summitID, ok := seenSummits[hashName(&seed, parsed.summitName)]
		if !ok {
			summit := entity.NewSummit()
			summit.SetOfficialName(parsed.summitName)
			summitID = output.AddSummit(summit)
			seenSummits[hashName(&seed, parsed.summitName)] = summitID
		}

		routeInstanceID, err := output.AddRoute(summitID, parsed.route)
		if err != nil {
			return err
		}
		for _, p := range parsed.posts {
			if err := output.AddPost(routeInstanceID, p); err != nil {
				return err
			}
		}
		imported++
	}

	f.logger.Info("teufelsturm import complete", "imported", imported, "skipped", skipped)
	return nil
}

func hashName(seed *maphash.Seed, name string) uint64 {
	var h maphash.Hash
	h.SetSeed(*seed)
	h.WriteString(name)
	return h.Sum64()
}
