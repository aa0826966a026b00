// Package wiring is the single place the whole pipeline gets constructed. It
// replaces a dependency-injection container with one explicit function:
// every boundary, filter, and the Engine itself are constructed here and
// threaded together as plain constructor arguments. There are no
// package-level mutable globals anywhere in this repo.
package wiring

import (
	"fmt"
	"net/http"

	"github.com/nicowilhelm/routedb/internal/applog"
	"github.com/nicowilhelm/routedb/internal/config"
	"github.com/nicowilhelm/routedb/internal/dbboundary/sqlite"
	"github.com/nicowilhelm/routedb/internal/merge"
	"github.com/nicowilhelm/routedb/internal/pipeline"
	"github.com/nicowilhelm/routedb/internal/sink/dbv1"
	"github.com/nicowilhelm/routedb/internal/source/geosummit"
	"github.com/nicowilhelm/routedb/internal/source/teufelsturm"
	"github.com/nicowilhelm/routedb/internal/transport"
	"github.com/nicowilhelm/routedb/internal/validate"
)

// seedRouteIDs is the small fixed set of teufelsturm.de route detail pages
// this repo imports. A production deployment would collect these from the
// site's route-index pages; that crawl is out of scope here (§16).
var seedRouteIDs = []int{1, 2, 3}

// seedSummitNames is the small fixed set of summit names geosummit resolves
// to positions, standing in for a production deployment's full summit list.
var seedSummitNames = []string{"Hoher Torstein", "Falkenstein"}

// Build constructs the Engine for one run of cfg. It wires, in order: the
// HTTP transport boundary (live, recording, or replaying, depending on cfg),
// the database boundary, every stage's filters, and the Engine that runs
// them. logger is built by the caller and handed to every filter and to the
// Engine.
func Build(cfg config.Config, logger applog.Logger) (*pipeline.Engine, error) {
	httpBoundary, err := buildHTTPBoundary(cfg)
	if err != nil {
		return nil, fmt.Errorf("wiring: building HTTP boundary: %w", err)
	}

	dbBoundary := sqlite.New()

	factory := pipeline.StaticFilterFactory{
		pipeline.Importing: {
			teufelsturm.New(httpBoundary, seedRouteIDs,
				teufelsturm.WithLogger(logger),
				teufelsturm.WithExtraForbiddenNames(cfg.Run.ExtraForbiddenSummitNames),
				teufelsturm.WithExtraStaleIDs(cfg.Run.ExtraStaleEntityIDs),
			),
			geosummit.New(httpBoundary, seedSummitNames,
				geosummit.WithLogger(logger),
				geosummit.WithExtraForbiddenNames(cfg.Run.ExtraForbiddenSummitNames),
			),
		},
		pipeline.Merging: {
			merge.New(merge.WithLogger(logger)),
		},
		pipeline.Validation: {
			validate.New(validate.WithLogger(logger)),
		},
		pipeline.Writing: {
			dbv1.New(cfg.OutputDir, dbBoundary, dbv1.WithLogger(logger)),
		},
	}

	return pipeline.NewEngine(factory, pipeline.WithLogger(logger)), nil
}

func buildHTTPBoundary(cfg config.Config) (transport.HTTPBoundary, error) {
	if cfg.ReplayTrafficDir != "" {
		return transport.NewReplayingBoundary(cfg.ReplayTrafficDir)
	}

	var liveOpts []transport.Option
	if cfg.Run.UserAgent != "" {
		liveOpts = append(liveOpts, transport.WithUserAgent(cfg.Run.UserAgent))
	}
	if cfg.Run.HTTPTimeout > 0 {
		liveOpts = append(liveOpts, transport.WithHTTPClient(&http.Client{Timeout: cfg.Run.HTTPTimeout}))
	}
	live := transport.NewLiveBoundary(liveOpts...)

	if cfg.RecordTrafficDir != "" {
		return transport.NewRecordingBoundary(cfg.RecordTrafficDir, live)
	}

	return live, nil
}
