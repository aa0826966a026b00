// Package dbv1 implements the WRITE-stage sink: it encapsulates all
// knowledge of the relational output schema and writes the merged,
// validated entity set to a single SQLite file through a
// dbboundary.Boundary.
package dbv1

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nicowilhelm/routedb/internal/appmeta"
	"github.com/nicowilhelm/routedb/internal/applog"
	"github.com/nicowilhelm/routedb/internal/dbboundary"
	"github.com/nicowilhelm/routedb/internal/entity"
	"github.com/nicowilhelm/routedb/internal/pipe"
)

// OutputFileName is the name of the sink's output file, always created
// directly inside the configured output directory.
const OutputFileName = "routedb_v1.sqlite"

// Option configures a Filter.
type Option func(*Filter)

// WithLogger sets the Filter's logger. The default is applog.NopLogger.
func WithLogger(logger applog.Logger) Option {
	return func(f *Filter) {
		f.logger = logger
	}
}

// Filter is the WRITE-stage pipeline.SinkFilter. It owns no driver-specific
// code itself; all SQL goes through the injected dbboundary.Boundary.
type Filter struct {
	outputDir string
	boundary  dbboundary.Boundary
	logger    applog.Logger
}

// New constructs a Filter that writes OutputFileName inside outputDir using
// boundary.
func New(outputDir string, boundary dbboundary.Boundary, opts ...Option) *Filter {
	f := &Filter{
		outputDir: outputDir,
		boundary:  boundary,
		logger:    applog.NopLogger{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name implements pipeline.Filter.
func (f *Filter) Name() string { return "sink.dbv1" }

// Run implements pipeline.SinkFilter. It overwrites any pre-existing output
// file: the overwrite-on-connect policy is what makes a crash mid-write
// safe to simply re-run.
func (f *Filter) Run(ctx context.Context, input *pipe.Pipe) error {
	path := filepath.Join(f.outputDir, OutputFileName)

	if err := f.boundary.Connect(ctx, path, true); err != nil {
		return fmt.Errorf("dbv1: connect: %w", err)
	}
	defer f.boundary.Disconnect(ctx)

	var summitCount, routeCount, postCount int
	err := f.boundary.WithTransaction(ctx, func(ctx context.Context) error {
		if err := f.createSchema(ctx); err != nil {
			return err
		}
		if err := f.insertMetadata(ctx); err != nil {
			return err
		}

		for summitID, summit := range input.IterSummits() {
			keyName, err := f.writeSummit(ctx, summit)
			if err != nil {
				return err
			}
			summitCount++

			for routeID, route := range input.IterRoutesOf(summitID) {
				if err := f.writeRoute(ctx, keyName, route); err != nil {
					return err
				}
				routeCount++

				for post := range input.IterPostsOf(routeID) {
					if err := f.writePost(ctx, keyName, route.RouteName, post); err != nil {
						return err
					}
					postCount++
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("dbv1: write transaction: %w", err)
	}

	if err := f.boundary.ExecuteWrite(ctx, `ANALYZE`); err != nil {
		return fmt.Errorf("dbv1: analyze: %w", err)
	}
	if err := f.boundary.ExecuteWrite(ctx, `VACUUM`); err != nil {
		return fmt.Errorf("dbv1: vacuum: %w", err)
	}

	f.logger.Info("write complete", "summits", summitCount, "routes", routeCount, "posts", postCount, "path", path)
	return nil
}

func (f *Filter) createSchema(ctx context.Context) error {
	for _, stmt := range createTableStatements {
		if err := f.boundary.ExecuteWrite(ctx, stmt); err != nil {
			return fmt.Errorf("dbv1: create table: %w", err)
		}
	}
	for _, stmt := range createIndexStatements {
		if err := f.boundary.ExecuteWrite(ctx, stmt); err != nil {
			return fmt.Errorf("dbv1: create index: %w", err)
		}
	}
	return nil
}

func (f *Filter) insertMetadata(ctx context.Context) error {
	return f.boundary.ExecuteWrite(ctx, `
		INSERT INTO database_metadata (schema_version_major, schema_version_minor, compile_time, vendor)
		VALUES (?, ?, ?, ?)
	`, schemaVersionMajor, schemaVersionMinor, time.Now().UTC().Format(time.RFC3339), appmeta.Vendor())
}

// writeSummit inserts the summit's position and names, and returns the name
// used as its lookup key in summit_names (usage=0) — the name routes and
// posts resolve their owning summit by.
func (f *Filter) writeSummit(ctx context.Context, summit *entity.Summit) (string, error) {
	position := summit.RepresentativePosition()
	if err := f.boundary.ExecuteWrite(ctx, `
		INSERT OR IGNORE INTO summits (latitude, longitude) VALUES (?, ?)
	`, position.LatitudeE7, position.LongitudeE7); err != nil {
		return "", fmt.Errorf("dbv1: insert summit: %w", err)
	}

	rows, err := f.boundary.ExecuteRead(ctx, `SELECT last_insert_rowid() AS id`)
	if err != nil {
		return "", fmt.Errorf("dbv1: read summit id: %w", err)
	}
	summitID := rows[0]["id"]

	keyName := summit.OfficialName
	if keyName == "" {
		keyName = summit.Name()
		f.logger.Warn("summit has no official name, falling back to representative name", "name", keyName)
	}

	if err := f.boundary.ExecuteWrite(ctx, `
		INSERT OR IGNORE INTO summit_names (name, usage, summit_id) VALUES (?, ?, ?)
	`, keyName, usageOfficial, summitID); err != nil {
		return "", fmt.Errorf("dbv1: insert official name: %w", err)
	}

	for _, alt := range summit.AlternateNames() {
		if alt == keyName {
			continue
		}
		if err := f.boundary.ExecuteWrite(ctx, `
			INSERT OR IGNORE INTO summit_names (name, usage, summit_id) VALUES (?, ?, ?)
		`, alt, usageAlternate, summitID); err != nil {
			return "", fmt.Errorf("dbv1: insert alternate name: %w", err)
		}
	}

	return keyName, nil
}

func (f *Filter) writeRoute(ctx context.Context, summitKeyName string, route *entity.Route) error {
	return f.boundary.ExecuteWrite(ctx, `
		INSERT OR IGNORE INTO routes
			(summit_id, route_name, route_grade, grade_af, grade_rp, grade_ou, grade_jump, stars, danger)
		VALUES (
			(`+summitIDBySummitNameSQL+`),
			?, ?, ?, ?, ?, ?, ?, ?
		)
	`, summitKeyName, route.RouteName, route.Grade, route.GradeAF, route.GradeRP, route.GradeOU, route.GradeJump,
		route.StarCount, route.Dangerous)
}

func (f *Filter) writePost(ctx context.Context, summitKeyName, routeName string, post *entity.Post) error {
	return f.boundary.ExecuteWrite(ctx, `
		INSERT OR IGNORE INTO posts (route_id, user_name, post_date, comment, rating)
		VALUES (
			(`+routeIDByNameAndSummitNameSQL+`),
			?, ?, ?, ?
		)
	`, routeName, summitKeyName, post.UserName, post.PostDate.Format(time.RFC3339), post.Comment, post.Rating)
}
