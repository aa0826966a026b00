// Package sqlite implements dbboundary.Boundary against a local SQLite file
// using the mattn/go-sqlite3 cgo driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nicowilhelm/routedb/internal/dbboundary"
)

type txKey struct{}

// Boundary is a dbboundary.Boundary backed by database/sql and the
// mattn/go-sqlite3 driver.
type Boundary struct {
	db *sql.DB
}

// New constructs a disconnected Boundary.
func New() *Boundary {
	return &Boundary{}
}

// Connect implements dbboundary.Boundary.
func (b *Boundary) Connect(ctx context.Context, path string, overwrite bool) error {
	if b.db != nil {
		return &dbboundary.InvalidStateError{Op: "Connect", State: "already connected"}
	}

	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return dbboundary.ErrAlreadyExists
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("sqlite: removing existing database: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("sqlite: stat database path: %w", err)
	}

	// foreign_keys=ON enforces the summit->route->post referential chain at
	// write time; synchronous=OFF and journal_mode=MEMORY trade durability
	// for throughput, acceptable here since the sink writes a fresh file in
	// one pass and never needs crash recovery of partial state.
	dsn := path + "?_foreign_keys=ON&_synchronous=OFF&_journal_mode=MEMORY"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("sqlite: ping %s: %w", path, err)
	}

	b.db = db
	return nil
}

// Disconnect implements dbboundary.Boundary.
func (b *Boundary) Disconnect(_ context.Context) error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

// ExecuteWrite implements dbboundary.Boundary.
func (b *Boundary) ExecuteWrite(ctx context.Context, statement string, params ...any) error {
	if b.db == nil {
		return &dbboundary.InvalidStateError{Op: "ExecuteWrite", State: "disconnected"}
	}
	var err error
	if tx, ok := txFromContext(ctx); ok {
		_, err = tx.ExecContext(ctx, statement, params...)
	} else {
		_, err = b.db.ExecContext(ctx, statement, params...)
	}
	if err != nil {
		return fmt.Errorf("sqlite: exec: %w", err)
	}
	return nil
}

// ExecuteRead implements dbboundary.Boundary.
func (b *Boundary) ExecuteRead(ctx context.Context, statement string, params ...any) ([]dbboundary.Row, error) {
	if b.db == nil {
		return nil, &dbboundary.InvalidStateError{Op: "ExecuteRead", State: "disconnected"}
	}

	var rows *sql.Rows
	var err error
	if tx, ok := txFromContext(ctx); ok {
		rows, err = tx.QueryContext(ctx, statement, params...)
	} else {
		rows, err = b.db.QueryContext(ctx, statement, params...)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("sqlite: columns: %w", err)
	}

	var result []dbboundary.Row
	for rows.Next() {
		scanTargets := make([]any, len(cols))
		values := make([]any, len(cols))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("sqlite: scan: %w", err)
		}
		row := make(dbboundary.Row, len(cols))
		for i, col := range cols {
			row[col] = values[i]
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: rows: %w", err)
	}
	return result, nil
}

// WithTransaction implements dbboundary.Boundary.
func (b *Boundary) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if b.db == nil {
		return &dbboundary.InvalidStateError{Op: "WithTransaction", State: "disconnected"}
	}
	if _, ok := txFromContext(ctx); ok {
		return &dbboundary.InvalidStateError{Op: "WithTransaction", State: "transaction already open"}
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}
