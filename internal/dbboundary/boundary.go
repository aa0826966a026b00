// Package dbboundary defines the relational-database boundary abstraction
// the WRITE stage writes through. It is a narrow interface — connect,
// disconnect, execute a statement, read rows, scope a transaction — so that
// the sink filter never imports a specific driver and a replaying or
// in-memory implementation can stand in for tests.
package dbboundary

import "context"

// Row is a single result row keyed by column name.
type Row map[string]any

// Boundary is the relational-database boundary a sink filter writes
// through. Implementations are not required to be safe for concurrent use
// by multiple goroutines; the WRITE stage drives one Boundary sequentially.
type Boundary interface {
	// Connect opens the database at path. If the destination already exists
	// and overwrite is false, Connect fails with ErrAlreadyExists. If
	// overwrite is true and the destination exists, it is removed first.
	Connect(ctx context.Context, path string, overwrite bool) error

	// Disconnect closes the database. It is idempotent: calling Disconnect
	// on an already-disconnected Boundary returns nil.
	Disconnect(ctx context.Context) error

	// ExecuteWrite runs a statement that does not return rows (DDL, INSERT,
	// UPDATE, DELETE). params are bound positionally; callers must never
	// interpolate values into statement.
	ExecuteWrite(ctx context.Context, statement string, params ...any) error

	// ExecuteRead runs a statement that returns rows and collects them as
	// column-name-keyed maps.
	ExecuteRead(ctx context.Context, statement string, params ...any) ([]Row, error)

	// WithTransaction runs fn inside a BEGIN/COMMIT scope. If fn returns an
	// error, the transaction is rolled back and fn's error is returned as is;
	// if the rollback also fails, fn's error is returned wrapped together
	// with the rollback error (still matchable with errors.Is). Statements issued via ExecuteWrite/ExecuteRead from within
	// fn (using the ctx passed to fn) participate in the transaction.
	// Outside an explicit WithTransaction scope, every ExecuteWrite
	// auto-commits.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
