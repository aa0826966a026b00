package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicowilhelm/routedb/internal/dbboundary"
)

func TestBoundary_ConnectCreatesFileAndExecutesDDL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")
	b := New()
	ctx := context.Background()

	require.NoError(t, b.Connect(ctx, path, false))
	defer b.Disconnect(ctx)

	require.NoError(t, b.ExecuteWrite(ctx, `CREATE TABLE t (id INTEGER PRIMARY KEY, name TEXT)`))
	require.NoError(t, b.ExecuteWrite(ctx, `INSERT INTO t (id, name) VALUES (?, ?)`, 1, "falkenturm"))

	rows, err := b.ExecuteRead(ctx, `SELECT name FROM t WHERE id = ?`, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "falkenturm", string(rows[0]["name"].([]byte)))
}

func TestBoundary_ConnectWithoutOverwriteFailsIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")
	ctx := context.Background()

	first := New()
	require.NoError(t, first.Connect(ctx, path, false))
	require.NoError(t, first.Disconnect(ctx))

	second := New()
	err := second.Connect(ctx, path, false)
	assert.True(t, errors.Is(err, dbboundary.ErrAlreadyExists))
}

func TestBoundary_ConnectWithOverwriteReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")
	ctx := context.Background()

	first := New()
	require.NoError(t, first.Connect(ctx, path, false))
	require.NoError(t, first.ExecuteWrite(ctx, `CREATE TABLE t (id INTEGER)`))
	require.NoError(t, first.Disconnect(ctx))

	second := New()
	require.NoError(t, second.Connect(ctx, path, true))
	defer second.Disconnect(ctx)

	_, err := second.ExecuteRead(ctx, `SELECT * FROM t`)
	assert.Error(t, err, "overwrite must have replaced the old schema")
}

func TestBoundary_WithTransactionRollsBackOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")
	ctx := context.Background()
	b := New()
	require.NoError(t, b.Connect(ctx, path, false))
	defer b.Disconnect(ctx)

	require.NoError(t, b.ExecuteWrite(ctx, `CREATE TABLE t (id INTEGER PRIMARY KEY)`))

	wantErr := errors.New("boom")
	err := b.WithTransaction(ctx, func(txCtx context.Context) error {
		require.NoError(t, b.ExecuteWrite(txCtx, `INSERT INTO t (id) VALUES (1)`))
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	rows, err := b.ExecuteRead(ctx, `SELECT * FROM t`)
	require.NoError(t, err)
	assert.Empty(t, rows, "rolled-back insert must not be visible")
}

func TestBoundary_WithTransactionCommitsOnSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")
	ctx := context.Background()
	b := New()
	require.NoError(t, b.Connect(ctx, path, false))
	defer b.Disconnect(ctx)

	require.NoError(t, b.ExecuteWrite(ctx, `CREATE TABLE t (id INTEGER PRIMARY KEY)`))

	err := b.WithTransaction(ctx, func(txCtx context.Context) error {
		return b.ExecuteWrite(txCtx, `INSERT INTO t (id) VALUES (1)`)
	})
	require.NoError(t, err)

	rows, err := b.ExecuteRead(ctx, `SELECT * FROM t`)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestBoundary_DisconnectIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")
	ctx := context.Background()
	b := New()
	require.NoError(t, b.Connect(ctx, path, false))
	require.NoError(t, b.Disconnect(ctx))
	require.NoError(t, b.Disconnect(ctx))
}
