package dbmetrics

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

type recordedCall struct {
	operation string
	failed    bool
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (r *fakeRecorder) ObserveDB(operation string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordedCall{operation: operation, failed: err != nil})
}

func (r *fakeRecorder) SetDBPoolStats(sql.DBStats) {}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_RecordsOperations(t *testing.T) {
	rec := &fakeRecorder{}
	db := Wrap(openDB(t), rec)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, "CREATE TABLE t (v INTEGER)")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO t (v) VALUES (1)")
	require.NoError(t, err)

	var v int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT v FROM t").Scan(&v))
	assert.Equal(t, 1, v)

	_, err = db.ExecContext(ctx, "INSERT INTO missing (v) VALUES (1)")
	require.Error(t, err)

	require.Len(t, rec.calls, 4)
	assert.Equal(t, "create", rec.calls[0].operation)
	assert.Equal(t, "insert", rec.calls[1].operation)
	assert.Equal(t, "select", rec.calls[2].operation)
	assert.True(t, rec.calls[3].failed)
}

func TestGetExecutor(t *testing.T) {
	db := Wrap(openDB(t), nil)
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, db))
}
