// Package storagetest opens migrated in-memory SQLite databases for repository tests.
package storagetest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/OtoCare-BookingService/internal/infra/storage/migrations"
	"github.com/m04kA/OtoCare-BookingService/pkg/dbmetrics"
)

// NewDB returns a fresh migrated database. A single connection keeps
// ":memory:" shared by every statement of the test.
func NewDB(t testing.TB) *dbmetrics.DB {
	t.Helper()

	raw, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { raw.Close() })

	_, err = raw.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	db := dbmetrics.Wrap(raw, nil)
	require.NoError(t, migrations.Apply(context.Background(), db, migrations.SQLite))
	return db
}

// Exec runs a fixture statement.
func Exec(t testing.TB, db *dbmetrics.DB, query string, args ...interface{}) {
	t.Helper()
	_, err := db.ExecContext(context.Background(), query, args...)
	require.NoError(t, err)
}
