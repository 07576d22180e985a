package dberrors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestIsUniqueViolation_Postgres(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Message: "duplicate key"})
	assert.True(t, IsUniqueViolation(err))

	other := &pq.Error{Code: "23503", Message: "foreign key"}
	assert.False(t, IsUniqueViolation(other))
}

func TestIsUniqueViolation_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	ctx := context.Background()
	_, err = db.ExecContext(ctx, "CREATE TABLE t (k TEXT NOT NULL UNIQUE)")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO t (k) VALUES ('a')")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "INSERT INTO t (k) VALUES ('a')")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestIsUniqueViolation_Other(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: bookings.garage_id")))
}
