package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Dialect is the SQL flavour of the target database.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

var ErrUnknownDialect = errors.New("migrations: unknown dialect")

// Execer is satisfied by *sql.DB and *dbmetrics.DB.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Apply creates missing tables and indexes. It is safe to run on every start.
func Apply(ctx context.Context, db Execer, dialect Dialect) error {
	var statements []string
	switch dialect {
	case Postgres:
		statements = postgresSchema
	case SQLite:
		statements = sqliteSchema
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrations: statement %d: %w", i+1, err)
		}
	}
	return nil
}

// bookings_slot_uidx enforces one booking per (date, garage, slot).
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS bookings (
		id             BIGSERIAL PRIMARY KEY,
		booking_date   VARCHAR(10) NOT NULL,
		garage_id      VARCHAR(64) NOT NULL,
		time_slot_id   SMALLINT NOT NULL CHECK (time_slot_id BETWEEN 0 AND 4),
		customer_phone VARCHAR(32) NOT NULL,
		package_id     VARCHAR(64),
		notes          VARCHAR(500),
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS bookings_slot_uidx ON bookings (booking_date, garage_id, time_slot_id)`,
	`CREATE INDEX IF NOT EXISTS bookings_customer_idx ON bookings (customer_phone, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS users (
		phone      VARCHAR(32) PRIMARY KEY,
		name       VARCHAR(128) NOT NULL,
		email      VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS cities (
		name VARCHAR(128) PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS garages (
		id      VARCHAR(64) PRIMARY KEY,
		city    VARCHAR(128) NOT NULL REFERENCES cities (name),
		name    VARCHAR(255) NOT NULL,
		address VARCHAR(500) NOT NULL,
		phone   VARCHAR(32)
	)`,
	`CREATE TABLE IF NOT EXISTS working_hours (
		id         INTEGER PRIMARY KEY,
		day_label  VARCHAR(64) NOT NULL,
		open_time  VARCHAR(5) NOT NULL,
		close_time VARCHAR(5) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS packages (
		id          VARCHAR(64) PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		description TEXT,
		price       BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS banners (
		id         BIGSERIAL PRIMARY KEY,
		kind       VARCHAR(16) NOT NULL,
		image_url  TEXT NOT NULL,
		title      VARCHAR(255),
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS bookings (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		booking_date   TEXT NOT NULL,
		garage_id      TEXT NOT NULL,
		time_slot_id   INTEGER NOT NULL CHECK (time_slot_id BETWEEN 0 AND 4),
		customer_phone TEXT NOT NULL,
		package_id     TEXT,
		notes          TEXT,
		created_at     TIMESTAMP NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS bookings_slot_uidx ON bookings (booking_date, garage_id, time_slot_id)`,
	`CREATE INDEX IF NOT EXISTS bookings_customer_idx ON bookings (customer_phone, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS users (
		phone      TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cities (
		name TEXT PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS garages (
		id      TEXT PRIMARY KEY,
		city    TEXT NOT NULL REFERENCES cities (name),
		name    TEXT NOT NULL,
		address TEXT NOT NULL,
		phone   TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS working_hours (
		id         INTEGER PRIMARY KEY,
		day_label  TEXT NOT NULL,
		open_time  TEXT NOT NULL,
		close_time TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS packages (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT,
		price       INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS banners (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		kind       TEXT NOT NULL,
		image_url  TEXT NOT NULL,
		title      TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,
}
