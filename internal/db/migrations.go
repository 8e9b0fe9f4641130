package db

import (
	"context"
	"fmt"
)

type migration struct {
	version int
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE clients (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    phone TEXT NOT NULL,
    email TEXT,
    address TEXT
);

CREATE TABLE properties (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    address TEXT NOT NULL,
    price INTEGER NOT NULL,
    size INTEGER,
    description TEXT,
    owner TEXT NOT NULL
);

CREATE TABLE deals (
    position INTEGER PRIMARY KEY,
    property TEXT NOT NULL,
    buyer TEXT NOT NULL,
    seller TEXT NOT NULL,
    price INTEGER NOT NULL,
    status TEXT NOT NULL
);

CREATE TABLE events (
    position INTEGER PRIMARY KEY,
    heading TEXT NOT NULL,
    datetime TEXT NOT NULL,
    property TEXT NOT NULL,
    client TEXT NOT NULL,
    note TEXT
);
`,
	},
	{
		version: 2,
		sql: `
-- Distinguishes a saved empty book from a database nobody has written to
CREATE TABLE book_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    saved_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX idx_events_datetime ON events(datetime);
`,
	},
}

// RunMigrations applies all pending database migrations
func (db *DB) RunMigrations(ctx context.Context) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var currentVersion int
	err = db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := tx.ExecContext(ctx, m.sql); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", m.version, err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", m.version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migrations: %w", err)
	}

	return nil
}
