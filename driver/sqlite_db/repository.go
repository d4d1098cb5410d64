// Package sqlite_db implements item persistence over an embedded SQLite
// database file. It is the self-hosted deployment backend; the managed
// deployment uses driver/postgres_db against the same schema.
package sqlite_db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schemaVersion = 1

const initSQL = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS items (
	id            TEXT PRIMARY KEY,
	source_kind   TEXT NOT NULL,
	source_id     TEXT NOT NULL,
	author        TEXT,
	title         TEXT,
	summary       TEXT,
	url           TEXT NOT NULL,
	content_html  TEXT,
	published_at  TEXT NOT NULL,
	created_at    TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_items_source_date
	ON items (source_kind, source_id, published_at DESC);
CREATE INDEX IF NOT EXISTS idx_items_published
	ON items (published_at DESC);
`

type SqliteRepository struct {
	db *sql.DB
}

// Open creates or opens the database at path and initializes the schema.
// ":memory:" opens a shared-cache in-memory database limited to a single
// connection so every query sees the same data; file databases run in WAL
// mode for concurrent reads during sync passes.
func Open(path string) (*SqliteRepository, error) {
	connStr := path
	inMemory := path == ":memory:"
	if inMemory {
		connStr = "file::memory:?cache=shared"
	} else if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if inMemory {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if !inMemory {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	r := &SqliteRepository{db: db}
	if err := r.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return r, nil
}

func (r *SqliteRepository) initSchema() error {
	if _, err := r.db.Exec(initSQL); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}

	var version int
	err := r.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		if _, err := r.db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("check schema version: %w", err)
	case version > schemaVersion:
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, schemaVersion)
	}

	return nil
}

// VerifySchema checks that the required tables exist. Used by db-check.
func (r *SqliteRepository) VerifySchema(ctx context.Context) error {
	for _, table := range []string{"schema_version", "items"} {
		var count int
		err := r.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		if err != nil {
			return fmt.Errorf("verify table %s: %w", table, err)
		}
		if count == 0 {
			return fmt.Errorf("missing table: %s", table)
		}
	}
	return nil
}

func (r *SqliteRepository) Close() error {
	return r.db.Close()
}
