// Package postgres_db implements item persistence over PostgreSQL for
// managed deployments. Schema and query semantics match driver/sqlite_db.
package postgres_db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"pai/utils/logger"
)

const schemaSQL = `
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
	published_at  TIMESTAMPTZ NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_items_source_date
	ON items (source_kind, source_id, published_at DESC);
CREATE INDEX IF NOT EXISTS idx_items_published
	ON items (published_at DESC);
`

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// NewPool connects to the database at url and verifies the connection.
func NewPool(ctx context.Context, url string, maxConns int) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = int32(maxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.SafeInfo("connected to postgres", "max_conns", cfg.MaxConns)
	return pool, nil
}

// InitSchema creates the tables and indexes if they do not exist.
func (r *PostgresRepository) InitSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	_, err := r.db.Exec(ctx,
		"INSERT INTO schema_version (version) VALUES ($1) ON CONFLICT (version) DO NOTHING", 1)
	if err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	return nil
}

// VerifySchema checks that the required tables exist. Used by db-check.
func (r *PostgresRepository) VerifySchema(ctx context.Context) error {
	for _, table := range []string{"schema_version", "items"} {
		var exists bool
		err := r.db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)",
			table).Scan(&exists)
		if err != nil {
			return fmt.Errorf("verify table %s: %w", table, err)
		}
		if !exists {
			return fmt.Errorf("missing table: %s", table)
		}
	}
	return nil
}
