package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at BIGINT NOT NULL,
		seed BIGINT NOT NULL,
		repeat_count INTEGER NOT NULL,
		shape_rows INTEGER NOT NULL,
		shape_cols INTEGER NOT NULL,
		output_path TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS results (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		label TEXT NOT NULL,
		mean_ms DOUBLE PRECISION NOT NULL,
		stddev_ms DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (run_id, position)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);`,
}

// PostgresStore implements Store using PostgreSQL
type PostgresStore struct {
	*runStore
}

// NewPostgresStore creates a new Postgres store and applies migrations
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := newPostgresStore(db)
	if err := store.migrate(postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func newPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{runStore: &runStore{db: db, bind: dollarPlaceholders}}
}
