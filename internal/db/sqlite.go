package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		repeat_count INTEGER NOT NULL,
		shape_rows INTEGER NOT NULL,
		shape_cols INTEGER NOT NULL,
		output_path TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS results (
		run_id TEXT NOT NULL REFERENCES runs(id),
		position INTEGER NOT NULL,
		label TEXT NOT NULL,
		mean_ms REAL NOT NULL,
		stddev_ms REAL NOT NULL,
		PRIMARY KEY (run_id, position)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);`,
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	*runStore
}

// NewSQLiteStore creates a new SQLite store and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{runStore: &runStore{db: db, bind: questionPlaceholders}}
	if err := store.migrate(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}
