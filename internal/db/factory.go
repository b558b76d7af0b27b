package db

import (
	"fmt"
	"strings"
)

// DefaultPath is used when a SQLite store is requested without a path.
const DefaultPath = "./data/history.db"

// StoreConfig holds configuration for the storage backend
type StoreConfig struct {
	Type             string // "sqlite" or "postgres"
	ConnectionString string // File path for SQLite, DSN for Postgres
}

// ConfigFromDSN infers the backend from a single history location: postgres
// URLs select PostgreSQL, anything else is a SQLite file path.
func ConfigFromDSN(dsn string) StoreConfig {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return StoreConfig{Type: "postgres", ConnectionString: dsn}
	}
	return StoreConfig{Type: "sqlite", ConnectionString: dsn}
}

// NewStore creates a new Store instance based on the provided configuration
func NewStore(config StoreConfig) (Store, error) {
	switch strings.ToLower(config.Type) {
	case "postgres", "postgresql":
		if config.ConnectionString == "" {
			return nil, fmt.Errorf("postgres connection string is required")
		}
		return NewPostgresStore(config.ConnectionString)
	case "sqlite", "sqlite3", "":
		if config.ConnectionString == "" {
			config.ConnectionString = DefaultPath
		}
		return NewSQLiteStore(config.ConnectionString)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}
}
