package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"arraybench/internal/benchmark"
)

// ErrNoRuns is returned by LoadLatest when the history is empty.
var ErrNoRuns = errors.New("no runs recorded")

// Store is a benchmark.Store backed by a database connection.
type Store interface {
	benchmark.Store
	Close() error
}

// runStore holds the SQL shared by every backend. Queries are written with
// '?' placeholders and rebound per driver.
type runStore struct {
	db   *sql.DB
	bind func(query string) string
}

func questionPlaceholders(query string) string { return query }

// dollarPlaceholders rewrites '?' into $1, $2, ... for PostgreSQL.
func dollarPlaceholders(query string) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Close closes the database connection
func (s *runStore) Close() error {
	return s.db.Close()
}

// Save writes a run and its results in one transaction.
func (s *runStore) Save(run benchmark.Run) error {
	if run.ID == "" {
		return fmt.Errorf("run id is required")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(s.bind(`INSERT INTO runs (id, created_at, seed, repeat_count, shape_rows, shape_cols, output_path) VALUES (?, ?, ?, ?, ?, ?, ?)`),
		run.ID, run.Timestamp.UTC().UnixNano(), int64(run.Seed), run.Repeat, run.Shape.Rows, run.Shape.Cols, run.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", run.ID, err)
	}

	for i, row := range run.Results {
		_, err := tx.Exec(s.bind(`INSERT INTO results (run_id, position, label, mean_ms, stddev_ms) VALUES (?, ?, ?, ?, ?)`),
			run.ID, i, row.Label, row.MeanMs, row.StdDevMs)
		if err != nil {
			return fmt.Errorf("failed to insert result %q: %w", row.Label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run %s: %w", run.ID, err)
	}
	return nil
}

// LoadLatest returns the most recently recorded run.
func (s *runStore) LoadLatest() (*benchmark.Run, error) {
	runs, err := s.loadRuns(`SELECT id, created_at, seed, repeat_count, shape_rows, shape_cols, output_path FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, ErrNoRuns
	}
	return &runs[0], nil
}

// LoadAll returns every run, newest first.
func (s *runStore) LoadAll() ([]benchmark.Run, error) {
	return s.loadRuns(`SELECT id, created_at, seed, repeat_count, shape_rows, shape_cols, output_path FROM runs ORDER BY created_at DESC, id DESC`)
}

func (s *runStore) loadRuns(query string) ([]benchmark.Run, error) {
	rows, err := s.db.Query(s.bind(query))
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []benchmark.Run
	for rows.Next() {
		var (
			run       benchmark.Run
			createdAt int64
			seed      int64
		)
		if err := rows.Scan(&run.ID, &createdAt, &seed, &run.Repeat, &run.Shape.Rows, &run.Shape.Cols, &run.OutputPath); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Timestamp = time.Unix(0, createdAt).UTC()
		run.Seed = uint64(seed)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range runs {
		results, err := s.loadResults(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Results = results
	}
	return runs, nil
}

func (s *runStore) loadResults(runID string) ([]benchmark.Row, error) {
	rows, err := s.db.Query(s.bind(`SELECT label, mean_ms, stddev_ms FROM results WHERE run_id = ? ORDER BY position`), runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results for run %s: %w", runID, err)
	}
	defer rows.Close()

	var results []benchmark.Row
	for rows.Next() {
		var row benchmark.Row
		if err := rows.Scan(&row.Label, &row.MeanMs, &row.StdDevMs); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (s *runStore) migrate(queries []string) error {
	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}
