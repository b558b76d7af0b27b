package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arraybench/internal/benchmark"
)

func newTestRun(id string, at time.Time, labels ...string) benchmark.Run {
	run := benchmark.Run{
		ID:         id,
		Timestamp:  at,
		Seed:       1234,
		Repeat:     5,
		Shape:      benchmark.Shape{Rows: 4, Cols: 3},
		OutputPath: "data/out.csv",
	}
	for i, label := range labels {
		run.Results = append(run.Results, benchmark.Row{
			Label:     label,
			Statistic: benchmark.Statistic{MeanMs: float64(i) + 0.5, StdDevMs: float64(i) / 10},
		})
	}
	return run
}

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	defer store.Close()

	t.Run("Empty", func(t *testing.T) {
		runs, err := store.LoadAll()
		require.NoError(t, err)
		assert.Empty(t, runs)

		_, err = store.LoadLatest()
		assert.ErrorIs(t, err, ErrNoRuns)
	})

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := newTestRun("run-a", base, "arange", "linspace")
	second := newTestRun("run-b", base.Add(time.Minute), "ones", "zeros", "eye")

	require.NoError(t, store.Save(first))
	require.NoError(t, store.Save(second))

	t.Run("LoadLatest", func(t *testing.T) {
		latest, err := store.LoadLatest()
		require.NoError(t, err)
		assert.Equal(t, second, *latest)
	})

	t.Run("LoadAll newest first", func(t *testing.T) {
		runs, err := store.LoadAll()
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, "run-b", runs[0].ID)
		assert.Equal(t, first, runs[1])
	})

	t.Run("Duplicate id", func(t *testing.T) {
		err := store.Save(newTestRun("run-a", base.Add(time.Hour)))
		assert.Error(t, err)

		runs, err := store.LoadAll()
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})

	t.Run("Missing id", func(t *testing.T) {
		assert.Error(t, store.Save(benchmark.Run{}))
	})
}

func TestSQLiteStore_LargeSeed(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	run := newTestRun("seed", time.Unix(0, 42).UTC())
	run.Seed = ^uint64(0)
	require.NoError(t, store.Save(run))

	latest, err := store.LoadLatest()
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), latest.Seed)
	assert.Empty(t, latest.Results)
}

func TestNewSQLiteStore_Error(t *testing.T) {
	// A directory cannot be opened as a database file.
	_, err := NewSQLiteStore(t.TempDir())
	assert.Error(t, err)
}
