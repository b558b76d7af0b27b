package benchmark

import "time"

// Store keeps the history of completed runs.
type Store interface {
	Save(run Run) error
	LoadLatest() (*Run, error)
	LoadAll() ([]Run, error)
}

// NewRun snapshots a finished table together with the configuration that
// produced it.
func NewRun(id string, cfg RunConfig, table *Table) Run {
	run := Run{
		ID:         id,
		Timestamp:  time.Now().UTC(),
		Seed:       cfg.Seed,
		Repeat:     cfg.Repeat,
		Shape:      cfg.Shape,
		OutputPath: cfg.OutputPath,
	}
	if table != nil {
		run.Results = append([]Row(nil), table.Rows...)
	}
	return run
}
