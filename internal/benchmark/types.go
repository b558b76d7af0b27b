package benchmark

import (
	"math/rand/v2"
	"time"
)

// Operation is a fully bound unit of work. Its result is discarded.
type Operation func() (any, error)

// Case pairs a label with the operation being measured.
// Identity is positional: the order cases are defined in is the row order
// of the result table.
type Case struct {
	Label string
	Op    Operation
}

// Section groups cases for progress output. Build is called right before the
// section's cases are measured, so operands it draws from src depend on
// everything measured before it.
type Section struct {
	Name  string
	Build func(src rand.Source) ([]Case, error)
}

// Sample holds per-iteration elapsed times in seconds.
type Sample []float64

// Statistic is the reduced latency of one case, in milliseconds.
type Statistic struct {
	MeanMs   float64 `json:"mean_ms"`
	StdDevMs float64 `json:"stddev_ms"`
}

// Row is one line of the result table.
type Row struct {
	Label string `json:"label"`
	Statistic
}

// Table is the ordered result of a run, index-aligned with the catalogue.
type Table struct {
	Rows []Row `json:"rows"`
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func (t *Table) append(label string, s Statistic) {
	t.Rows = append(t.Rows, Row{Label: label, Statistic: s})
}

// Shape is the row/column size of the matrix operands.
type Shape struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Size returns Rows*Cols.
func (s Shape) Size() int {
	return s.Rows * s.Cols
}

// RunConfig is set once at process start and never mutated.
type RunConfig struct {
	Repeat     int
	Seed       uint64
	OutputPath string
	Shape      Shape
}

// Run is a completed benchmark execution as kept in the history store.
type Run struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Seed       uint64    `json:"seed"`
	Repeat     int       `json:"repeat"`
	Shape      Shape     `json:"shape"`
	OutputPath string    `json:"output_path"`
	Results    []Row     `json:"results"`
}
