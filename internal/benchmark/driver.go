package benchmark

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
)

// State is the lifecycle position of a Driver.
type State int

const (
	StateInitializing State = iota
	StateRunning
	StateFinalized
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateFinalized:
		return "finalized"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Reporter observes a run as it progresses.
type Reporter interface {
	Section(name string)
	Start(c Case)
	Finish(c Case, sample Sample, stat Statistic)
}

// Recorder persists a completed table.
type Recorder interface {
	Persist(path string, table *Table) error
}

// Driver measures a catalogue of sections in order and hands the result to
// its Recorder. A Driver runs once.
type Driver struct {
	cfg       RunConfig
	sections  []Section
	sampler   *Sampler
	recorder  Recorder
	reporters []Reporter
	state     State
}

// Option configures a Driver.
type Option func(*Driver)

// WithSampler overrides the default sampler.
func WithSampler(s *Sampler) Option {
	return func(d *Driver) { d.sampler = s }
}

// WithRecorder overrides the default CSV recorder.
func WithRecorder(r Recorder) Option {
	return func(d *Driver) { d.recorder = r }
}

// WithReporters attaches progress observers.
func WithReporters(r ...Reporter) Option {
	return func(d *Driver) { d.reporters = append(d.reporters, r...) }
}

// NewDriver validates cfg and returns a driver in the initializing state.
func NewDriver(cfg RunConfig, sections []Section, opts ...Option) (*Driver, error) {
	if err := ValidateRunConfig(cfg); err != nil {
		return nil, err
	}
	d := &Driver{
		cfg:      cfg,
		sections: sections,
		sampler:  NewSampler(nil),
		recorder: NewCSVRecorder(),
		state:    StateInitializing,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// ValidateRunConfig checks the values a run cannot start without.
func ValidateRunConfig(cfg RunConfig) error {
	var problems []string
	if cfg.Repeat < 1 {
		problems = append(problems, fmt.Sprintf("repeat must be positive, got: %d", cfg.Repeat))
	}
	if cfg.OutputPath == "" {
		problems = append(problems, "output path is required")
	}
	if cfg.Shape.Rows < 1 || cfg.Shape.Cols < 1 {
		problems = append(problems, fmt.Sprintf("shape must be positive, got: %dx%d", cfg.Shape.Rows, cfg.Shape.Cols))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid run configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// State returns the driver's current lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Run measures every case and persists the table. On a persistence failure
// the computed table is still returned alongside the error.
func (d *Driver) Run() (*Table, error) {
	if d.state != StateInitializing {
		return nil, fmt.Errorf("driver already %s", d.state)
	}

	src := rand.NewPCG(d.cfg.Seed, d.cfg.Seed)
	table := &Table{}

	d.state = StateRunning
	slog.Info("Benchmark run started", "repeat", d.cfg.Repeat, "seed", d.cfg.Seed, "sections", len(d.sections))

	for _, sec := range d.sections {
		if err := d.runSection(sec, src, table); err != nil {
			d.state = StateFailed
			return nil, err
		}
	}

	if err := d.recorder.Persist(d.cfg.OutputPath, table); err != nil {
		d.state = StateFailed
		var perr *PersistenceError
		if !errors.As(err, &perr) {
			err = &PersistenceError{Path: d.cfg.OutputPath, Err: err}
		}
		return table, err
	}

	d.state = StateFinalized
	slog.Info("Benchmark results saved", "path", d.cfg.OutputPath, "rows", table.Len())
	return table, nil
}

func (d *Driver) runSection(sec Section, src rand.Source, table *Table) error {
	for _, r := range d.reporters {
		r.Section(sec.Name)
	}

	cases, err := sec.Build(src)
	if err != nil {
		return fmt.Errorf("failed to build section %q: %w", sec.Name, err)
	}

	for _, c := range cases {
		for _, r := range d.reporters {
			r.Start(c)
		}

		sample, err := d.sampler.Sample(c.Op, d.cfg.Repeat)
		if err != nil {
			return labelError(c.Label, err)
		}
		st, err := Aggregate(sample)
		if err != nil {
			return labelError(c.Label, err)
		}
		table.append(c.Label, st)
		slog.Debug("Case measured", "case", c.Label, "mean_ms", st.MeanMs, "stddev_ms", st.StdDevMs)

		for _, r := range d.reporters {
			r.Finish(c, sample, st)
		}
	}
	return nil
}

func labelError(label string, err error) error {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		opErr.Case = label
		return opErr
	}
	var clockErr *ClockError
	if errors.As(err, &clockErr) {
		clockErr.Case = label
		return clockErr
	}
	return fmt.Errorf("case %q: %w", label, err)
}
