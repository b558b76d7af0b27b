package benchmark

import (
	"fmt"
	"time"
)

// Clock supplies wall-clock readings. time.Time values from time.Now carry a
// monotonic reading, so Sub between two of them is immune to wall-clock steps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the clock used unless a test injects another one.
var SystemClock Clock = systemClock{}

// sink keeps the last result alive so the work behind it is not elided.
var sink any

// Sampler runs an operation N times and records how long each call took.
type Sampler struct {
	clock Clock
}

// NewSampler creates a sampler. A nil clock means SystemClock.
func NewSampler(clock Clock) *Sampler {
	if clock == nil {
		clock = SystemClock
	}
	return &Sampler{clock: clock}
}

// Sample invokes op exactly n times in sequence. The first failing iteration
// aborts the whole sample.
func (s *Sampler) Sample(op Operation, n int) (Sample, error) {
	if n < 1 {
		return nil, fmt.Errorf("repeat count must be positive, got %d", n)
	}
	if op == nil {
		return nil, fmt.Errorf("operation is nil")
	}
	return s.run(op, n)
}

func (s *Sampler) run(op Operation, n int) (sample Sample, err error) {
	i := 0
	defer func() {
		if r := recover(); r != nil {
			sample = nil
			err = &OperationError{Iteration: i, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	sample = make(Sample, 0, n)
	for ; i < n; i++ {
		start := s.clock.Now()
		v, opErr := op()
		end := s.clock.Now()

		if opErr != nil {
			return nil, &OperationError{Iteration: i, Err: opErr}
		}
		elapsed := end.Sub(start)
		if elapsed < 0 {
			return nil, &ClockError{Iteration: i, Elapsed: elapsed}
		}
		sink = v
		sample = append(sample, elapsed.Seconds())
	}
	sink = nil
	return sample, nil
}
