package benchmark

import (
	"fmt"
	"time"
)

// OperationError reports a benchmarked operation that failed during sampling.
type OperationError struct {
	Case      string
	Iteration int
	Err       error
}

func (e *OperationError) Error() string {
	if e.Case == "" {
		return fmt.Sprintf("operation failed on iteration %d: %v", e.Iteration, e.Err)
	}
	return fmt.Sprintf("case %q failed on iteration %d: %v", e.Case, e.Iteration, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// ClockError reports a timing reading that went backwards.
type ClockError struct {
	Case      string
	Iteration int
	Elapsed   time.Duration
}

func (e *ClockError) Error() string {
	return fmt.Sprintf("clock went backwards on iteration %d of %q: elapsed %v", e.Iteration, e.Case, e.Elapsed)
}

// PersistenceError reports a result table that could not be written.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save results to %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
