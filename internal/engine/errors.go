package engine

import "fmt"

// ProcessingError is the catch-all for unexpected internal faults.
// It always indicates an implementation bug, never a normal input
// condition, and is never retried internally.
type ProcessingError struct {
	// Op names the pipeline stage that failed.
	Op string

	// Err is the underlying fault.
	Err error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing: %s: %v", e.Op, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }
