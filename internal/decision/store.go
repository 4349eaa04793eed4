package decision

import (
	"context"
	"fmt"
)

// Store abstracts the external persistence collaborator. The engine
// computes the full classification before calling Store, so a store
// failure never invalidates the already-computed result.
type Store interface {
	// Store persists one decision event.
	Store(ctx context.Context, event *Event) error

	// Close releases the store's resources.
	Close() error
}

// PersistenceError reports that the external store write failed. The
// classification result computed before the write remains valid and
// is returned alongside this error.
type PersistenceError struct {
	// Op describes the failed operation.
	Op string

	// Err is the underlying store failure.
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
