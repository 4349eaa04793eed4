package decision

import (
	"context"
	"sync"
)

// MemoryStore keeps decision events in memory. It is the default
// store for tests and local runs, and is safe for concurrent use.
type MemoryStore struct {
	mu     sync.Mutex
	events []*Event
	closed bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Store appends the event. Fails after Close.
func (s *MemoryStore) Store(ctx context.Context, event *Event) error {
	if err := ctx.Err(); err != nil {
		return &PersistenceError{Op: "memory store", Err: err}
	}
	if err := event.Validate(); err != nil {
		return &PersistenceError{Op: "memory store", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return &PersistenceError{Op: "memory store", Err: errClosed}
	}
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of the stored events in insertion order.
func (s *MemoryStore) Events() []*Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]*Event, len(s.events))
	copy(cp, s.events)
	return cp
}

// Close marks the store closed; subsequent writes fail.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
