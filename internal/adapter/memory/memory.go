// Package memory implements an in-memory snapshot store for development and
// testing.
package memory

import (
	"context"
	"sync"

	"wellnesshub/internal/domain"
)

// Store implements domain.SnapshotStore over a mutex-guarded map.
type Store struct {
	mu        sync.Mutex
	snapshots map[string][]byte
}

var _ domain.SnapshotStore = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{snapshots: make(map[string][]byte)}
}

// Load returns the snapshot stored under key, or nil when absent.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.snapshots[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// Save overwrites the snapshot stored under key.
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.snapshots[key] = stored
	return nil
}

// Delete removes the snapshot stored under key. Deleting an absent key is
// not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, key)
	return nil
}
