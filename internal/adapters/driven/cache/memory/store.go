// Package memory provides an in-memory cache store for testing.
package memory

import (
	"context"
	"sync"

	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
)

// Ensure Store implements the interfaces.
var (
	_ driven.CacheStore = (*Store)(nil)
	_ driven.RunHistory = (*Store)(nil)
)

// Store is an in-memory implementation of driven.CacheStore.
type Store struct {
	mu      sync.RWMutex
	entries map[string]string
	runs    []driven.RunRecord

	// LoadErr, when set, is returned by Load. Lets tests exercise the
	// corrupt-cache recovery path.
	LoadErr error
}

// NewStore creates an empty in-memory cache store.
func NewStore() *Store {
	return &Store{entries: map[string]string{}}
}

// Load returns a copy of the stored record.
func (s *Store) Load(_ context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	out := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out, nil
}

// Save replaces the stored record.
func (s *Store) Save(_ context.Context, entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]string, len(entries))
	for k, v := range entries {
		s.entries[k] = v
	}
	return nil
}

// Clear drops the stored record.
func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = map[string]string{}
	return nil
}

// RecordRun appends a run record.
func (s *Store) RecordRun(_ context.Context, rec driven.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, rec)
	return nil
}

// Runs returns recorded runs, most recent first.
func (s *Store) Runs(_ context.Context, limit int) ([]driven.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []driven.RunRecord
	for i := len(s.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.runs[i])
	}
	return out, nil
}
