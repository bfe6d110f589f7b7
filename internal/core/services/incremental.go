package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
	"github.com/modelgen-labs/modelgen-cli/internal/logger"
)

// Incremental owns the name → content-hash record for the duration of a run.
// It is the sole owner and writer of the persisted cache: decisions are made
// against the record loaded at run start, commits accumulate in memory, and
// the store is rewritten once at the end of a successful run. A failed run
// therefore never leaves the record claiming files it did not write.
type Incremental struct {
	store    driven.CacheStore
	previous map[string]string
	next     map[string]string
}

// NewIncremental loads the persisted record. A corrupt record is recovered
// by treating the cache as empty, which triggers full regeneration; it is
// never fatal.
func NewIncremental(ctx context.Context, store driven.CacheStore) (*Incremental, error) {
	previous, err := store.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrCacheCorrupt) {
			logger.Warn("cache record corrupt, regenerating everything: %v", err)
			previous = map[string]string{}
		} else {
			return nil, fmt.Errorf("load cache: %w", err)
		}
	}
	if previous == nil {
		previous = map[string]string{}
	}
	next := make(map[string]string, len(previous))
	for k, v := range previous {
		next[k] = v
	}
	return &Incremental{store: store, previous: previous, next: next}, nil
}

// ShouldRegenerate reports whether the named schema needs (re)emission:
// true when its hash is absent from or differs in the loaded record.
func (i *Incremental) ShouldRegenerate(name string, raw *domain.RawSchema) bool {
	hash := HashSchema(raw)
	prev, ok := i.previous[name]
	if !ok {
		logger.Debug("cache: %s is new, generating", name)
		return true
	}
	if prev != hash {
		logger.Debug("cache: %s changed, regenerating", name)
		return true
	}
	logger.Debug("cache: %s unchanged, skipping", name)
	return false
}

// Commit records the schema's current hash for persistence at run end.
// Called only after its file was actually written.
func (i *Incremental) Commit(name string, raw *domain.RawSchema) {
	i.next[name] = HashSchema(raw)
}

// Drop removes a schema from the pending record without touching the
// persisted one. Used when a schema is removed from the document, and when
// a new schema's generation failed so no entry is carried for a file that
// was never written.
func (i *Incremental) Drop(name string) {
	delete(i.next, name)
}

// RemovedSince returns the schemas present in the previous record but absent
// from the current document, sorted for deterministic file deletion order.
func (i *Incremental) RemovedSince(current []string) []string {
	have := make(map[string]bool, len(current))
	for _, name := range current {
		have[name] = true
	}
	var removed []string
	for name := range i.previous {
		if !have[name] {
			removed = append(removed, name)
		}
	}
	sort.Strings(removed)
	return removed
}

// Save atomically rewrites the persisted record. Call once, at the end of a
// successful run.
func (i *Incremental) Save(ctx context.Context) error {
	if err := i.store.Save(ctx, i.next); err != nil {
		return fmt.Errorf("save cache: %w", err)
	}
	return nil
}
