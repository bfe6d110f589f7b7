// Package file persists the incremental cache as a flat TOML record at a
// fixed project-relative path. This is the default cache store.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CacheStore = (*Store)(nil)

// record is the on-disk shape: one flat name → hash table.
type record struct {
	Schemas map[string]string `toml:"schemas"`
}

// Store is a file-based cache store.
type Store struct {
	path string
}

// NewStore creates a cache store at projectDir/.modelgen/cache.toml.
func NewStore(projectDir string) *Store {
	return &Store{path: filepath.Join(projectDir, ".modelgen", "cache.toml")}
}

// Path returns the cache file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted record. A missing file yields an empty record; a
// file that does not decode yields domain.ErrCacheCorrupt so callers can
// recover with full regeneration.
func (s *Store) Load(_ context.Context) (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}

	var rec record
	if err := toml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode cache: %v: %w", err, domain.ErrCacheCorrupt)
	}
	if rec.Schemas == nil {
		rec.Schemas = map[string]string{}
	}
	return rec.Schemas, nil
}

// Save atomically replaces the record: the new content is written to a
// temporary file in the same directory and renamed over the old one, so a
// failed run never leaves a half-written record.
func (s *Store) Save(_ context.Context, entries map[string]string) error {
	data, err := toml.Marshal(record{Schemas: entries})
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "cache-*.toml")
	if err != nil {
		return fmt.Errorf("create temp cache: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace cache: %w", err)
	}
	return nil
}

// Clear removes the persisted record.
func (s *Store) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}
