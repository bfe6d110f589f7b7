// Package sqlite persists the incremental cache in a project-local SQLite
// database. Unlike the flat file store it also keeps per-run history.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
	"github.com/modelgen-labs/modelgen-cli/internal/logger"
)

// Ensure Store implements the interfaces.
var (
	_ driven.CacheStore = (*Store)(nil)
	_ driven.RunHistory = (*Store)(nil)
)

const schema = `
CREATE TABLE IF NOT EXISTS schema_hashes (
	name TEXT PRIMARY KEY,
	hash TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	regenerated INTEGER NOT NULL,
	removed INTEGER NOT NULL
);
`

// Store is a SQLite-backed cache store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the cache database at
// projectDir/.modelgen/cache.db.
func NewStore(projectDir string) (*Store, error) {
	dir := filepath.Join(projectDir, ".modelgen")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	path := filepath.Join(dir, "cache.db")

	db, err := openAndMigrate(path)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheCorrupt) {
			return nil, err
		}
		// A corrupt database cannot be migrated. Recreate it and carry on
		// with an empty record: the cache is redundant state and losing it
		// only costs a full regeneration, never the run.
		logger.Warn("cache database corrupt, recreating: %v", err)
		for _, suffix := range []string{"", "-wal", "-shm"} {
			os.Remove(path + suffix)
		}
		db, err = openAndMigrate(path)
		if err != nil {
			return nil, err
		}
	}
	return &Store{db: db, path: path}, nil
}

func openAndMigrate(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate cache database: %v: %w", err, domain.ErrCacheCorrupt)
	}
	return db, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full name → hash record.
func (s *Store) Load(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, hash FROM schema_hashes")
	if err != nil {
		return nil, fmt.Errorf("query cache: %v: %w", err, domain.ErrCacheCorrupt)
	}
	defer rows.Close()

	entries := map[string]string{}
	for rows.Next() {
		var name, hash string
		if err := rows.Scan(&name, &hash); err != nil {
			return nil, fmt.Errorf("scan cache row: %v: %w", err, domain.ErrCacheCorrupt)
		}
		entries[name] = hash
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read cache rows: %v: %w", err, domain.ErrCacheCorrupt)
	}
	return entries, nil
}

// Save replaces the record in a single transaction.
func (s *Store) Save(ctx context.Context, entries map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM schema_hashes"); err != nil {
		return fmt.Errorf("clear cache table: %w", err)
	}
	for name, hash := range entries {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO schema_hashes (name, hash) VALUES (?, ?)", name, hash); err != nil {
			return fmt.Errorf("insert cache row: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cache transaction: %w", err)
	}
	return nil
}

// Clear drops all cache entries and run history.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM schema_hashes"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM runs"); err != nil {
		return fmt.Errorf("clear run history: %w", err)
	}
	return nil
}

// RecordRun appends one run to the history.
func (s *Store) RecordRun(ctx context.Context, rec driven.RunRecord) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, started_at, regenerated, removed) VALUES (?, ?, ?, ?)",
		rec.ID, rec.StartedAt, rec.Regenerated, rec.Removed)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Runs returns recorded runs, most recent first.
func (s *Store) Runs(ctx context.Context, limit int) ([]driven.RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, started_at, regenerated, removed FROM runs ORDER BY started_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []driven.RunRecord
	for rows.Next() {
		var rec driven.RunRecord
		if err := rows.Scan(&rec.ID, &rec.StartedAt, &rec.Regenerated, &rec.Removed); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
