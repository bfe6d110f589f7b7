package driven

import "context"

// CacheStore persists the flat schema-name → content-hash record between
// runs. The incremental service is the sole owner and writer of the record;
// stores only load and save it.
//
// Load must return domain.ErrCacheCorrupt (wrapped) when the persisted
// record cannot be decoded; callers recover by treating the cache as empty.
// Save must be atomic: a failed run never leaves a half-written record.
type CacheStore interface {
	// Load reads the persisted record. A missing record is not an error and
	// returns an empty map.
	Load(ctx context.Context) (map[string]string, error)

	// Save atomically replaces the persisted record.
	Save(ctx context.Context, entries map[string]string) error

	// Clear removes the persisted record entirely.
	Clear(ctx context.Context) error
}

// RunRecord is one generation run in the optional run history kept by
// history-capable cache stores.
type RunRecord struct {
	// ID is the run identifier.
	ID string

	// StartedAt is the run start time in RFC 3339.
	StartedAt string

	// Regenerated is how many schemas were (re)emitted.
	Regenerated int

	// Removed is how many stale files were deleted.
	Removed int
}

// RunHistory is implemented by cache stores that record per-run metadata
// (the sqlite store does; the flat file store does not).
type RunHistory interface {
	// RecordRun appends a run to the history.
	RecordRun(ctx context.Context, rec RunRecord) error

	// Runs returns recorded runs, most recent first, at most limit entries.
	Runs(ctx context.Context, limit int) ([]RunRecord, error)
}
