package driving

import (
	"context"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
)

// GenerateResult summarises one completed generation run.
type GenerateResult struct {
	// Regenerated lists schemas whose files were (re)written, in
	// declaration order.
	Regenerated []string

	// Skipped lists schemas left untouched because their content hash
	// matched the cache.
	Skipped []string

	// Removed lists schemas present in the previous cache but absent from
	// the document; their files were deleted.
	Removed []string

	// Diagnostics are the quality findings accumulated during the run.
	Diagnostics []domain.Diagnostic
}

// Generator runs the full pipeline: load, resolve, compose, map, build,
// decide incrementally, emit, merge. A run completes or aborts at the first
// fatal error; already-written files stay as written.
type Generator interface {
	// Generate processes every named schema of the document at source.
	Generate(ctx context.Context, source string) (*GenerateResult, error)
}

// Linter resolves the document and runs the configured heuristic checks
// without writing any files.
type Linter interface {
	// Lint returns the findings for the document at source.
	Lint(ctx context.Context, source string) ([]domain.Diagnostic, error)
}

// BackendInfo describes one registered emission backend.
type BackendInfo struct {
	// Name is the registry key.
	Name string

	// Description is a one-line summary.
	Description string
}

// BackendRegistry lists the emission backends available to the CLI.
type BackendRegistry interface {
	// List returns registered backends sorted by name.
	List() []BackendInfo
}
