package driven

import "github.com/modelgen-labs/modelgen-cli/internal/core/domain"

// ConfigStore provides project configuration. The core's linter honours the
// severity table it returns but never re-derives or rewrites it.
type ConfigStore interface {
	// Input is the configured document source (path or URL).
	Input() string

	// OutputDir is the directory generated files are written to.
	OutputDir() string

	// Backend is the configured emission backend name.
	Backend() string

	// CacheKind selects the cache store implementation ("file" or "sqlite").
	CacheKind() string

	// RuleSeverity returns the configured severity for a lint rule tag.
	// Unconfigured rules fall back to the rule's default.
	RuleSeverity(rule string) (domain.Severity, bool)
}
