package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modelgen.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewConfigStore_MissingFileUsesDefaults(t *testing.T) {
	store, err := NewConfigStore(filepath.Join(t.TempDir(), "modelgen.toml"))

	require.NoError(t, err)
	assert.Equal(t, "", store.Input())
	assert.Equal(t, "lib/models", store.OutputDir())
	assert.Equal(t, "manual", store.Backend())
	assert.Equal(t, "file", store.CacheKind())
}

func TestNewConfigStore_ReadsFile(t *testing.T) {
	path := writeConfig(t, `
input = "api/openapi.yaml"
output = "lib/generated"
backend = "builtvalue"
cache = "sqlite"
`)

	store, err := NewConfigStore(path)

	require.NoError(t, err)
	assert.Equal(t, "api/openapi.yaml", store.Input())
	assert.Equal(t, "lib/generated", store.OutputDir())
	assert.Equal(t, "builtvalue", store.Backend())
	assert.Equal(t, "sqlite", store.CacheKind())
}

func TestNewConfigStore_UnparsableFileFails(t *testing.T) {
	path := writeConfig(t, "input = [broken")

	_, err := NewConfigStore(path)

	assert.Error(t, err)
}

func TestNewConfigStore_LintSeverities(t *testing.T) {
	path := writeConfig(t, `
[lint.rules]
"schema-no-description" = "off"
"enum-empty" = "warning"
`)

	store, err := NewConfigStore(path)
	require.NoError(t, err)

	sev, ok := store.RuleSeverity("schema-no-description")
	require.True(t, ok)
	assert.Equal(t, domain.SeverityOff, sev)

	sev, ok = store.RuleSeverity("enum-empty")
	require.True(t, ok)
	assert.Equal(t, domain.SeverityWarning, sev)

	_, ok = store.RuleSeverity("property-untyped")
	assert.False(t, ok)
}

func TestNewConfigStore_InvalidSeverityFails(t *testing.T) {
	path := writeConfig(t, `
[lint.rules]
"enum-empty" = "fatal"
`)

	_, err := NewConfigStore(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "enum-empty")
}

func TestNewConfigStore_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
input = "from-file.yaml"
backend = "manual"
`)
	t.Setenv("MODELGEN_INPUT", "from-env.yaml")
	t.Setenv("MODELGEN_BACKEND", "jsonserial")
	t.Setenv("MODELGEN_CACHE", "sqlite")

	store, err := NewConfigStore(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env.yaml", store.Input())
	assert.Equal(t, "jsonserial", store.Backend())
	assert.Equal(t, "sqlite", store.CacheKind())
}

func TestNewConfigStore_EnvOverridesDefaultsWithoutFile(t *testing.T) {
	t.Setenv("MODELGEN_OUTPUT", "build/models")

	store, err := NewConfigStore(filepath.Join(t.TempDir(), "modelgen.toml"))

	require.NoError(t, err)
	assert.Equal(t, "build/models", store.OutputDir())
}
