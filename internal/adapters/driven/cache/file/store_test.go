package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
)

func TestStore_Load_MissingFileIsEmpty(t *testing.T) {
	store := NewStore(t.TempDir())

	entries, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())
	want := map[string]string{"Pet": "abc123", "Order": "def456"}

	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_Save_ReplacesPreviousRecord(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())

	require.NoError(t, store.Save(ctx, map[string]string{"Pet": "v1", "Order": "v1"}))
	require.NoError(t, store.Save(ctx, map[string]string{"Pet": "v2"}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Pet": "v2"}, got)
}

func TestStore_Load_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("not [valid toml"), 0o644))

	_, err := store.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrCacheCorrupt)
}

func TestStore_Save_LeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save(ctx, map[string]string{"Pet": "abc"}))

	files, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "cache.toml", files[0].Name())
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save(ctx, map[string]string{"Pet": "abc"}))

	require.NoError(t, store.Clear(ctx))

	entries, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_Clear_MissingFileIsNoError(t *testing.T) {
	store := NewStore(t.TempDir())

	assert.NoError(t, store.Clear(context.Background()))
}
