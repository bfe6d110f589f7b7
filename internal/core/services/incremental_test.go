package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelgen-labs/modelgen-cli/internal/adapters/driven/cache/memory"
	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
)

func rawWithSource(source any) *domain.RawSchema {
	return &domain.RawSchema{Source: source}
}

func TestIncremental_ShouldRegenerate_NewSchema(t *testing.T) {
	inc, err := NewIncremental(context.Background(), memory.NewStore())
	require.NoError(t, err)

	assert.True(t, inc.ShouldRegenerate("Pet", rawWithSource(map[string]any{"type": "object"})))
}

func TestIncremental_ShouldRegenerate_UnchangedSkipped(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	raw := rawWithSource(map[string]any{"type": "object"})
	require.NoError(t, store.Save(ctx, map[string]string{"Pet": HashSchema(raw)}))

	inc, err := NewIncremental(ctx, store)
	require.NoError(t, err)

	assert.False(t, inc.ShouldRegenerate("Pet", raw))
}

func TestIncremental_ShouldRegenerate_Changed(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	old := rawWithSource(map[string]any{"type": "object"})
	require.NoError(t, store.Save(ctx, map[string]string{"Pet": HashSchema(old)}))

	inc, err := NewIncremental(ctx, store)
	require.NoError(t, err)

	changed := rawWithSource(map[string]any{"type": "string"})
	assert.True(t, inc.ShouldRegenerate("Pet", changed))
}

func TestIncremental_CorruptCacheRecovers(t *testing.T) {
	store := memory.NewStore()
	store.LoadErr = fmt.Errorf("decode: %w", domain.ErrCacheCorrupt)

	inc, err := NewIncremental(context.Background(), store)

	require.NoError(t, err)
	assert.True(t, inc.ShouldRegenerate("Pet", rawWithSource("anything")))
}

func TestIncremental_OtherLoadErrorIsFatal(t *testing.T) {
	store := memory.NewStore()
	store.LoadErr = errors.New("disk on fire")

	_, err := NewIncremental(context.Background(), store)

	assert.Error(t, err)
}

func TestIncremental_CommitAndSave(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	inc, err := NewIncremental(ctx, store)
	require.NoError(t, err)

	raw := rawWithSource(map[string]any{"type": "object"})
	inc.Commit("Pet", raw)
	require.NoError(t, inc.Save(ctx))

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, HashSchema(raw), saved["Pet"])
}

func TestIncremental_DropRemovesPendingEntry(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Save(ctx, map[string]string{"Pet": "stale"}))

	inc, err := NewIncremental(ctx, store)
	require.NoError(t, err)

	inc.Drop("Pet")
	require.NoError(t, inc.Save(ctx))

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	assert.NotContains(t, saved, "Pet")
}

func TestIncremental_RemovedSince(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Save(ctx, map[string]string{
		"Pet": "h1", "Order": "h2", "User": "h3",
	}))

	inc, err := NewIncremental(ctx, store)
	require.NoError(t, err)

	removed := inc.RemovedSince([]string{"Pet"})

	assert.Equal(t, []string{"Order", "User"}, removed)
}

func TestIncremental_FailedSchemaNotPersisted(t *testing.T) {
	// A schema whose generation failed must not be recorded as written.
	ctx := context.Background()
	store := memory.NewStore()
	inc, err := NewIncremental(ctx, store)
	require.NoError(t, err)

	inc.Commit("Good", rawWithSource("good"))
	inc.Drop("Bad")
	require.NoError(t, inc.Save(ctx))

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Contains(t, saved, "Good")
	assert.NotContains(t, saved, "Bad")
}
