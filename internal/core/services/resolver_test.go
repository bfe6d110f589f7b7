package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
)

func TestRefName_Swagger2Prefix(t *testing.T) {
	name, ok := RefName("#/definitions/Pet")

	require.True(t, ok)
	assert.Equal(t, "Pet", name)
}

func TestRefName_OpenAPI3Prefix(t *testing.T) {
	name, ok := RefName("#/components/schemas/Order")

	require.True(t, ok)
	assert.Equal(t, "Order", name)
}

func TestRefName_UnknownPrefix(t *testing.T) {
	_, ok := RefName("#/parameters/limit")

	assert.False(t, ok)
}

func TestRefName_EmptyName(t *testing.T) {
	_, ok := RefName("#/definitions/")

	assert.False(t, ok)
}

func TestResolver_Resolve_Known(t *testing.T) {
	pet := &domain.RawSchema{Kind: domain.KindObject}
	doc := &domain.Document{
		Names:   []string{"Pet"},
		Schemas: map[string]*domain.RawSchema{"Pet": pet},
	}
	r := NewResolver(doc)

	name, schema, err := r.Resolve("#/components/schemas/Pet", "Order")

	require.NoError(t, err)
	assert.Equal(t, "Pet", name)
	assert.Same(t, pet, schema)
}

func TestResolver_Resolve_UnknownName(t *testing.T) {
	doc := &domain.Document{Schemas: map[string]*domain.RawSchema{}}
	r := NewResolver(doc)

	_, _, err := r.Resolve("#/definitions/Ghost", "Order")

	require.ErrorIs(t, err, domain.ErrUnresolvedReference)
	assert.Contains(t, err.Error(), "Ghost")
	assert.Contains(t, err.Error(), "Order")
}

func TestResolver_Resolve_MalformedToken(t *testing.T) {
	doc := &domain.Document{Schemas: map[string]*domain.RawSchema{}}
	r := NewResolver(doc)

	_, _, err := r.Resolve("Pet", "Order")

	assert.ErrorIs(t, err, domain.ErrUnresolvedReference)
}

func TestVisitStack_PushPopContains(t *testing.T) {
	s := newVisitStack()

	s.push("A")
	s.push("B")
	assert.True(t, s.contains("A"))
	assert.True(t, s.contains("B"))

	s.pop()
	assert.True(t, s.contains("A"))
	assert.False(t, s.contains("B"))
}
