package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
)

func TestHashSchema_Deterministic(t *testing.T) {
	raw := &domain.RawSchema{Source: map[string]any{"type": "object"}}

	assert.Equal(t, HashSchema(raw), HashSchema(raw))
}

func TestHashSchema_ReorderInvariant(t *testing.T) {
	// Property reordering in the source text decodes to the same map and
	// must not change the hash.
	a := &domain.RawSchema{Source: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":   map[string]any{"type": "integer"},
			"name": map[string]any{"type": "string"},
		},
	}}
	b := &domain.RawSchema{Source: map[string]any{
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"id":   map[string]any{"type": "integer"},
		},
		"type": "object",
	}}

	assert.Equal(t, HashSchema(a), HashSchema(b))
}

func TestHashSchema_ContentSensitive(t *testing.T) {
	a := &domain.RawSchema{Source: map[string]any{"type": "string"}}
	b := &domain.RawSchema{Source: map[string]any{"type": "integer"}}

	assert.NotEqual(t, HashSchema(a), HashSchema(b))
}

func TestHashSchema_NilSource(t *testing.T) {
	raw := &domain.RawSchema{}

	assert.NotEmpty(t, HashSchema(raw))
}
