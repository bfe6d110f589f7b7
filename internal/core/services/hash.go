package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
)

// HashSchema computes the stable content hash of a raw schema. The generic
// source tree is serialized through encoding/json, which writes map keys in
// sorted order at every level, so the hash is invariant to property
// reordering in the source document: equality is structural, not textual.
func HashSchema(raw *domain.RawSchema) string {
	canonical, err := json.Marshal(raw.Source)
	if err != nil {
		// The source tree is built from decoded YAML/JSON scalars, maps and
		// slices, all of which marshal. Hash the error text so an impossible
		// value still changes the hash rather than panicking.
		canonical = fmt.Appendf(nil, "unhashable: %v", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}
