package services

import (
	"fmt"
	"strings"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
)

// refPrefixes are the reference token prefixes of the two supported dialects.
var refPrefixes = []string{
	"#/definitions/",
	"#/components/schemas/",
}

// RefName extracts the schema name from a reference token. The second result
// is false when the token does not use a supported prefix.
func RefName(ref string) (string, bool) {
	for _, p := range refPrefixes {
		if strings.HasPrefix(ref, p) {
			name := strings.TrimPrefix(ref, p)
			if name == "" {
				return "", false
			}
			return name, true
		}
	}
	return "", false
}

// Resolver resolves pointer-style references between named schemas.
type Resolver struct {
	doc *domain.Document
}

// NewResolver creates a resolver over the loaded document.
func NewResolver(doc *domain.Document) *Resolver {
	return &Resolver{doc: doc}
}

// Resolve returns the schema designated by the reference token. from is the
// name of the referencing schema, carried in the error for diagnostics.
func (r *Resolver) Resolve(ref, from string) (name string, schema *domain.RawSchema, err error) {
	name, ok := RefName(ref)
	if !ok {
		return "", nil, fmt.Errorf("schema %s: token %q: %w", from, ref, domain.ErrUnresolvedReference)
	}
	schema = r.doc.Get(name)
	if schema == nil {
		return "", nil, fmt.Errorf("schema %s: %q names no schema: %w", from, name, domain.ErrUnresolvedReference)
	}
	return name, schema, nil
}

// visitStack is the per-expansion visited-name stack. Re-entering a name
// already on the stack short-circuits resolution: the in-progress class is
// reused by name instead of re-expanded. This is a deliberate truncation
// policy, not an error, and is what lets self-referential and
// mutually-referential schemas resolve to a named reference rather than
// recurse unboundedly.
type visitStack struct {
	names []string
	on    map[string]bool
}

func newVisitStack() *visitStack {
	return &visitStack{on: make(map[string]bool)}
}

func (v *visitStack) push(name string) {
	v.names = append(v.names, name)
	v.on[name] = true
}

func (v *visitStack) pop() {
	last := v.names[len(v.names)-1]
	v.names = v.names[:len(v.names)-1]
	delete(v.on, last)
}

func (v *visitStack) contains(name string) bool {
	return v.on[name]
}
