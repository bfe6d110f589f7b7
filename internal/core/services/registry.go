package services

import (
	"fmt"
	"sort"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driving"
)

// Ensure BackendRegistry implements the interface.
var _ driving.BackendRegistry = (*BackendRegistry)(nil)

// BackendRegistry holds the emission backends available to a run. Backends
// register at startup; the generator resolves its backend once, by name, and
// keeps the concrete reference for the whole run.
type BackendRegistry struct {
	backends map[string]driven.EmissionBackend
}

// NewBackendRegistry creates a registry over the given backends.
func NewBackendRegistry(backends ...driven.EmissionBackend) *BackendRegistry {
	r := &BackendRegistry{backends: make(map[string]driven.EmissionBackend, len(backends))}
	for _, b := range backends {
		r.backends[b.Name()] = b
	}
	return r
}

// Lookup returns the backend registered under name.
func (r *BackendRegistry) Lookup(name string) (driven.EmissionBackend, error) {
	b, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, domain.ErrUnknownBackend)
	}
	return b, nil
}

// List returns registered backends sorted by name.
func (r *BackendRegistry) List() []driving.BackendInfo {
	infos := make([]driving.BackendInfo, 0, len(r.backends))
	for _, b := range r.backends {
		infos = append(infos, driving.BackendInfo{Name: b.Name(), Description: b.Description()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
