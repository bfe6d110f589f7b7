package cli

import (
	"context"
	"errors"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driving"
)

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	input   string
	output  string
	backend string
}

func (m *mockConfigStore) Input() string     { return m.input }
func (m *mockConfigStore) OutputDir() string { return m.output }
func (m *mockConfigStore) Backend() string   { return m.backend }
func (m *mockConfigStore) CacheKind() string { return "file" }
func (m *mockConfigStore) RuleSeverity(string) (domain.Severity, bool) {
	return "", false
}

// mockCacheStore implements driven.CacheStore for testing.
type mockCacheStore struct {
	entries map[string]string
	loadErr error
	cleared bool
}

func (m *mockCacheStore) Load(_ context.Context) (map[string]string, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.entries, nil
}

func (m *mockCacheStore) Save(_ context.Context, entries map[string]string) error {
	m.entries = entries
	return nil
}

func (m *mockCacheStore) Clear(_ context.Context) error {
	m.cleared = true
	m.entries = nil
	return nil
}

// mockHistoryStore adds run history on top of mockCacheStore.
type mockHistoryStore struct {
	mockCacheStore
	runs []driven.RunRecord
}

func (m *mockHistoryStore) RecordRun(_ context.Context, rec driven.RunRecord) error {
	m.runs = append(m.runs, rec)
	return nil
}

func (m *mockHistoryStore) Runs(_ context.Context, limit int) ([]driven.RunRecord, error) {
	if limit > len(m.runs) {
		limit = len(m.runs)
	}
	return m.runs[:limit], nil
}

// mockPipeline implements Pipeline for testing.
type mockPipeline struct {
	result      *driving.GenerateResult
	generateErr error
	diags       []domain.Diagnostic
	lintErr     error
	lastSource  string
}

func (m *mockPipeline) Generate(_ context.Context, source string) (*driving.GenerateResult, error) {
	m.lastSource = source
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	if m.result == nil {
		return &driving.GenerateResult{}, nil
	}
	return m.result, nil
}

func (m *mockPipeline) Lint(_ context.Context, source string) ([]domain.Diagnostic, error) {
	m.lastSource = source
	return m.diags, m.lintErr
}

// mockRegistry implements driving.BackendRegistry for testing.
type mockRegistry struct {
	infos []driving.BackendInfo
}

func (m *mockRegistry) List() []driving.BackendInfo { return m.infos }

// setupTestApp wires the commands to fakes and returns a cleanup restoring
// the previous wiring and all flag state.
func setupTestApp(pipeline *mockPipeline, cache driven.CacheStore) func() {
	oldApp := app
	if cache == nil {
		cache = &mockCacheStore{}
	}
	app = &App{
		LoadConfig: func(string) (driven.ConfigStore, error) {
			return &mockConfigStore{input: "openapi.yaml", output: "lib/models", backend: "manual"}, nil
		},
		OpenCache: func(driven.ConfigStore, string) (driven.CacheStore, error) {
			return cache, nil
		},
		NewPipeline: func(driven.ConfigStore, string, driven.CacheStore, string) (Pipeline, error) {
			if pipeline == nil {
				return nil, errors.New("no pipeline")
			}
			return pipeline, nil
		},
		Registry: &mockRegistry{},
	}
	return func() {
		app = oldApp
		flagConfig = "modelgen.toml"
		verbose = false
		generateInput = ""
		generateOutput = ""
		generateBackend = ""
		generateWatch = false
		lintInput = ""
		cacheHistoryLimit = 10
	}
}
