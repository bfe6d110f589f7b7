// Package file loads project configuration from modelgen.toml, with
// environment variable overrides applied on top.
package file

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// fileConfig is the on-disk shape of modelgen.toml.
type fileConfig struct {
	Input   string     `toml:"input"`
	Output  string     `toml:"output"`
	Backend string     `toml:"backend"`
	Cache   string     `toml:"cache"`
	Lint    lintConfig `toml:"lint"`
}

type lintConfig struct {
	Rules map[string]string `toml:"rules"`
}

// envConfig are the environment overrides applied after the file.
type envConfig struct {
	Input   string `env:"MODELGEN_INPUT"`
	Output  string `env:"MODELGEN_OUTPUT"`
	Backend string `env:"MODELGEN_BACKEND"`
	Cache   string `env:"MODELGEN_CACHE"`
}

// ConfigStore is a TOML-backed implementation of driven.ConfigStore.
type ConfigStore struct {
	cfg        fileConfig
	severities map[string]domain.Severity
}

// NewConfigStore loads path. A missing file is not an error: defaults and
// environment overrides still apply. An unparsable file or an invalid lint
// severity is an error, since silently ignoring configuration would make
// runs diverge from what the user wrote down.
func NewConfigStore(path string) (*ConfigStore, error) {
	s := &ConfigStore{
		cfg: fileConfig{
			Output:  "lib/models",
			Backend: "manual",
			Cache:   "file",
		},
		severities: map[string]domain.Severity{},
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &s.cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	var overrides envConfig
	if err := env.Parse(&overrides); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if overrides.Input != "" {
		s.cfg.Input = overrides.Input
	}
	if overrides.Output != "" {
		s.cfg.Output = overrides.Output
	}
	if overrides.Backend != "" {
		s.cfg.Backend = overrides.Backend
	}
	if overrides.Cache != "" {
		s.cfg.Cache = overrides.Cache
	}

	for rule, raw := range s.cfg.Lint.Rules {
		sev, err := domain.ParseSeverity(raw)
		if err != nil {
			return nil, fmt.Errorf("lint rule %q: %w", rule, err)
		}
		s.severities[rule] = sev
	}
	return s, nil
}

// Input is the configured document source.
func (s *ConfigStore) Input() string { return s.cfg.Input }

// OutputDir is the configured output directory.
func (s *ConfigStore) OutputDir() string { return s.cfg.Output }

// Backend is the configured emission backend name.
func (s *ConfigStore) Backend() string { return s.cfg.Backend }

// CacheKind selects the cache store implementation.
func (s *ConfigStore) CacheKind() string { return s.cfg.Cache }

// RuleSeverity returns the configured severity for a lint rule.
func (s *ConfigStore) RuleSeverity(rule string) (domain.Severity, bool) {
	sev, ok := s.severities[rule]
	return sev, ok
}
