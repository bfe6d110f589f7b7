// Package cli implements the command line interface. Commands are thin:
// they resolve configuration, build the pipeline through the wired App and
// print results. All generation logic lives in the core services.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driving"
	"github.com/modelgen-labs/modelgen-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Pipeline is the combined surface the generate and lint commands drive.
type Pipeline interface {
	driving.Generator
	driving.Linter
}

// App wires the commands to the application core. main constructs one at
// startup; tests substitute fakes.
type App struct {
	// LoadConfig loads project configuration from path.
	LoadConfig func(path string) (driven.ConfigStore, error)

	// OpenCache opens the cache store selected by the configuration.
	OpenCache func(cfg driven.ConfigStore, projectDir string) (driven.CacheStore, error)

	// NewPipeline builds the generation pipeline for one run.
	NewPipeline func(cfg driven.ConfigStore, backend string, cache driven.CacheStore, outputDir string) (Pipeline, error)

	// Registry lists the available emission backends.
	Registry driving.BackendRegistry
}

var app *App

// SetApp sets the application wiring used by all commands.
func SetApp(a *App) {
	app = a
}

var (
	flagConfig string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "modelgen",
	Short: "Generate statically typed Dart models from OpenAPI schemas",
	Long: `modelgen reads an OpenAPI or Swagger document and generates Dart model
classes: resolved references, flattened allOf composition, discriminated
unions, enums and incremental regeneration driven by content hashes.

Generated files carry marker comments; edits outside the marked region
survive regeneration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
		logger.SetOutput(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "modelgen.toml", "path to the project configuration file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the configured project configuration through the App.
func loadConfig() (driven.ConfigStore, error) {
	if app == nil || app.LoadConfig == nil {
		return nil, errors.New("application not configured")
	}
	return app.LoadConfig(flagConfig)
}
