package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driving"
	"github.com/modelgen-labs/modelgen-cli/internal/logger"
)

var (
	generateInput   string
	generateOutput  string
	generateBackend string
	generateWatch   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Dart models from a schema document",
	Long: `Reads the schema document, lints it, and regenerates every model whose
schema content changed since the previous run. Unchanged schemas are
skipped; files for schemas removed from the document are deleted.

Flags override the corresponding modelgen.toml settings.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "schema document path or URL")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output directory for generated files")
	generateCmd.Flags().StringVarP(&generateBackend, "backend", "b", "", "emission backend name")
	generateCmd.Flags().BoolVar(&generateWatch, "watch", false, "regenerate on input file changes")
	rootCmd.AddCommand(generateCmd)
}

// generateSettings are the effective settings of one generate invocation:
// configuration with flag overrides applied.
type generateSettings struct {
	input   string
	output  string
	backend string
}

func resolveGenerateSettings(cfg driven.ConfigStore) (generateSettings, error) {
	s := generateSettings{
		input:   cfg.Input(),
		output:  cfg.OutputDir(),
		backend: cfg.Backend(),
	}
	if generateInput != "" {
		s.input = generateInput
	}
	if generateOutput != "" {
		s.output = generateOutput
	}
	if generateBackend != "" {
		s.backend = generateBackend
	}
	if s.input == "" {
		return s, errors.New("no input document: pass --input or set input in modelgen.toml")
	}
	return s, nil
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if app == nil || app.NewPipeline == nil || app.OpenCache == nil {
		return errors.New("generator not configured")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	settings, err := resolveGenerateSettings(cfg)
	if err != nil {
		return err
	}

	cache, err := app.OpenCache(cfg, filepath.Dir(flagConfig))
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	pipeline, err := app.NewPipeline(cfg, settings.backend, cache, settings.output)
	if err != nil {
		return err
	}

	if generateWatch {
		return watchAndGenerate(cmd, pipeline, settings.input)
	}
	return generateOnce(cmd, pipeline, settings.input)
}

func generateOnce(cmd *cobra.Command, pipeline Pipeline, input string) error {
	result, err := pipeline.Generate(cmd.Context(), input)
	if err != nil {
		return err
	}

	hasErrors := printDiagnostics(cmd, result.Diagnostics)
	printSummary(cmd, result)
	if hasErrors {
		return errors.New("generation completed with lint errors")
	}
	return nil
}

func printSummary(cmd *cobra.Command, result *driving.GenerateResult) {
	parts := []string{
		fmt.Sprintf("%d generated", len(result.Regenerated)),
		fmt.Sprintf("%d up to date", len(result.Skipped)),
	}
	if len(result.Removed) > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", len(result.Removed)))
	}
	cmd.Println(successStyle.Render("✓") + " " + strings.Join(parts, ", "))
}

// watchAndGenerate runs one generation, then reruns on every change to the
// input file until the context is cancelled. Remote inputs cannot be
// watched.
func watchAndGenerate(cmd *cobra.Command, pipeline Pipeline, input string) error {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return errors.New("--watch requires a local input file")
	}

	if err := generateOnce(cmd, pipeline, input); err != nil {
		// Keep watching: a broken intermediate save should not end the
		// session.
		cmd.PrintErrln(errorStyle.Render("error:") + " " + err.Error())
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save and
	// the inode-level watch would be lost.
	dir := filepath.Dir(input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(input)
	cmd.Printf("watching %s\n", input)

	return watchLoop(cmd.Context(), watcher.Events, watcher.Errors, target, func() {
		if err := generateOnce(cmd, pipeline, input); err != nil {
			cmd.PrintErrln(errorStyle.Render("error:") + " " + err.Error())
		}
	})
}

// watchLoop debounces change events for target and invokes regenerate after
// each quiet period.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, target string, regenerate func()) error {
	const debounce = 250 * time.Millisecond

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("change detected: %s", event)
			if pending {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			}
			timer.Reset(debounce)
			pending = true
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)
		case <-timer.C:
			pending = false
			regenerate()
		}
	}
}
