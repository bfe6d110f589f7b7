package cli

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"
)

var lintInput string

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check a schema document for quality issues",
	Long: `Resolves the schema document and reports quality findings without
writing any files. The exit status is non-zero when any finding has
error severity.`,
	RunE: runLint,
}

func init() {
	lintCmd.Flags().StringVarP(&lintInput, "input", "i", "", "schema document path or URL")
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, _ []string) error {
	if app == nil || app.NewPipeline == nil || app.OpenCache == nil {
		return errors.New("linter not configured")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	input := cfg.Input()
	if lintInput != "" {
		input = lintInput
	}
	if input == "" {
		return errors.New("no input document: pass --input or set input in modelgen.toml")
	}

	// Linting never writes, but the pipeline constructor still needs its
	// collaborators.
	cache, err := app.OpenCache(cfg, filepath.Dir(flagConfig))
	if err != nil {
		return err
	}
	pipeline, err := app.NewPipeline(cfg, cfg.Backend(), cache, cfg.OutputDir())
	if err != nil {
		return err
	}

	diags, err := pipeline.Lint(cmd.Context(), input)
	if err != nil {
		return err
	}
	if len(diags) == 0 {
		cmd.Println(successStyle.Render("✓") + " no findings")
		return nil
	}
	if printDiagnostics(cmd, diags) {
		return errors.New("lint reported errors")
	}
	return nil
}
