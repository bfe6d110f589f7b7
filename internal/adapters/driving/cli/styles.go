package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// printDiagnostics renders findings grouped as reported. It returns true
// when at least one error-severity finding was printed.
func printDiagnostics(cmd *cobra.Command, diags []domain.Diagnostic) bool {
	hasErrors := false
	for _, d := range diags {
		label := warningStyle.Render(string(d.Severity))
		if d.Severity == domain.SeverityError {
			label = errorStyle.Render(string(d.Severity))
			hasErrors = true
		}
		cmd.Printf("%s %s: %s %s\n", label, d.Schema, d.Message, mutedStyle.Render("["+d.Rule+"]"))
	}
	return hasErrors
}
