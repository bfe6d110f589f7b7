package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List available emission backends",
	RunE:  runBackends,
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}

func runBackends(cmd *cobra.Command, _ []string) error {
	if app == nil || app.Registry == nil {
		return errors.New("backend registry not configured")
	}
	for _, info := range app.Registry.List() {
		cmd.Printf("  %-12s %s\n", info.Name, mutedStyle.Render(info.Description))
	}
	return nil
}
