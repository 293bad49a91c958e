package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionString returns the build version, or "dev" when unset.
func (a *App) versionString() string {
	if a.versionInfo.Version == "" {
		return "dev"
	}
	return a.versionInfo.Version
}

// NewVersionCmd creates the version command
func NewVersionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			commit := app.versionInfo.Commit
			date := app.versionInfo.Date

			// Use default values if not set
			if commit == "" {
				commit = "unknown"
			}
			if date == "" {
				date = "unknown"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "tianniu version %s\n", app.versionString())
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
			fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", date)

			return nil
		},
	}

	return cmd
}
