package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skovland/pomo/internal/cli"
	"github.com/skovland/pomo/internal/storage"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check session log health",
	Long: `Validate the session log file and report on its health status.

Distinguishes a log that is empty because it is new from one that was
reset after corruption, and reports how many malformed records were
dropped on load.`,
	Run: func(cmd *cobra.Command, args []string) {
		validateStorage()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validateStorage checks the session log health and reports status
func validateStorage() {
	storagePath, err := deps.StoragePath()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to get storage path: %v\n", err)
		deps.Exit(1)
		return
	}

	health := storage.Validate(storagePath)

	_, _ = fmt.Fprintf(deps.Stdout, "Session log: %s\n", storagePath)
	_, _ = fmt.Fprintln(deps.Stdout, cli.Rule())

	if !health.Exists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: no session log yet (starts empty)")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Valid sessions:    %d\n", health.ValidSessions)
	_, _ = fmt.Fprintf(deps.Stdout, "Dropped records:   %d\n", health.Dropped)
	_, _ = fmt.Fprintln(deps.Stdout, cli.Rule())

	switch {
	case health.Recovered:
		_, _ = fmt.Fprintln(deps.Stderr, "Status: log file is unparsable and will be reset on the next completed session")
	case health.Dropped > 0:
		_, _ = fmt.Fprintf(deps.Stderr, "Status: log has %d malformed record(s); they are ignored\n", health.Dropped)
	default:
		_, _ = fmt.Fprintln(deps.Stdout, "Status: session log is healthy")
	}
}
