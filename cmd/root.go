package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "A command-line pomodoro timer",
	Long: `pomo is a pomodoro technique timer for the terminal.

Work in focused 25-minute sessions, take 5-minute breaks, and keep a
persisted history of every completed session.

Usage:
  pomo start <task>     Start a 25-minute pomodoro session
  pomo today            View today's completed sessions
  pomo history          View recent session history
  pomo stats            View productivity statistics

About the pomodoro technique:
  - Work for 25 minutes (one pomodoro)
  - Take a 5-minute break
  - After four pomodoros, take a longer 15-30 minute break`,
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"pomo version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
