package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skovland/pomo/internal/cli"
	"github.com/skovland/pomo/internal/stats"
)

var limitFlag int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View recent session history",
	Long: `List recent pomodoro sessions, most recent first.

Shows the last 10 sessions by default; change the default with the
history_limit config key or per run with --limit. A non-positive limit
shows nothing.`,
	Run: func(cmd *cobra.Command, args []string) {
		showHistory(cmd)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&limitFlag, "limit", 0, "number of sessions to show (defaults to history_limit config)")
}

// showHistory lists the most recent sessions
func showHistory(cmd *cobra.Command) {
	cfg, ok := loadConfig()
	if !ok {
		return
	}

	st, ok := openStore()
	if !ok {
		return
	}

	if len(st.Sessions()) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No sessions recorded yet.")
		_, _ = fmt.Fprintln(deps.Stdout, `Start one with: pomo start "Your task"`)
		return
	}

	limit := cfg.HistoryLimit
	if cmd.Flags().Changed("limit") {
		limit = limitFlag
	}

	recent := stats.Recent(st.Sessions(), limit)
	if len(recent) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No sessions to show.")
		return
	}

	cli.RenderHistory(deps.Stdout, recent, limit)
}
