package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/skovland/pomo/internal/cli"
	"github.com/skovland/pomo/internal/stats"
)

// todayCmd represents the today command
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "View today's completed sessions",
	Long:  `List the pomodoro sessions completed today, with total count and focus time.`,
	Run: func(cmd *cobra.Command, args []string) {
		showToday()
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

// showToday lists today's completed sessions
func showToday() {
	st, ok := openStore()
	if !ok {
		return
	}

	now := time.Now()
	todays := stats.Today(st.Sessions(), now)

	if len(todays) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No sessions completed today yet.")
		_, _ = fmt.Fprintln(deps.Stdout, `Start one with: pomo start "Your task"`)
		return
	}

	cli.RenderToday(deps.Stdout, todays, now)
}
