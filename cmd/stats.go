package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skovland/pomo/internal/cli"
	"github.com/skovland/pomo/internal/stats"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View productivity statistics",
	Long: `Show aggregate statistics over the full session history:

  - Total pomodoros and total focus time
  - Active days and average sessions per active day
  - Most productive day
  - Session counts for the last seven active days`,
	Run: func(cmd *cobra.Command, args []string) {
		showStats()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// showStats renders aggregate statistics for the whole log
func showStats() {
	st, ok := openStore()
	if !ok {
		return
	}

	if len(st.Sessions()) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No data yet. Complete some pomodoros first!")
		return
	}

	cli.RenderStats(deps.Stdout, stats.Aggregate(st.Sessions()))
}
