package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skovland/pomo/internal/cli"
	"github.com/skovland/pomo/internal/config"
	"github.com/skovland/pomo/internal/engine"
	"github.com/skovland/pomo/internal/notify"
	"github.com/skovland/pomo/internal/prompt"
)

var soundFlag string

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start <task>",
	Short: "Start a pomodoro session",
	Long: `Start a 25-minute pomodoro work session for the given task.

The countdown blocks until the session completes; the completed session
is then recorded to history and you are offered a 5-minute break.

Sound preference is asked interactively on first start. Set it
permanently with the sound_mode config key, or per run with --sound.

Examples:
  pomo start Study Go
  pomo start "Write project proposal"
  pomo start --sound silent Deep work`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		startSession(args)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().StringVar(&soundFlag, "sound", "", "notification mode: beep, voice or silent")
}

// startSession runs one full pomodoro session for the given task
func startSession(args []string) {
	task := strings.TrimSpace(strings.Join(args, " "))
	if task == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Please provide a task name")
		_, _ = fmt.Fprintln(deps.Stderr, `Usage: pomo start "Your task name"`)
		deps.Exit(1)
		return
	}

	cfg, ok := loadConfig()
	if !ok {
		return
	}

	mode, ok := resolveSoundMode(cfg)
	if !ok {
		return
	}

	st, ok := openStore()
	if !ok {
		return
	}

	eng := &engine.Engine{
		WorkMinutes:  cfg.WorkMinutes,
		BreakMinutes: cfg.BreakMinutes,
		Store:        st,
		Notifier:     notify.New(mode, deps.Stdout),
		Display:      &cli.TerminalDisplay{Out: deps.Stdout},
		Prompt:       prompt.BreakPrompt{In: deps.Stdin, Out: deps.Stdout, Minutes: cfg.BreakMinutes},
	}

	_, _ = fmt.Fprintf(deps.Stdout, "\nStarting pomodoro for: %s\n", task)
	_, _ = fmt.Fprintln(deps.Stdout, cli.Rule())

	if _, err := eng.Run(task); err != nil {
		// The work interval elapsed but the record did not persist.
		// This must be loud, unlike load-time corruption.
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save session to history")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the storage file is writable: %s\n", st.Path())
		deps.Exit(1)
		return
	}
}

// resolveSoundMode resolves the notifier mode once per process: flag,
// then config, then the interactive chooser.
func resolveSoundMode(cfg config.Config) (notify.Mode, bool) {
	choice := soundFlag
	if choice == "" {
		choice = cfg.SoundMode
	}

	if choice != "" {
		mode, err := notify.ParseMode(choice)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use --sound beep, --sound voice or --sound silent")
			deps.Exit(1)
			return "", false
		}
		return mode, true
	}

	mode, err := prompt.ChooseSoundMode(deps.Stdin, deps.Stdout)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Set sound_mode in the config file or pass --sound to skip the prompt")
		deps.Exit(1)
		return "", false
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Sound mode: %s\n", mode)
	return mode, true
}
