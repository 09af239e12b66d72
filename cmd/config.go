package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skovland/pomo/internal/config"
)

// configCmd represents the config parent command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pomo configuration",
	Long: `Manage the TOML configuration file.

Configurable keys:
  work_minutes     Length of one work session (default 25)
  break_minutes    Length of the optional break (default 5)
  sound_mode       beep, voice or silent (default: ask on each start)
  history_limit    Default number of sessions shown by history (default 10)`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Long:  `Create a commented sample config file with the default values.`,
	Run: func(cmd *cobra.Command, args []string) {
		configInit()
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		configPath()
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Show the configuration in effect, merging the config file with defaults.`,
	Run: func(cmd *cobra.Command, args []string) {
		configShow()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}

// configInit writes a sample config file unless one already exists
func configInit() {
	path, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to determine config location: %v\n", err)
		deps.Exit(1)
		return
	}

	if _, err := os.Stat(path); err == nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Config file already exists at %s\n", path)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Edit it directly, or remove it first to regenerate")
		deps.Exit(1)
		return
	}

	if err := os.WriteFile(path, []byte(config.GenerateSampleConfig()), 0644); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
}

// configPath prints the config file location
func configPath() {
	path, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to determine config location: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, path)
}

// configShow prints the effective configuration values
func configShow() {
	cfg, ok := loadConfig()
	if !ok {
		return
	}

	soundMode := cfg.SoundMode
	if soundMode == "" {
		soundMode = "(ask on each start)"
	}

	_, _ = fmt.Fprintf(deps.Stdout, "work_minutes  = %d\n", cfg.WorkMinutes)
	_, _ = fmt.Fprintf(deps.Stdout, "break_minutes = %d\n", cfg.BreakMinutes)
	_, _ = fmt.Fprintf(deps.Stdout, "sound_mode    = %s\n", soundMode)
	_, _ = fmt.Fprintf(deps.Stdout, "history_limit = %d\n", cfg.HistoryLimit)
}
