package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/skovland/pomo/internal/notify"
)

const (
	// AppName is the application name used for config directory
	AppName = "pomo"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// WorkMinutes is the length of one work countdown
	WorkMinutes int `toml:"work_minutes"`
	// BreakMinutes is the length of the optional break countdown
	BreakMinutes int `toml:"break_minutes"`
	// SoundMode selects the notifier backend (beep, voice or silent).
	// Empty means ask interactively on each start.
	SoundMode string `toml:"sound_mode"`
	// HistoryLimit is the default number of sessions shown by history
	HistoryLimit int `toml:"history_limit"`
}

// DefaultConfig returns a Config with the standard pomodoro defaults:
// 25-minute work sessions, 5-minute breaks, sound mode asked on first
// start, and ten sessions of history.
func DefaultConfig() Config {
	return Config{
		WorkMinutes:  25,
		BreakMinutes: 5,
		SoundMode:    "",
		HistoryLimit: 10,
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault reads the config file, returning defaults when it does
// not exist. A file that exists but cannot be parsed or fails
// validation is an error: misconfiguration should be loud, unlike a
// corrupt session log.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that durations are positive and the sound mode, when
// set, names a known backend.
func (c Config) Validate() error {
	if c.WorkMinutes <= 0 {
		return fmt.Errorf("work_minutes must be positive, got %d", c.WorkMinutes)
	}
	if c.BreakMinutes <= 0 {
		return fmt.Errorf("break_minutes must be positive, got %d", c.BreakMinutes)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive, got %d", c.HistoryLimit)
	}
	if c.SoundMode != "" {
		if _, err := notify.ParseMode(c.SoundMode); err != nil {
			return err
		}
	}
	return nil
}

// GenerateSampleConfig returns a commented sample config file with the
// default values filled in.
func GenerateSampleConfig() string {
	return `# pomo configuration file

# Length of one work session, in minutes
work_minutes = 25

# Length of the optional break, in minutes
break_minutes = 5

# Notification mode: "beep", "voice" or "silent".
# Leave empty to be asked on each start.
sound_mode = ""

# Default number of sessions shown by 'pomo history'
history_limit = 10
`
}
