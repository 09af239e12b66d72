package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/skovland/pomo/internal/config"
	"github.com/skovland/pomo/internal/storage"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Stdin       io.Reader
	Exit        func(code int)
	StoragePath func() (string, error)
	ConfigPath  func() (string, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Stdin:       os.Stdin,
		Exit:        os.Exit,
		StoragePath: storage.GetStoragePath,
		ConfigPath:  config.GetConfigPath,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// loadConfig resolves and loads the TOML configuration. On failure it
// prints the error and exits; the second return value reports success.
func loadConfig() (config.Config, bool) {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return config.Config{}, false
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Fix or remove the config file: %s\n", configPath)
		deps.Exit(1)
		return config.Config{}, false
	}

	return cfg, true
}

// openStore loads the session log, surfacing recovery warnings on
// stderr. Load never fails: a missing or corrupt log starts empty.
func openStore() (*storage.Store, bool) {
	storagePath, err := deps.StoragePath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine storage location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return nil, false
	}

	st := storage.Open(storagePath)
	if st.Recovered() {
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: session history was unreadable and has been reset")
	}
	if n := st.Dropped(); n > 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: dropped %d malformed session record(s)\n", n)
	}

	return st, true
}
