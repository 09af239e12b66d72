package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skovland/pomo/internal/session"
)

const (
	// AppName is the application name used for config directory
	AppName = "pomo"
	// SessionsFile is the name of the JSON session log file
	SessionsFile = "sessions.json"
)

// GetStoragePath returns the path to the session log file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetStoragePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, SessionsFile), nil
}

// Store holds the in-memory session log and its backing file.
// The log is loaded once at process start and the whole file is
// rewritten after every append; records are never mutated or deleted.
type Store struct {
	path      string
	sessions  []session.Session
	recovered bool
	dropped   int
}

// Open loads the session log from path. It never fails: a missing file
// yields an empty log, and a file that exists but cannot be read or
// parsed yields an empty log with Recovered set, so a corrupt history
// resets rather than blocking the user. Malformed records are dropped
// and counted.
func Open(path string) *Store {
	st := &Store{path: path, sessions: []session.Session{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			// Unreadable counts the same as unparsable: start fresh.
			st.recovered = true
		}
		return st
	}

	var raw []session.Session
	if err := json.Unmarshal(data, &raw); err != nil {
		st.recovered = true
		return st
	}

	for _, s := range raw {
		if !s.Valid() {
			st.dropped++
			continue
		}
		st.sessions = append(st.sessions, s)
	}

	return st
}

// Path returns the backing file path.
func (st *Store) Path() string {
	return st.path
}

// Sessions returns the in-memory log in completion order.
func (st *Store) Sessions() []session.Session {
	return st.sessions
}

// Recovered reports whether the backing file existed but could not be
// parsed, in which case the log was reset to empty.
func (st *Store) Recovered() bool {
	return st.recovered
}

// Dropped returns the number of malformed records discarded on load.
func (st *Store) Dropped() int {
	return st.dropped
}

// Append adds one record to the log and rewrites the whole backing file.
// Uses atomic write pattern (write to temp file, then rename) for safety.
// If the write fails the in-memory log is left unchanged: the record is
// not committed and the error must be surfaced to the user.
func (st *Store) Append(s session.Session) error {
	next := make([]session.Session, 0, len(st.sessions)+1)
	next = append(next, st.sessions...)
	next = append(next, s)

	if err := write(st.path, next); err != nil {
		return fmt.Errorf("failed to save session log: %w", err)
	}

	st.sessions = next
	return nil
}

// write marshals the full session log and atomically replaces the
// backing file.
func write(path string, sessions []session.Session) error {
	// Session contains only JSON-safe types, so Marshal cannot fail
	data, _ := json.MarshalIndent(sessions, "", "  ")

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmpFile, path)
}
