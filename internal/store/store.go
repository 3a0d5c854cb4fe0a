// Package store persists sessions and configuration as JSON files under a
// user-scoped data directory. Writes are whole-file read-modify-write; a
// single process instance is assumed.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	sessionsFile = "sessions.json"
	configFile   = "config.json"
)

// DefaultDir returns the default data directory (~/.pomodoro).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".pomodoro"), nil
}

// ensureDir creates the data directory if it does not exist yet.
func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return nil
}
