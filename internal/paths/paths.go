// Package paths provides a single source of truth for dialogcoach file paths.
// All path helpers honor environment variable overrides for isolated testing.
//
// Path resolution precedence:
//  1. DIALOGCOACH_CONFIG overrides the config file path directly
//  2. DIALOGCOACH_DIR sets the base directory (derives config and log paths)
//  3. Default behavior (~/.dialogcoach, ~/.config/dialogcoach) when no env vars are set
package paths

import (
	"os"
	"path/filepath"
)

// Environment variable names for path overrides.
const (
	// EnvDir is the base directory override (e.g., /tmp/dialogcoach-e2e).
	EnvDir = "DIALOGCOACH_DIR"

	// EnvConfigPath overrides the config file path directly.
	EnvConfigPath = "DIALOGCOACH_CONFIG"
)

// BaseDir returns the data directory (~/.dialogcoach by default).
// Honors DIALOGCOACH_DIR.
func BaseDir() (string, error) {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dialogcoach"), nil
}

// ConfigDir returns the config directory (~/.config/dialogcoach by default).
// When DIALOGCOACH_DIR is set, returns DIALOGCOACH_DIR/config instead.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvDir); dir != "" {
		return filepath.Join(dir, "config"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dialogcoach"), nil
}

// ConfigPath returns the path to the config file.
// Precedence: DIALOGCOACH_CONFIG > ConfigDir()/config.toml
func ConfigPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the log file path (BaseDir()/dialogcoach.log).
func LogPath() string {
	base, err := BaseDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "dialogcoach.log")
	}
	return filepath.Join(base, "dialogcoach.log")
}

// ReportsDir returns the default output directory for rendered reports.
func ReportsDir() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "reports"), nil
}
