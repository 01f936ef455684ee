package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/chag/config.yml
// - macOS: ~/Library/Application Support/chag/config.yml
// - Windows: %APPDATA%\chag\config.yml
//
// If XDG_CONFIG_HOME is set, it will be respected on Linux.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "chag", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file,
// relative to the current directory.
func ProjectConfigPath() string {
	return ".chag.yml"
}

// LegacyProjectConfigPath returns the path to the legacy JSON project config.
func LegacyProjectConfigPath() string {
	return ".chag.json"
}
