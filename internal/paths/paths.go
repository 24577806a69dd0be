// Package paths resolves where remonitor keeps its files.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName       = "remonitor"
	placementFile    = "remonitor.json"
	settingsFileName = "config.yaml"
)

// ConfigDir returns the remonitor configuration directory. Priority:
// 1) $XDG_CONFIG_HOME/remonitor (if set)
// 2) os.UserConfigDir()/remonitor
// 3) ~/.config/remonitor
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}

	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, appDirName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", appDirName), nil
}

// PlacementPath returns the saved placement file path.
func PlacementPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, placementFile), nil
}

// SettingsPath returns the settings file path.
func SettingsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFileName), nil
}
