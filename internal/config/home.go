package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv names the environment variable that overrides the config directory.
const HomeEnv = "QFIND_HOME"

// ConfigFileName is the config file looked up inside the home directory.
const ConfigFileName = "config.yaml"

// GetHome returns the qfind configuration directory.
// Priority order:
//  1. QFIND_HOME environment variable (if set)
//  2. <user config dir>/qfind
//
// The directory is never created; qfind does not write files.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}
	return filepath.Join(base, "qfind"), nil
}

// DefaultConfigPath returns the path of the config file in the home directory.
func DefaultConfigPath() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigFileName), nil
}
