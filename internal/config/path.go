// Package config loads forage settings from viper and resolves the paths
// they name.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// appDir is the per-user directory holding the config file and database.
const appDir = ".config/forage"

// Dir returns the per-user forage directory, or "" when the home directory
// cannot be determined.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, appDir)
}

// ExpandPath resolves a leading ~ to the home directory and then expands
// $VAR references. Paths the home directory cannot resolve are returned
// with only the variables expanded.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + strings.TrimPrefix(path, "~")
		}
	}
	return os.ExpandEnv(path)
}
