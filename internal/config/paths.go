package config

import (
	"os"
	"path/filepath"
)

// ConfigDir resolves the configuration directory, honoring XDG conventions.
func ConfigDir() string {
	if base := os.Getenv(envXDGConfig); base != "" {
		return filepath.Join(base, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", appDirName)
}

// ConfigPath is the location of the persisted config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// DataDir resolves the data directory, honoring XDG conventions.
func DataDir() string {
	if base := os.Getenv(envXDGData); base != "" {
		return filepath.Join(base, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".local", "share", appDirName)
}

// CalendarsDir is where exported calendars land unless overridden.
func CalendarsDir() string {
	if dir := os.Getenv(envOutputDir); dir != "" {
		return dir
	}
	return filepath.Join(DataDir(), "calendars")
}
