package config

import (
	"os"
	"path/filepath"
	"strings"
)

const appDirName = "pipechat"

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// GetConfigDir returns the settings directory, ~/.config/pipechat.
func GetConfigDir() string {
	return filepath.Join(homeDir(), ".config", appDirName)
}

// GetDefaultDataDir returns the default data directory, ~/.local/share/pipechat.
func GetDefaultDataDir() string {
	return filepath.Join(homeDir(), ".local", "share", appDirName)
}

// GetSettingsFilePath returns the path to settings.toml.
func GetSettingsFilePath() string {
	return filepath.Join(GetConfigDir(), "settings.toml")
}

// ExpandPath expands a leading ~ and environment variables in a path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir(), path[2:])
	}
	return filepath.Clean(os.ExpandEnv(path))
}

// EnsureDir creates a directory with user-only access if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0700)
}

// FileExists reports whether a file exists at path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
