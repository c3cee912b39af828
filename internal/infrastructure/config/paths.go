package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "fontify"
	databaseName = "fontify.sqlite"

	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
}

// GetXDGDirs returns $XDG_CONFIG_HOME/fontify and $XDG_DATA_HOME/fontify,
// defaulting to ~/.config/fontify and ~/.local/share/fontify.
// With ENV=dev both point at ./.dev/fontify.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: devDir, DataHome: devDir}, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	dataHome := os.Getenv("XDG_DATA_HOME")
	if configHome == "" || dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		if configHome == "" {
			configHome = filepath.Join(homeDir, ".config")
		}
		if dataHome == "" {
			dataHome = filepath.Join(homeDir, ".local", "share")
		}
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(configHome, appName),
		DataHome:   filepath.Join(dataHome, appName),
	}, nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.ConfigHome, "config.toml"), nil
}

// GetDatabaseFile returns the default SQLite store path.
func GetDatabaseFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.DataHome, databaseName), nil
}
