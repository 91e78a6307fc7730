package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// Defaults holds the locations vpath uses when nothing else is configured.
type Defaults struct {
	ConfigPath string
	BaseDir    string
	LogDir     string
}

// GetDefaults resolves default locations. Environment variables win over
// the home directory fallbacks:
//   - VPATH_CONFIG_PATH: config file (default: ~/.config/vpath.toml)
//   - VPATH_HOME: data directory (default: ~/.local/share/vpath)
func GetDefaults() (*Defaults, error) {
	configPath := os.Getenv("VPATH_CONFIG_PATH")
	baseDir := os.Getenv("VPATH_HOME")

	if configPath == "" || baseDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		if configPath == "" {
			configPath = filepath.Join(homeDir, ".config", "vpath.toml")
		}
		if baseDir == "" {
			baseDir = filepath.Join(homeDir, ".local", "share", "vpath")
		}
	}

	return &Defaults{
		ConfigPath: configPath,
		BaseDir:    baseDir,
		LogDir:     filepath.Join(baseDir, "log"),
	}, nil
}
