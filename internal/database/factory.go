package database

import (
	"fmt"
	"os"
	"path/filepath"

	"vpath-go/internal/config"
	"vpath-go/internal/mount"
)

// NewStoreFromConfig creates a mount.Store implementation based on the database config type.
func NewStoreFromConfig(cfg config.DatabaseConfig) (mount.Store, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite database")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		return openStore(filepath.Join(cfg.DataDir, "vpath.db"))
	case "memory", "":
		return openStore(":memory:")
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}

// openStore keeps a failed open from surfacing as a non-nil interface.
func openStore(path string) (mount.Store, error) {
	s, err := NewSQLiteStore(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}
