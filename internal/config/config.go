package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"

	"vpath-go/internal/vpath"
)

// Config represents the main configuration for vpath.
type Config struct {
	BaseDir   string         `toml:"base_dir"`
	LogDir    string         `toml:"log_dir"`
	LogLevel  string         `toml:"log_level"` // "debug", "info" (default), "warn" or "error"
	Separator string         `toml:"separator"` // display separator: "/" (default) or "\\"
	Database  DatabaseConfig `toml:"database"`
	Mounts    []MountConfig  `toml:"mounts"`
	Filter    FilterConfig   `toml:"filter"`
}

// DatabaseConfig represents configuration for the mount table store.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type DatabaseConfig struct {
	Type    string `toml:"type"`               // "sqlite" or "memory"
	DataDir string `toml:"data_dir,omitempty"` // only used for type=sqlite
}

// MountConfig declares a static mount. Both sides are parsed as virtual paths.
type MountConfig struct {
	Virtual vpath.Path `toml:"virtual"`
	Target  vpath.Path `toml:"target"`
}

// FilterConfig holds the ignore patterns applied by the filter command.
type FilterConfig struct {
	Ignore     []string `toml:"ignore"`
	IgnoreFile string   `toml:"ignore_file,omitempty"`
}

// NewConfig creates a Config rooted at baseDir with a sqlite mount table.
func NewConfig(baseDir string) *Config {
	return &Config{
		BaseDir:   baseDir,
		LogDir:    filepath.Join(baseDir, "log"),
		LogLevel:  "info",
		Separator: "/",
		Database: DatabaseConfig{
			Type:    "sqlite",
			DataDir: filepath.Join(baseDir, "db"),
		},
	}
}

// Validate checks the fields that have a closed set of values. Every
// problem is reported, not just the first.
func (c *Config) Validate() error {
	var merr error

	switch c.Separator {
	case "", "/", "\\":
	default:
		merr = multierror.Append(merr, fmt.Errorf("invalid separator %q: must be \"/\" or \"\\\\\"", c.Separator))
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		merr = multierror.Append(merr, fmt.Errorf("invalid log_level %q", c.LogLevel))
	}

	for i, m := range c.Mounts {
		if m.Virtual.IsRelative() {
			merr = multierror.Append(merr, fmt.Errorf("mounts[%d]: virtual path must be absolute: %q", i, m.Virtual.Origin()))
		}
	}
	return merr
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// ReadOrDefault reads the config at path, or returns NewConfig(baseDir) when
// no file exists there. Any other failure is returned as is.
func ReadOrDefault(path, baseDir string) (*Config, error) {
	cfg, err := ReadFromFile(path)
	if err == nil {
		return cfg, nil
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return NewConfig(baseDir), nil
	}
	return nil, err
}

// writeToFile writes a Config to the specified file path.
func writeToFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
