package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the configuration file looked up next to the entry file
const FileName = "semantica.toml"

// Config controls one analysis run
type Config struct {
	// Capacity bounds the number of symbols per unit; 0 means unbounded
	Capacity int `toml:"capacity"`
	// FailFast stops at the first semantic error and exits with status 1
	FailFast bool `toml:"fail_fast"`
	Color    bool `toml:"color"`
	Debug    bool `toml:"debug"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Capacity: 1000,
		FailFast: true,
		Color:    true,
	}
}

// Parse decodes TOML data on top of the defaults
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// LoadForEntry loads semantica.toml from the directory of entryFile
func LoadForEntry(entryFile string) (*Config, error) {
	return Load(filepath.Join(filepath.Dir(entryFile), FileName))
}

func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must be >= 0, got %d", c.Capacity)
	}
	return nil
}

// Marshal encodes the configuration as TOML
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
