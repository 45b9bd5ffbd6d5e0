// Package config handles loading and validating skhd-keys configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/jbeckham/skhd-keys/internal/keyboard"
	"github.com/jbeckham/skhd-keys/internal/shortcut"
)

// Colour modes for keyboard highlighting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the application configuration.
type Config struct {
	// Skhdrc is the skhd configuration file to read. A leading ~ is
	// expanded to the home directory.
	Skhdrc string `yaml:"skhdrc"`
	Layout string `yaml:"layout"`
	Scale  int    `yaml:"scale"`
	Color  string `yaml:"color"`

	// OperatorRenames rewrite hardware-specific operator combinations
	// before bindings are stored and compared.
	OperatorRenames shortcut.RenameRules `yaml:"operator_renames,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Skhdrc: "~/.skhdrc",
		Layout: "mac",
		Scale:  8,
		Color:  ColorAuto,
	}
}

// DefaultConfigDir returns ~/.config/skhd-keys.
func DefaultConfigDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "skhd-keys"), nil
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads, parses and validates the config file at path. Fields the
// file leaves out keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault is like Load but returns Default() when the file does not
// exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			d := Default()
			return &d, nil // a missing config file is not an error
		}
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all config fields hold usable values.
func (c *Config) Validate() error {
	if c.Skhdrc == "" {
		return fmt.Errorf("skhdrc is required")
	}
	if _, ok := keyboard.Layouts[c.Layout]; !ok {
		return fmt.Errorf("unknown layout %q", c.Layout)
	}
	if !keyboard.ValidScale(c.Scale) {
		return fmt.Errorf("scale must be one of %v, got %d", keyboard.Scales, c.Scale)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	for i, rule := range c.OperatorRenames {
		if len(rule.From) == 0 {
			return fmt.Errorf("operator_renames[%d].from must not be empty", i)
		}
	}
	return nil
}

// SkhdrcPath returns Skhdrc with ~ expanded.
func (c *Config) SkhdrcPath() (string, error) {
	p, err := homedir.Expand(c.Skhdrc)
	if err != nil {
		return "", fmt.Errorf("expanding skhdrc path: %w", err)
	}
	return p, nil
}

// Keyboard returns the configured layout.
func (c *Config) Keyboard() keyboard.Keyboard {
	return keyboard.Layouts[c.Layout]
}
