package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// SampleConfig is the default config.yaml written by Init.
const SampleConfig = `# skhd-keys configuration

# skhd configuration file to read
skhdrc: ~/.skhdrc

# keyboard layout and render scale (4, 8 or 12)
layout: mac
scale: 8

# highlight colour: auto, always or never
color: auto

# Rewrite operator combinations before bindings are compared. Some
# keyboards send right cmd + left ctrl + right alt for fn.
operator_renames:
  - from: [rcmd, lctrl, ralt]
    to: [fn, lctrl]
`

// Init creates the config directory with a sample config file. It returns
// the directory path. An existing config file is left untouched.
func Init() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating config dir: %w", err)
	}

	configPath := filepath.Join(dir, "config.yaml")
	if err := writeIfNotExists(configPath, SampleConfig); err != nil {
		return dir, err
	}

	return dir, nil
}

// DirExists returns true if the config directory exists.
func DirExists() bool {
	dir, err := DefaultConfigDir()
	if err != nil {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

func writeIfNotExists(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // already exists, keep it
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
