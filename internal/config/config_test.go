package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"

	"github.com/jbeckham/skhd-keys/internal/shortcut"
)

const validConfig = `
skhdrc: /etc/skhdrc
layout: mac
scale: 12
color: never
operator_renames:
  - from: [rcmd, lctrl, ralt]
    to: [fn, lctrl]
`

func TestLoadValidConfig(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", validConfig)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Skhdrc != "/etc/skhdrc" {
		t.Errorf("unexpected skhdrc: %s", cfg.Skhdrc)
	}
	if cfg.Scale != 12 {
		t.Errorf("unexpected scale: %d", cfg.Scale)
	}
	if cfg.Color != ColorNever {
		t.Errorf("unexpected color: %s", cfg.Color)
	}
	if len(cfg.OperatorRenames) != 1 {
		t.Fatalf("expected 1 rename rule, got %d", len(cfg.OperatorRenames))
	}
	rule := cfg.OperatorRenames[0]
	if len(rule.From) != 3 || rule.From[0] != "rcmd" {
		t.Errorf("unexpected rule from: %v", rule.From)
	}
	if len(rule.To) != 2 || rule.To[0] != "fn" {
		t.Errorf("unexpected rule to: %v", rule.To)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", "scale: 4\n")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Skhdrc != "~/.skhdrc" {
		t.Errorf("expected default skhdrc, got %s", cfg.Skhdrc)
	}
	if cfg.Layout != "mac" {
		t.Errorf("expected default layout, got %s", cfg.Layout)
	}
	if cfg.Scale != 4 {
		t.Errorf("expected scale 4, got %d", cfg.Scale)
	}
}

func TestLoadBadScale(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", "scale: 6\n")
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("expected validation error for scale 6")
	}
}

func TestLoadUnknownLayout(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", "layout: dvorak\n")
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("expected validation error for unknown layout")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", "scale: [8\n")
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scale != Default().Scale {
		t.Errorf("expected default scale, got %d", cfg.Scale)
	}
}

func TestLoadOrDefaultInvalidFile(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", "color: sometimes\n")
	if _, err := LoadOrDefault(cfgPath); err == nil {
		t.Fatal("expected validation error to be returned")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "default",
			config:  Default(),
			wantErr: false,
		},
		{
			name:    "empty",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "bad color",
			config: Config{
				Skhdrc: "~/.skhdrc", Layout: "mac", Scale: 8, Color: "blue",
			},
			wantErr: true,
		},
		{
			name: "rule without from",
			config: Config{
				Skhdrc: "~/.skhdrc", Layout: "mac", Scale: 8, Color: ColorAuto,
				OperatorRenames: shortcut.RenameRules{{To: []string{"fn"}}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSkhdrcPath(t *testing.T) {
	home := setHome(t)
	cfg := Default()
	p, err := cfg.SkhdrcPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != filepath.Join(home, ".skhdrc") {
		t.Errorf("unexpected path %s", p)
	}
}

func TestInit(t *testing.T) {
	home := setHome(t)
	if DirExists() {
		t.Fatal("config dir should not exist yet")
	}

	dir, err := Init()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != filepath.Join(home, ".config", "skhd-keys") {
		t.Errorf("unexpected dir %s", dir)
	}
	if !DirExists() {
		t.Error("expected config dir to exist")
	}

	cfg, err := Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if len(cfg.OperatorRenames) != 1 {
		t.Errorf("expected sample rename rule, got %v", cfg.OperatorRenames)
	}

	// A second Init leaves the edited file alone.
	edited := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(edited, []byte("scale: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, _ := os.ReadFile(edited)
	if string(data) != "scale: 4\n" {
		t.Errorf("config was overwritten: %q", data)
	}
}

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	return home
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test file %s: %v", name, err)
	}
	return path
}
