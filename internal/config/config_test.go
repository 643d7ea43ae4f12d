package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatch(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultArcadeYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded yaml = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("games:\n  pong:\n    win_score: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Games.Pong.WinScore != 7 {
		t.Errorf("WinScore = %d, expected 7", cfg.Games.Pong.WinScore)
	}
	if cfg.Games.Pong.TickRate != 125 {
		t.Errorf("unset values should keep defaults, TickRate = %d", cfg.Games.Pong.TickRate)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
display:
  address: 0x3d
input:
  debounce: 50ms
games:
  snake:
    step_interval: 250ms
  minesweeper:
    mines: 99
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Display.Address != 0x3d {
		t.Errorf("Address = %#x, expected 0x3d", cfg.Display.Address)
	}
	if cfg.Input.Debounce != 50*time.Millisecond {
		t.Errorf("Debounce = %v, expected 50ms", cfg.Input.Debounce)
	}
	if cfg.Games.Snake.StepInterval != 250*time.Millisecond {
		t.Errorf("StepInterval = %v, expected 250ms", cfg.Games.Snake.StepInterval)
	}
	if cfg.Games.Minesweeper.Mines != 63 {
		t.Errorf("Mines = %d, expected clamp to 63", cfg.Games.Minesweeper.Mines)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("games: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		check func(Config) bool
	}{
		{"zero mines", func(c *Config) { c.Games.Minesweeper.Mines = 0 }, func(c Config) bool { return c.Games.Minesweeper.Mines == 1 }},
		{"negative tick rate", func(c *Config) { c.Games.Pong.TickRate = -5 }, func(c Config) bool { return c.Games.Pong.TickRate == 125 }},
		{"negative win score", func(c *Config) { c.Games.Pong.WinScore = -1 }, func(c Config) bool { return c.Games.Pong.WinScore == 0 }},
		{"zero step interval", func(c *Config) { c.Games.Snake.StepInterval = 0 }, func(c Config) bool { return c.Games.Snake.StepInterval == 100*time.Millisecond }},
		{"negative debounce", func(c *Config) { c.Input.Debounce = -time.Second }, func(c Config) bool { return c.Input.Debounce == 0 }},
		{"zero address", func(c *Config) { c.Display.Address = 0 }, func(c Config) bool { return c.Display.Address == 0x3c }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.edit(&cfg)
			cfg.Validate()
			if !tc.check(cfg) {
				t.Errorf("Validate() left %+v", cfg)
			}
		})
	}
}
