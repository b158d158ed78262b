package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/sim"
)

func TestDefaultsMatchEmbeddedYAML(t *testing.T) {
	cfg, err := parseSnake(DefaultYAML())
	if err != nil {
		t.Fatalf("Embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("Embedded YAML and hardcoded defaults differ:\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultRulesMatchSimulation(t *testing.T) {
	if got := DefaultSnakeConfig().Rules(); got != sim.DefaultRules() {
		t.Errorf("Default config rules differ from simulation defaults:\n%+v\n%+v", got, sim.DefaultRules())
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("board:\n  width: 40\nfood:\n  lifetimes:\n    bonus: 6\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake failed: %v", err)
	}
	if cfg.Board.Width != 40 {
		t.Errorf("Expected width 40, got %d", cfg.Board.Width)
	}
	if cfg.Board.Height != 20 {
		t.Errorf("Unset keys should keep defaults, got height %d", cfg.Board.Height)
	}
	if got := cfg.Rules().BonusTTL; got != 6*time.Second {
		t.Errorf("Expected bonus lifetime 6s, got %v", got)
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("board: [unclosed"), 0o644) //nolint:errcheck
	if _, err := LoadSnake(bad); err == nil {
		t.Error("Expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("board:\n  width: 2\n"), 0o644) //nolint:errcheck
	if _, err := LoadSnake(invalid); err == nil {
		t.Error("Expected error for an unplayable board")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		adjust func(*SnakeConfig)
	}{
		{"zero lifetime", func(c *SnakeConfig) { c.Food.Lifetimes.Shrink = 0 }},
		{"zero speed scale", func(c *SnakeConfig) { c.Snake.SpeedScale = 0 }},
		{"descending chances", func(c *SnakeConfig) { c.Food.Chances.Teleport = 0.1 }},
		{"negative speed-down step", func(c *SnakeConfig) { c.Snake.SpeedDownStep = -2 }},
		{"negative bonus score", func(c *SnakeConfig) { c.Scoring.Bonus = -50 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.adjust(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		normal float64
		scale  float64
	}{
		{DifficultyEasy, 45, 0.8},
		{DifficultyNormal, 30, 1},
		{DifficultyHard, 18, 1.25},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tc.preset)
			if cfg.Food.Lifetimes.Normal != tc.normal {
				t.Errorf("Expected normal lifetime %g, got %g", tc.normal, cfg.Food.Lifetimes.Normal)
			}
			if cfg.Snake.SpeedScale != tc.scale {
				t.Errorf("Expected speed scale %g, got %g", tc.scale, cfg.Snake.SpeedScale)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("Empty preset should be normal, got %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("Expected hard, got %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("Expected error for unknown preset")
	}
}

func TestPresetsParse(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
}
