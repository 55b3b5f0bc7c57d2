package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg ArkanoidConfig
	if err := yaml.Unmarshal(GetDefaultYAML("arkanoid"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultArkanoidConfig()) {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultArkanoidConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
	if GetDefaultYAML("tetris") != nil {
		t.Error("GetDefaultYAML() returned data for an unknown game")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ArkanoidConfig)
	}{
		{"zero world width", func(c *ArkanoidConfig) { c.World.Width = 0 }},
		{"negative paddle height", func(c *ArkanoidConfig) { c.Paddle.Height = -1 }},
		{"zero block width", func(c *ArkanoidConfig) { c.Blocks.Width = 0 }},
		{"zero ball speed", func(c *ArkanoidConfig) { c.Ball.Speed = 0 }},
		{"paddle wider than arena", func(c *ArkanoidConfig) { c.Paddle.Width = 760 }},
		{"no spawns", func(c *ArkanoidConfig) { c.Ball.Spawns = nil }},
		{"unknown ball color", func(c *ArkanoidConfig) { c.Ball.Color = "plaid" }},
		{"flat kill zone", func(c *ArkanoidConfig) { c.KillZones[0].Height = 0 }},
		{"negative points", func(c *ArkanoidConfig) { c.Blocks.PointsPerHit = -5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultArkanoidConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadArkanoidCustomPath(t *testing.T) {
	dir := t.TempDir()

	good := DefaultArkanoidConfig()
	good.Ball.Speed = 6
	good.Blocks.PointsPerHit = 10
	data, err := yaml.Marshal(good)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	goodPath := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(goodPath, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadArkanoid(goodPath)
	if err != nil {
		t.Fatalf("LoadArkanoid() error = %v", err)
	}
	if cfg.Ball.Speed != 6 || cfg.Blocks.PointsPerHit != 10 {
		t.Errorf("LoadArkanoid() = speed %v points %d, expected 6 and 10", cfg.Ball.Speed, cfg.Blocks.PointsPerHit)
	}

	badPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badPath, []byte("world:\n  width: 0\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadArkanoid(badPath); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadArkanoid(invalid) error = %v, expected ErrInvalidConfig", err)
	}

	brokenPath := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(brokenPath, []byte("world: [unterminated"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadArkanoid(brokenPath); err == nil {
		t.Error("LoadArkanoid(broken) should fail to parse")
	}

	if _, err := LoadArkanoid(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadArkanoid(missing) error = %v, expected not-exist", err)
	}
}

func TestApplyArkanoidPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
		speed        float64
	}{
		{DifficultyEasy, true, 0.0, 3},
		{DifficultyNormal, true, 0.3, 4},
		{DifficultyHard, true, 0.7, 5},
		{DifficultyFixed, false, 0.0, 4},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultArkanoidConfig()
			ApplyArkanoidPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
			if cfg.Ball.Speed != tc.speed {
				t.Errorf("Ball.Speed = %v, expected %v", cfg.Ball.Speed, tc.speed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() after preset = %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %v, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	if got := d.Speed(4, 100, 0); math.Abs(got-8) > 1e-9 {
		t.Errorf("Speed(4) at max level = %v, expected 8", got)
	}

	d.SetEnabled(false)
	if got := d.Speed(4, 100, 0); got != 4 {
		t.Errorf("Speed(4) when disabled = %v, expected 4", got)
	}
	if d.IsEnabled() {
		t.Error("IsEnabled() = true after SetEnabled(false)")
	}
}

func TestDifficultyProgressionTypes(t *testing.T) {
	tests := []struct {
		name     string
		prog     ProgressionConfig
		score    int
		ticks    int
		expected float64
	}{
		{"time halfway", ProgressionConfig{Type: ProgressionTime, MaxAt: 600}, 0, 300, 0.5},
		{"time ignores score", ProgressionConfig{Type: ProgressionTime, MaxAt: 600}, 1000, 0, 0},
		{"none stays at start", ProgressionConfig{Type: ProgressionNone, MaxAt: 10}, 100, 100, 0},
		{"unknown type stays at start", ProgressionConfig{Type: "lunar", MaxAt: 10}, 100, 100, 0},
		{"zero max_at", ProgressionConfig{Type: ProgressionScore}, 5, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDifficultyManager(DifficultyConfig{Enabled: true, Progression: tt.prog})
			if got := d.Level(tt.score, tt.ticks); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Level(%d, %d) = %v, expected %v", tt.score, tt.ticks, got, tt.expected)
			}
		})
	}
}
