// Package config provides YAML-based game configuration loading and
// difficulty management for the arkanoid game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// ErrInvalidConfig is returned when a loaded configuration cannot be played.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ArkanoidConfig contains all configuration for the arkanoid game.
// Distances are world units; the world is scaled onto the terminal.
type ArkanoidConfig struct {
	World      ArkanoidWorld    `yaml:"world"`
	Ball       ArkanoidBall     `yaml:"ball"`
	Paddle     ArkanoidPaddle   `yaml:"paddle"`
	Blocks     ArkanoidBlocks   `yaml:"blocks"`
	KillZones  []KillZoneConfig `yaml:"kill_zones"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArkanoidWorld defines the playfield.
type ArkanoidWorld struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	BorderThickness float64 `yaml:"border_thickness"`
	GuardThickness  float64 `yaml:"guard_thickness"` // off-screen side walls
}

// ArkanoidBall defines the balls placed at the start of a round.
type ArkanoidBall struct {
	Radius float64       `yaml:"radius"`
	Speed  float64       `yaml:"speed"` // units per tick, initially straight down
	Color  string        `yaml:"color"`
	Spawns []PointConfig `yaml:"spawns"`
}

// ArkanoidPaddle defines the paddle.
type ArkanoidPaddle struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"` // units per tick while steering
	Color  string  `yaml:"color"`
}

// ArkanoidBlocks defines the level grid and scoring.
type ArkanoidBlocks struct {
	OriginX      float64 `yaml:"origin_x"`
	OriginY      float64 `yaml:"origin_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	PointsPerHit int     `yaml:"points_per_hit"`
}

// KillZoneConfig is a region that removes balls.
type KillZoneConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Label  string  `yaml:"label"` // non-empty zones are drawn with this label
}

// PointConfig is a position in world units.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// Validate reports the first setting that would make the game unplayable.
// Errors wrap ErrInvalidConfig.
func (c ArkanoidConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"world.border_thickness", c.World.BorderThickness},
		{"world.guard_thickness", c.World.GuardThickness},
		{"ball.radius", c.Ball.Radius},
		{"ball.speed", c.Ball.Speed},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.step", c.Paddle.Step},
		{"blocks.width", c.Blocks.Width},
		{"blocks.height", c.Blocks.Height},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	if 2*c.World.BorderThickness+c.Paddle.Width >= c.World.Width {
		return fmt.Errorf("%w: paddle does not fit between the side walls", ErrInvalidConfig)
	}
	if len(c.Ball.Spawns) == 0 {
		return fmt.Errorf("%w: ball.spawns must list at least one position", ErrInvalidConfig)
	}
	for _, name := range []string{c.Ball.Color, c.Paddle.Color} {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%w: unknown color %q", ErrInvalidConfig, name)
		}
	}
	for i, kz := range c.KillZones {
		if kz.Width <= 0 || kz.Height <= 0 {
			return fmt.Errorf("%w: kill_zones[%d] must have positive size", ErrInvalidConfig, i)
		}
	}
	if c.Blocks.PointsPerHit < 0 {
		return fmt.Errorf("%w: blocks.points_per_hit must not be negative", ErrInvalidConfig)
	}

	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown names return false.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
