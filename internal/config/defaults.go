package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the built-in arkanoid configuration:
// an 800x600 world with three balls, a 90x15 paddle and 45x20 blocks.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		World: ArkanoidWorld{
			Width:           800,
			Height:          600,
			BorderThickness: 25,
			GuardThickness:  20,
		},
		Ball: ArkanoidBall{
			Radius: 5,
			Speed:  4,
			Color:  "black",
			Spawns: []PointConfig{
				{X: 105, Y: 70},
				{X: 400, Y: 270},
				{X: 425, Y: 340},
			},
		},
		Paddle: ArkanoidPaddle{
			X:      355,
			Y:      560,
			Width:  90,
			Height: 15,
			Step:   7,
			Color:  "black",
		},
		Blocks: ArkanoidBlocks{
			OriginX:      235,
			OriginY:      125,
			Width:        45,
			Height:       20,
			PointsPerHit: 5,
		},
		KillZones: []KillZoneConfig{
			{X: 0, Y: 573, Width: 800, Height: 20},
			{X: 80, Y: 350, Width: 45, Height: 20, Label: "Ball Killer"},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(game string) []byte {
	switch game {
	case "arkanoid":
		return defaultArkanoidYAML
	default:
		return nil
	}
}
