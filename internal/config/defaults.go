package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in tuning.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:  28,
			Height: 20,
		},
		Snake: SnakeBody{
			StartLength:   3,
			MinLength:     3,
			MinSpeed:      3,
			MaxSpeed:      25,
			SpeedScale:    1,
			SpeedDownStep: 2,
			BonusGrowth:   3,
			ShrinkCut:     3,
		},
		Scoring: SnakeScoring{
			Normal:    10,
			ComboStep: 4,
			Bonus:     50,
			SpeedDown: 20,
			Shrink:    15,
			Teleport:  25,
		},
		Food: SnakeFood{
			Lifetimes: FoodLifetimes{
				Normal:    30,
				Bonus:     12,
				SpeedDown: 10,
				Shrink:    10,
				Teleport:  14,
			},
			Chances: FoodChances{
				Bonus:     0.15,
				SpeedDown: 0.30,
				Shrink:    0.42,
				Teleport:  0.52,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
