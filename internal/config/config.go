// Package config provides YAML-based tuning for the snake simulation and the
// difficulty presets layered on top of it.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/sim"
)

// SnakeConfig contains all tuning for a run.
type SnakeConfig struct {
	Board   SnakeBoard   `yaml:"board"`
	Snake   SnakeBody    `yaml:"snake"`
	Scoring SnakeScoring `yaml:"scoring"`
	Food    SnakeFood    `yaml:"food"`
}

// SnakeBoard defines the grid dimensions.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeBody defines length and speed parameters.
type SnakeBody struct {
	StartLength   int     `yaml:"start_length"`
	MinLength     int     `yaml:"min_length"`
	MinSpeed      float64 `yaml:"min_speed"` // cells per second
	MaxSpeed      float64 `yaml:"max_speed"`
	SpeedScale    float64 `yaml:"speed_scale"` // applied to the preferred base speed at run start
	SpeedDownStep float64 `yaml:"speed_down_step"`
	BonusGrowth   int     `yaml:"bonus_growth"`
	ShrinkCut     int     `yaml:"shrink_cut"`
}

// SnakeScoring defines points per food kind.
type SnakeScoring struct {
	Normal    int `yaml:"normal"`
	ComboStep int `yaml:"combo_step"`
	Bonus     int `yaml:"bonus"`
	SpeedDown int `yaml:"speed_down"`
	Shrink    int `yaml:"shrink"`
	Teleport  int `yaml:"teleport"`
}

// SnakeFood defines food lifetimes and the post-meal spawn roll.
type SnakeFood struct {
	Lifetimes FoodLifetimes `yaml:"lifetimes"`
	Chances   FoodChances   `yaml:"chances"`
}

// FoodLifetimes are in seconds.
type FoodLifetimes struct {
	Normal    float64 `yaml:"normal"`
	Bonus     float64 `yaml:"bonus"`
	SpeedDown float64 `yaml:"speed_down"`
	Shrink    float64 `yaml:"shrink"`
	Teleport  float64 `yaml:"teleport"`
}

// FoodChances are cumulative thresholds against a single roll in [0,1).
type FoodChances struct {
	Bonus     float64 `yaml:"bonus"`
	SpeedDown float64 `yaml:"speed_down"`
	Shrink    float64 `yaml:"shrink"`
	Teleport  float64 `yaml:"teleport"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// Rules converts the tuning into simulation rules.
func (c SnakeConfig) Rules() sim.Rules {
	return sim.Rules{
		Width:  c.Board.Width,
		Height: c.Board.Height,

		StartLength: c.Snake.StartLength,
		MinLength:   c.Snake.MinLength,

		MinSpeed:      c.Snake.MinSpeed,
		MaxSpeed:      c.Snake.MaxSpeed,
		SpeedDownStep: c.Snake.SpeedDownStep,

		BonusGrowth: c.Snake.BonusGrowth,
		ShrinkCut:   c.Snake.ShrinkCut,

		NormalScore:    c.Scoring.Normal,
		ComboStep:      c.Scoring.ComboStep,
		BonusScore:     c.Scoring.Bonus,
		SpeedDownScore: c.Scoring.SpeedDown,
		ShrinkScore:    c.Scoring.Shrink,
		TeleportScore:  c.Scoring.Teleport,

		NormalTTL:    seconds(c.Food.Lifetimes.Normal),
		BonusTTL:     seconds(c.Food.Lifetimes.Bonus),
		SpeedDownTTL: seconds(c.Food.Lifetimes.SpeedDown),
		ShrinkTTL:    seconds(c.Food.Lifetimes.Shrink),
		TeleportTTL:  seconds(c.Food.Lifetimes.Teleport),

		BonusChance:     c.Food.Chances.Bonus,
		SpeedDownChance: c.Food.Chances.SpeedDown,
		ShrinkChance:    c.Food.Chances.Shrink,
		TeleportChance:  c.Food.Chances.Teleport,
	}
}

// Validate reports whether the tuning yields a playable game.
func (c SnakeConfig) Validate() error {
	lt := c.Food.Lifetimes
	for name, v := range map[string]float64{
		"normal": lt.Normal, "bonus": lt.Bonus, "speed_down": lt.SpeedDown,
		"shrink": lt.Shrink, "teleport": lt.Teleport,
	} {
		if v <= 0 {
			return fmt.Errorf("config: food lifetime %s must be positive, got %g", name, v)
		}
	}
	if c.Snake.SpeedScale <= 0 {
		return fmt.Errorf("config: speed_scale must be positive, got %g", c.Snake.SpeedScale)
	}
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
