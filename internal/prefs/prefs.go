// Package prefs persists the player's preferences and the best score in a
// small YAML file. Loading never fails: a missing or unreadable file yields
// the defaults.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Speed bounds and step for the base speed preference, in cells per second.
const (
	MinSpeed  = 3.0
	MaxSpeed  = 25.0
	SpeedStep = 0.5
)

// DefaultPath is where preferences live unless overridden.
const DefaultPath = "~/.snake/prefs.yaml"

// Prefs are the settings that survive between sessions.
type Prefs struct {
	ThemeIndex int        `yaml:"theme_index"`
	ShowGrid   bool       `yaml:"show_grid"`
	WrapWalls  bool       `yaml:"wrap_walls"`
	BaseSpeed  float64    `yaml:"base_speed"`
	BestScore  int        `yaml:"best_score"`
	LastStats  *LastStats `yaml:"last_stats,omitempty"`
}

// LastStats is the summary of the most recent finished run.
type LastStats struct {
	Score    int     `yaml:"score"`
	Length   int     `yaml:"length"`
	Apples   int     `yaml:"apples"`
	Golden   int     `yaml:"golden"`
	SlowMo   int     `yaml:"slowmo"`
	Shrink   int     `yaml:"shrink"`
	Portal   int     `yaml:"portal"`
	MaxCombo int     `yaml:"max_combo"`
	Seconds  float64 `yaml:"time_alive"`
}

// StatsFromSummary converts a run summary into the persisted form.
func StatsFromSummary(s core.RunSummary) *LastStats {
	return &LastStats{
		Score:    s.Score,
		Length:   s.Length,
		Apples:   s.Apples,
		Golden:   s.Golden,
		SlowMo:   s.SlowMo,
		Shrink:   s.Shrink,
		Portal:   s.Portal,
		MaxCombo: s.MaxCombo,
		Seconds:  s.Duration.Round(10 * time.Millisecond).Seconds(),
	}
}

// Defaults returns the preferences of a fresh install.
func Defaults() Prefs {
	return Prefs{
		ThemeIndex: 0,
		ShowGrid:   true,
		WrapWalls:  true,
		BaseSpeed:  8.0,
		BestScore:  0,
	}
}

// Normalize clamps out-of-range values so hand-edited files cannot break
// the game. Theme indices wrap around themeCount.
func (p *Prefs) Normalize(themeCount int) {
	if themeCount > 0 {
		p.ThemeIndex = core.Wrap(p.ThemeIndex, themeCount)
	}
	if p.BaseSpeed == 0 {
		p.BaseSpeed = Defaults().BaseSpeed
	}
	p.BaseSpeed = core.ClampF(p.BaseSpeed, MinSpeed, MaxSpeed)
	p.BestScore = max(0, p.BestScore)
}

// RecordScore raises the best score if score strictly exceeds it.
func (p *Prefs) RecordScore(score int) bool {
	if score > p.BestScore {
		p.BestScore = score
		return true
	}
	return false
}

// AdjustSpeed moves the base speed by steps increments of SpeedStep, within
// bounds, and returns the new value.
func (p *Prefs) AdjustSpeed(steps int) float64 {
	p.BaseSpeed = core.ClampF(p.BaseSpeed+float64(steps)*SpeedStep, MinSpeed, MaxSpeed)
	return p.BaseSpeed
}

// Store reads and writes a preferences file.
type Store struct {
	path string
}

// NewStore creates a store for path. A leading ~ is expanded to the home
// directory; an empty path means DefaultPath.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("prefs: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return &Store{path: path}, nil
}

// Path returns the resolved file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the preferences. Any failure yields the defaults; keys missing
// from the file keep their default values.
func (s *Store) Load() Prefs {
	p := Defaults()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return p
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Defaults()
	}
	return p
}

// Save writes the preferences, creating the parent directory if needed.
func (s *Store) Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("prefs: cannot create directory: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("prefs: cannot encode: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("prefs: cannot write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("prefs: cannot replace %s: %w", s.path, err)
	}
	return nil
}
