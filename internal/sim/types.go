// Package sim implements the snake simulation: grid movement, food
// management and power-up effects. All mutable state lives in State and is
// advanced by Engine.Advance, so the package has no globals and no I/O.
package sim

import (
	"fmt"
	"time"
)

// Cell is a position on the grid.
type Cell struct {
	X, Y int
}

// Add returns the neighbouring cell in the given heading.
func (c Cell) Add(h Heading) Cell {
	return Cell{X: c.X + h.DX, Y: c.Y + h.DY}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Heading is a unit movement vector.
type Heading struct {
	DX, DY int
}

var (
	Up    = Heading{DX: 0, DY: -1}
	Down  = Heading{DX: 0, DY: 1}
	Left  = Heading{DX: -1, DY: 0}
	Right = Heading{DX: 1, DY: 0}
)

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	return Heading{DX: -h.DX, DY: -h.DY}
}

// Valid reports whether h is one of the four unit headings.
func (h Heading) Valid() bool {
	return (h.DX == 0) != (h.DY == 0) && h.DX >= -1 && h.DX <= 1 && h.DY >= -1 && h.DY <= 1
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// WallMode decides what happens when the head leaves the grid.
type WallMode int

const (
	WallsWrap  WallMode = iota // re-enter at the opposite edge
	WallsSolid                 // leaving the grid ends the run
)

func (m WallMode) String() string {
	if m == WallsSolid {
		return "solid"
	}
	return "wrap"
}

// Cause explains why a run ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// Rules holds the tuning constants of the simulation.
// Spawn chances are cumulative thresholds checked against one roll in [0,1).
type Rules struct {
	Width  int
	Height int

	StartLength int
	MinLength   int

	MinSpeed      float64 // cells per second
	MaxSpeed      float64
	SpeedDownStep float64

	BonusGrowth int // total cells gained from one bonus item
	ShrinkCut   int // tail cells removed by one shrink item

	NormalScore    int
	ComboStep      int // extra points per combo level beyond the first
	BonusScore     int
	SpeedDownScore int
	ShrinkScore    int
	TeleportScore  int

	NormalTTL    time.Duration
	BonusTTL     time.Duration
	SpeedDownTTL time.Duration
	ShrinkTTL    time.Duration
	TeleportTTL  time.Duration

	BonusChance     float64
	SpeedDownChance float64
	ShrinkChance    float64
	TeleportChance  float64
}

// DefaultRules returns the classic tuning: a 28x20 board, 3-cell snake and
// the stock power-up mix.
func DefaultRules() Rules {
	return Rules{
		Width:  28,
		Height: 20,

		StartLength: 3,
		MinLength:   3,

		MinSpeed:      3,
		MaxSpeed:      25,
		SpeedDownStep: 2,

		BonusGrowth: 3,
		ShrinkCut:   3,

		NormalScore:    10,
		ComboStep:      4,
		BonusScore:     50,
		SpeedDownScore: 20,
		ShrinkScore:    15,
		TeleportScore:  25,

		NormalTTL:    30 * time.Second,
		BonusTTL:     12 * time.Second,
		SpeedDownTTL: 10 * time.Second,
		ShrinkTTL:    10 * time.Second,
		TeleportTTL:  14 * time.Second,

		BonusChance:     0.15,
		SpeedDownChance: 0.30,
		ShrinkChance:    0.42,
		TeleportChance:  0.52,
	}
}

// Validate checks that the rules describe a playable board.
func (r Rules) Validate() error {
	if r.Width < 4 || r.Height < 4 {
		return fmt.Errorf("sim: board %dx%d is too small", r.Width, r.Height)
	}
	if r.MinLength < 1 || r.StartLength < r.MinLength {
		return fmt.Errorf("sim: start length %d must be >= min length %d >= 1", r.StartLength, r.MinLength)
	}
	if r.StartLength > r.Width/2 {
		return fmt.Errorf("sim: start length %d does not fit a %d wide board", r.StartLength, r.Width)
	}
	if r.MinSpeed <= 0 || r.MaxSpeed < r.MinSpeed {
		return fmt.Errorf("sim: speed bounds [%g, %g] are invalid", r.MinSpeed, r.MaxSpeed)
	}
	if r.BonusGrowth < 1 {
		return fmt.Errorf("sim: bonus growth must be at least 1, got %d", r.BonusGrowth)
	}
	if r.SpeedDownStep < 0 || r.ShrinkCut < 0 {
		return fmt.Errorf("sim: speed-down step %g and shrink cut %d must not be negative", r.SpeedDownStep, r.ShrinkCut)
	}
	for _, pts := range []int{r.NormalScore, r.ComboStep, r.BonusScore, r.SpeedDownScore, r.ShrinkScore, r.TeleportScore} {
		if pts < 0 {
			return fmt.Errorf("sim: scores must not be negative, got %d", pts)
		}
	}
	chances := []float64{r.BonusChance, r.SpeedDownChance, r.ShrinkChance, r.TeleportChance}
	prev := 0.0
	for _, c := range chances {
		if c < prev || c > 1 {
			return fmt.Errorf("sim: spawn thresholds must be ascending within [0,1], got %v", chances)
		}
		prev = c
	}
	return nil
}

// ClampSpeed limits a speed to the rule bounds.
func (r Rules) ClampSpeed(speed float64) float64 {
	if speed < r.MinSpeed {
		return r.MinSpeed
	}
	if speed > r.MaxSpeed {
		return r.MaxSpeed
	}
	return speed
}

// TTL returns the lifetime a freshly spawned item of the given kind gets.
func (r Rules) TTL(k FoodKind) time.Duration {
	switch k {
	case FoodBonus:
		return r.BonusTTL
	case FoodSpeedDown:
		return r.SpeedDownTTL
	case FoodShrink:
		return r.ShrinkTTL
	case FoodTeleport:
		return r.TeleportTTL
	default:
		return r.NormalTTL
	}
}
