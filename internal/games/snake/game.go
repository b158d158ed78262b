// Package snake implements the playable game on top of the simulation: phases,
// preferences, visual effects and rendering into a core.Screen.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/prefs"
	"github.com/vovakirdan/tui-snake/internal/sim"
	"github.com/vovakirdan/tui-snake/internal/theme"
)

// Phase is the top-level state of the game.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

const (
	helpFlashTime = 1500 * time.Millisecond
	shakeTime     = 250 * time.Millisecond
)

// PrefsSaver persists preferences. *prefs.Store implements it.
type PrefsSaver interface {
	Save(p prefs.Prefs) error
}

// Game is a single-player snake session.
type Game struct {
	cfg    config.SnakeConfig
	engine *sim.Engine
	st     *sim.State

	prefs prefs.Prefs
	saver PrefsSaver

	rng  *rand.Rand // seeds for restarts
	fx   *rand.Rand // visual effects only, never feeds the simulation
	tick uint64
	dt   time.Duration

	phase   Phase
	newBest bool

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	// Presentation
	photo     bool
	helpFlash time.Duration
	shake     time.Duration
	shakeX    int
	shakeY    int
	particles []particle
}

// New creates a game. saver may be nil, in which case nothing is persisted.
func New(cfg config.SnakeConfig, p prefs.Prefs, saver PrefsSaver) *Game {
	p.Normalize(theme.Count())
	return &Game{
		cfg:    cfg,
		engine: sim.NewEngine(cfg.Rules()),
		prefs:  p,
		saver:  saver,
	}
}

// ID returns the game identifier used for logs and storage.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Ultimate Snake"
}

// Reset starts over at the title screen with a fresh run behind it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.fx = rand.New(rand.NewSource(cfg.Seed ^ 0x5eed))
	g.dt = cfg.FrameTime()
	g.tick = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.newRun(g.rng.Int63())
	g.phase = PhaseMenu
}

// newRun replaces the simulation state while keeping preferences.
func (g *Game) newRun(seed int64) {
	walls := sim.WallsSolid
	if g.prefs.WrapWalls {
		walls = sim.WallsWrap
	}
	g.st = g.engine.NewState(seed, g.startSpeed(), walls)
	g.newBest = false
	g.particles = g.particles[:0]
	g.shake = 0
	g.shakeX, g.shakeY = 0, 0
	g.photo = false
	g.phase = PhasePlaying
}

func (g *Game) startSpeed() float64 {
	return g.engine.Rules().ClampSpeed(g.prefs.BaseSpeed * g.cfg.Snake.SpeedScale)
}

// Resize adapts the layout to a new screen size without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	bw, bh := g.boardSize()
	g.tooSmall = w < bw || h < bh
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.handleToggles(in)

	switch g.phase {
	case PhaseMenu:
		switch {
		case in.Has(core.ActionRestart):
			g.newRun(g.rng.Int63())
		case in.Has(core.ActionConfirm):
			g.phase = PhasePlaying
		}
	case PhasePaused:
		switch {
		case in.Has(core.ActionRestart):
			g.newRun(g.rng.Int63())
		case in.Has(core.ActionPause), in.Has(core.ActionConfirm):
			g.phase = PhasePlaying
		}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.newRun(g.rng.Int63())
		}
	case PhasePlaying:
		if in.Has(core.ActionRestart) {
			g.newRun(g.rng.Int63())
			break
		}
		if in.Has(core.ActionPause) {
			g.phase = PhasePaused
			break
		}
		if res, over := g.play(in); over {
			g.updateEffects()
			return res
		}
	}

	g.updateEffects()
	return core.StepResult{State: g.State()}
}

// handleToggles applies the preference keys, which work in every phase.
func (g *Game) handleToggles(in core.InputFrame) {
	if in.Has(core.ActionTheme) {
		g.prefs.ThemeIndex = core.Wrap(g.prefs.ThemeIndex+1, theme.Count())
	}
	if in.Has(core.ActionWallMode) {
		g.prefs.WrapWalls = !g.prefs.WrapWalls
		if g.prefs.WrapWalls {
			g.st.Walls = sim.WallsWrap
		} else {
			g.st.Walls = sim.WallsSolid
		}
	}
	if in.Has(core.ActionGrid) {
		g.prefs.ShowGrid = !g.prefs.ShowGrid
	}
	if in.Has(core.ActionSpeedUp) {
		g.prefs.AdjustSpeed(1)
		g.st.Speed = g.startSpeed()
	}
	if in.Has(core.ActionSpeedDown) {
		g.prefs.AdjustSpeed(-1)
		g.st.Speed = g.startSpeed()
	}
	if in.Has(core.ActionHelp) {
		g.helpFlash = helpFlashTime
	}
	if in.Has(core.ActionPhoto) {
		g.photo = !g.photo
	}
}

var turnHeadings = map[core.Action]sim.Heading{
	core.ActionUp:    sim.Up,
	core.ActionDown:  sim.Down,
	core.ActionLeft:  sim.Left,
	core.ActionRight: sim.Right,
}

// play steers the snake and advances the simulation by one frame.
func (g *Game) play(in core.InputFrame) (core.StepResult, bool) {
	// Presses are applied in order so the last valid one is buffered.
	for _, a := range in.Turns {
		g.st.Snake.Turn(turnHeadings[a])
	}

	if g.tooSmall {
		return core.StepResult{}, false
	}

	out := g.engine.Advance(g.st, g.dt)
	for _, ev := range out.Eaten {
		g.burst(ev)
	}
	if !out.GameOver {
		return core.StepResult{}, false
	}
	return g.finish(), true
}

// finish records the run in the preferences and persists them.
func (g *Game) finish() core.StepResult {
	g.phase = PhaseGameOver
	g.newBest = g.prefs.RecordScore(g.st.Score)

	sum := g.summary()
	g.prefs.LastStats = prefs.StatsFromSummary(sum)

	res := core.StepResult{State: g.State(), Run: &sum}
	if g.saver != nil {
		res.Err = g.saver.Save(g.prefs)
	}
	return res
}

func (g *Game) summary() core.RunSummary {
	st := g.st
	return core.RunSummary{
		Score:     st.Score,
		Length:    st.Snake.Len(),
		Apples:    st.Stats.Apples,
		Golden:    st.Stats.Golden,
		SlowMo:    st.Stats.SlowMo,
		Shrink:    st.Stats.Shrink,
		Portal:    st.Stats.Portal,
		MaxCombo:  st.Stats.MaxCombo,
		Duration:  st.Stats.Alive,
		WrapWalls: st.Walls == sim.WallsWrap,
		Cause:     st.Cause.String(),
		NewBest:   g.newBest,
	}
}

// SavePrefs writes the current preferences. Called by the platform on quit
// so toggles made since the last game over are kept.
func (g *Game) SavePrefs() error {
	if g.saver == nil {
		return nil
	}
	return g.saver.Save(g.prefs)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.st.Score,
		Best:     max(g.prefs.BestScore, g.st.Score),
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused || g.tooSmall,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Prefs returns the session preferences.
func (g *Game) Prefs() prefs.Prefs {
	return g.prefs
}

// ThemeIndex returns the active theme.
func (g *Game) ThemeIndex() int {
	return g.prefs.ThemeIndex
}
