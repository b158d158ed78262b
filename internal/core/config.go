package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameTime returns the simulated duration of one tick.
func (c RuntimeConfig) FrameTime() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score across sessions
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// RunSummary describes a finished run. It is produced exactly once, on the
// tick the game ends, so the platform can record it in the run history.
type RunSummary struct {
	Score     int
	Length    int
	Apples    int
	Golden    int
	SlowMo    int
	Shrink    int
	Portal    int
	MaxCombo  int
	Duration  time.Duration
	WrapWalls bool
	Cause     string
	NewBest   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Run is set on the tick the game ends.
	Run *RunSummary

	// Err reports a non-fatal persistence failure (e.g. preferences could
	// not be written). The game keeps running.
	Err error
}
