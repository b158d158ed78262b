package sim

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Stats counts what happened during a run.
type Stats struct {
	Apples   int
	Golden   int
	SlowMo   int
	Shrink   int
	Portal   int
	MaxCombo int
	Moves    int
	Alive    time.Duration
}

// State is the complete mutable state of one run.
type State struct {
	Snake *Snake
	Food  *FoodManager
	Walls WallMode
	Speed float64 // cells per second

	Score int
	Combo int // consecutive moves that ate something
	Stats Stats

	Over  bool
	Cause Cause

	progress float64 // fraction of a cell accumulated towards the next move
	rng      *rand.Rand
}

// Progress returns how far the snake is towards its next move, in [0,1).
func (st *State) Progress() float64 {
	return st.progress
}

// Event describes one consumption.
type Event struct {
	Kind       FoodKind
	At         Cell
	Points     int
	Trimmed    int  // cells removed by a shrink
	Teleported bool // head was relocated
	To         Cell // destination of a teleport
}

// Outcome reports what a call to Advance did.
type Outcome struct {
	Moves    int
	Eaten    []Event
	Expired  int
	GameOver bool
	Cause    Cause
}

// Engine advances states under a fixed set of rules.
type Engine struct {
	rules Rules
}

// NewEngine creates an engine. Callers are expected to validate the rules.
func NewEngine(rules Rules) *Engine {
	return &Engine{rules: rules}
}

// Rules returns the engine's tuning.
func (e *Engine) Rules() Rules {
	return e.rules
}

// NewState starts a run: a snake of StartLength cells centred on the board
// heading right, and one normal food item.
func (e *Engine) NewState(seed int64, speed float64, walls WallMode) *State {
	r := e.rules
	head := Cell{X: r.Width/2 + (r.StartLength-1)/2, Y: r.Height / 2}
	st := &State{
		Snake: NewSnake(head, Right, r.StartLength),
		Food:  NewFoodManager(r.Width, r.Height),
		Walls: walls,
		Speed: r.ClampSpeed(speed),
		rng:   rand.New(rand.NewSource(seed)),
	}
	st.Food.SpawnNormal(st.rng, r, st.Snake)
	return st
}

// Advance moves the simulation forward by dt. Progress accumulates at Speed
// cells per second and the snake moves once per whole cell. Food lifetimes
// decay by dt afterwards. A finished run is left untouched.
func (e *Engine) Advance(st *State, dt time.Duration) Outcome {
	var out Outcome
	if st.Over || dt <= 0 {
		return out
	}

	st.progress += dt.Seconds() * st.Speed
	for st.progress >= 1 {
		st.progress--
		if !e.move(st, &out) {
			out.GameOver = true
			out.Cause = st.Cause
			return out
		}
		out.Moves++
	}

	out.Expired = st.Food.Decay(dt)
	if st.Food.Count(FoodNormal) == 0 {
		st.Food.SpawnNormal(st.rng, e.rules, st.Snake)
	}
	st.Stats.Alive += dt
	return out
}

// move performs a single one-cell step. It returns false when the run ends.
func (e *Engine) move(st *State, out *Outcome) bool {
	sn := st.Snake
	sn.commit()

	next := sn.Head().Add(sn.heading)
	if !e.inBounds(next) {
		if st.Walls == WallsSolid {
			e.end(st, CauseWall)
			return false
		}
		next = e.wrap(next)
	}
	if sn.collides(next) {
		e.end(st, CauseSelf)
		return false
	}

	sn.push(next)
	st.Stats.Moves++

	f, ate := st.Food.Take(next)
	if !ate {
		sn.release()
		st.Combo = 0
		return true
	}

	ev := resolve(e.rules, st, f)
	out.Eaten = append(out.Eaten, ev)
	st.Food.SpawnAfterMeal(st.rng, e.rules, sn)
	st.Combo++
	st.Stats.MaxCombo = max(st.Stats.MaxCombo, st.Combo)
	return true
}

func (e *Engine) end(st *State, cause Cause) {
	st.Over = true
	st.Cause = cause
	st.progress = 0
}

func (e *Engine) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < e.rules.Width && c.Y >= 0 && c.Y < e.rules.Height
}

func (e *Engine) wrap(c Cell) Cell {
	return Cell{X: core.Wrap(c.X, e.rules.Width), Y: core.Wrap(c.Y, e.rules.Height)}
}
