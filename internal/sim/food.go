package sim

import (
	"math/rand"
	"time"
)

// FoodKind tags what a food item does when eaten.
type FoodKind int

const (
	FoodNormal    FoodKind = iota // +1 length, combo-scaled score
	FoodBonus                     // +3 length, big score
	FoodSpeedDown                 // slows the snake
	FoodShrink                    // trims the tail
	FoodTeleport                  // jumps the head to the paired item
	FoodKindCount                 // Sentinel for counting kinds
)

func (k FoodKind) String() string {
	switch k {
	case FoodNormal:
		return "normal"
	case FoodBonus:
		return "bonus"
	case FoodSpeedDown:
		return "speed-down"
	case FoodShrink:
		return "shrink"
	case FoodTeleport:
		return "teleport"
	default:
		return "unknown"
	}
}

// Food is a single item on the board.
type Food struct {
	At     Cell
	Kind   FoodKind
	TTL    time.Duration // Remaining lifetime
	MaxTTL time.Duration // Lifetime at spawn, for rendering the countdown
	Pair   int           // Shared by the two halves of a teleport pair, 0 otherwise
}

// Remaining returns the fraction of lifetime left in [0,1].
func (f Food) Remaining() float64 {
	if f.MaxTTL <= 0 {
		return 0
	}
	return max(0, min(1, float64(f.TTL)/float64(f.MaxTTL)))
}

// FoodManager keeps the live food items. Items never share a cell and are
// never placed on a cell the snake occupies.
type FoodManager struct {
	width    int
	height   int
	items    []Food
	nextPair int
}

// NewFoodManager creates an empty manager for a width x height grid.
func NewFoodManager(width, height int) *FoodManager {
	return &FoodManager{width: width, height: height}
}

// Items returns a copy of the live items.
func (m *FoodManager) Items() []Food {
	out := make([]Food, len(m.items))
	copy(out, m.items)
	return out
}

// Len returns the number of live items.
func (m *FoodManager) Len() int {
	return len(m.items)
}

// At returns the item on cell c, if any.
func (m *FoodManager) At(c Cell) (Food, bool) {
	for _, f := range m.items {
		if f.At == c {
			return f, true
		}
	}
	return Food{}, false
}

// Take removes and returns the item on cell c, if any.
func (m *FoodManager) Take(c Cell) (Food, bool) {
	for i, f := range m.items {
		if f.At == c {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return f, true
		}
	}
	return Food{}, false
}

// TakePartner removes and returns the other half of a teleport pair.
func (m *FoodManager) TakePartner(f Food) (Food, bool) {
	if f.Kind != FoodTeleport || f.Pair == 0 {
		return Food{}, false
	}
	for i, other := range m.items {
		if other.Pair == f.Pair && other.At != f.At {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return other, true
		}
	}
	return Food{}, false
}

// Count returns how many live items are of kind k.
func (m *FoodManager) Count(k FoodKind) int {
	n := 0
	for _, f := range m.items {
		if f.Kind == k {
			n++
		}
	}
	return n
}

// Decay ages every item by dt and drops the ones whose lifetime ran out.
// Expired items have no effect. Returns the number of items removed.
func (m *FoodManager) Decay(dt time.Duration) int {
	kept := m.items[:0]
	expired := 0
	for _, f := range m.items {
		f.TTL -= dt
		if f.TTL <= 0 {
			expired++
			continue
		}
		kept = append(kept, f)
	}
	m.items = kept
	return expired
}

// freeCells lists every cell that holds neither food nor a snake segment.
func (m *FoodManager) freeCells(snake *Snake) []Cell {
	taken := make(map[Cell]bool, len(m.items)+snake.Len())
	for _, f := range m.items {
		taken[f.At] = true
	}
	for _, c := range snake.body {
		taken[c] = true
	}
	free := make([]Cell, 0, m.width*m.height-len(taken))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			c := Cell{X: x, Y: y}
			if !taken[c] {
				free = append(free, c)
			}
		}
	}
	return free
}

// pick removes a uniformly random cell from free and returns it.
func pick(rng *rand.Rand, free []Cell) (Cell, []Cell) {
	i := rng.Intn(len(free))
	c := free[i]
	free[i] = free[len(free)-1]
	return c, free[:len(free)-1]
}

// place spawns one item of kind k on a random free cell.
func (m *FoodManager) place(rng *rand.Rand, free []Cell, k FoodKind, ttl time.Duration, pair int) []Cell {
	if len(free) == 0 {
		return free
	}
	var c Cell
	c, free = pick(rng, free)
	m.items = append(m.items, Food{At: c, Kind: k, TTL: ttl, MaxTTL: ttl, Pair: pair})
	return free
}

// SpawnNormal places a single normal item. Used at the start of a run and
// whenever the board has run out of normal food.
func (m *FoodManager) SpawnNormal(rng *rand.Rand, rules Rules, snake *Snake) bool {
	free := m.freeCells(snake)
	if len(free) == 0 {
		return false
	}
	m.place(rng, free, FoodNormal, rules.NormalTTL, 0)
	return true
}

// SpawnAfterMeal places the food that follows a consumption: one normal item
// and, depending on a single weighted roll, at most one power-up (or a
// teleport pair).
func (m *FoodManager) SpawnAfterMeal(rng *rand.Rand, rules Rules, snake *Snake) {
	free := m.freeCells(snake)
	if len(free) == 0 {
		return
	}
	free = m.place(rng, free, FoodNormal, rules.NormalTTL, 0)

	r := rng.Float64()
	switch {
	case r < rules.BonusChance:
		m.place(rng, free, FoodBonus, rules.BonusTTL, 0)
	case r < rules.SpeedDownChance:
		m.place(rng, free, FoodSpeedDown, rules.SpeedDownTTL, 0)
	case r < rules.ShrinkChance:
		m.place(rng, free, FoodShrink, rules.ShrinkTTL, 0)
	case r < rules.TeleportChance:
		if len(free) >= 2 {
			m.nextPair++
			free = m.place(rng, free, FoodTeleport, rules.TeleportTTL, m.nextPair)
			m.place(rng, free, FoodTeleport, rules.TeleportTTL, m.nextPair)
		}
	}
}
