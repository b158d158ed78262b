package snake

import "github.com/vovakirdan/tui-snake/internal/sim"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Score    int
	Best     int
	Length   int
	HeadX    int
	HeadY    int
	Heading  sim.Heading
	Speed    float64
	Combo    int
	Apples   int
	Food     []sim.Food
	TooSmall bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	head := g.st.Snake.Head()
	return Snapshot{
		Tick:     g.tick,
		Phase:    g.phase,
		Score:    g.st.Score,
		Best:     g.prefs.BestScore,
		Length:   g.st.Snake.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Heading:  g.st.Snake.Heading(),
		Speed:    g.st.Speed,
		Combo:    g.st.Combo,
		Apples:   g.st.Stats.Apples,
		Food:     g.st.Food.Items(),
		TooSmall: g.tooSmall,
	}
}
