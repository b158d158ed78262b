package snake

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/sim"
)

const burstSize = 12

// particle is a spark in board-cell coordinates.
type particle struct {
	x, y   float64
	vx, vy float64 // cells per second
	ttl    time.Duration
	maxTTL time.Duration
	color  core.Color
}

// foodColor maps a food kind to its screen color.
func foodColor(k sim.FoodKind) core.Color {
	switch k {
	case sim.FoodBonus:
		return core.ColorGolden
	case sim.FoodSpeedDown:
		return core.ColorWarn
	case sim.FoodShrink:
		return core.ColorGood
	case sim.FoodTeleport:
		return core.ColorPortal
	default:
		return core.ColorFood
	}
}

// burst spawns sparks where food was eaten and kicks off the board shake.
func (g *Game) burst(ev sim.Event) {
	for range burstSize {
		ang := g.fx.Float64() * 2 * math.Pi
		spd := 3 + g.fx.Float64()*5
		ttl := 350*time.Millisecond + time.Duration(g.fx.Int63n(int64(350*time.Millisecond)))
		g.particles = append(g.particles, particle{
			x:      float64(ev.At.X) + 0.5,
			y:      float64(ev.At.Y) + 0.5,
			vx:     math.Cos(ang) * spd,
			vy:     math.Sin(ang) * spd * 0.5, // rows are twice as tall as columns
			ttl:    ttl,
			maxTTL: ttl,
			color:  foodColor(ev.Kind),
		})
	}
	g.shake = shakeTime
}

// updateEffects ages the visual effects by one frame.
func (g *Game) updateEffects() {
	dt := g.dt
	secs := dt.Seconds()
	g.helpFlash = max(0, g.helpFlash-dt)
	if g.phase == PhasePaused {
		return
	}

	kept := g.particles[:0]
	for _, p := range g.particles {
		p.ttl -= dt
		if p.ttl <= 0 {
			continue
		}
		p.x += p.vx * secs
		p.y += p.vy * secs
		kept = append(kept, p)
	}
	g.particles = kept

	g.shake = max(0, g.shake-dt)

	g.shakeX, g.shakeY = 0, 0
	if g.shake > 0 {
		mag := int(math.Round(easeOutCubic(float64(g.shake)/float64(shakeTime)) * 2))
		if mag > 0 {
			g.shakeX = g.fx.Intn(2*mag+1) - mag
			g.shakeY = g.fx.Intn(3) - 1
		}
	}
}

func easeOutCubic(t float64) float64 {
	t = core.ClampF(t, 0, 1)
	return 1 - math.Pow(1-t, 3)
}
