package theme

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestThemes(t *testing.T) {
	if Count() != 3 {
		t.Fatalf("Expected 3 themes, got %d", Count())
	}
	expected := []string{"Neon Night", "Retro Green", "Candy Pop"}
	for i, name := range Names() {
		if name != expected[i] {
			t.Errorf("Theme %d: expected %q, got %q", i, expected[i], name)
		}
	}
	if Get(3) != Get(0) || Get(-1) != Get(2) {
		t.Error("Get should wrap out-of-range indices")
	}
}

func TestSnakeGradientEndpoints(t *testing.T) {
	th := Get(0)
	if got, want := th.Color(core.ColorSnake, 0).Hex(), th.Snake.Hex(); got != want {
		t.Errorf("Gradient start: expected %s, got %s", want, got)
	}
	if got, want := th.Color(core.ColorSnake, 255).Hex(), th.Snake2.Hex(); got != want {
		t.Errorf("Gradient end: expected %s, got %s", want, got)
	}
	mid := th.Color(core.ColorSnake, 128)
	if mid.Hex() == th.Snake.Hex() || mid.Hex() == th.Snake2.Hex() {
		t.Errorf("Gradient midpoint should differ from both ends, got %s", mid.Hex())
	}
}

func TestShadeDimsTowardsBackground(t *testing.T) {
	th := Get(1)
	full := th.Color(core.ColorFood, 0)
	dim := th.Color(core.ColorFood, 255)
	if full.Hex() != th.Food.Hex() {
		t.Errorf("Unshaded food should use the palette color, got %s", full.Hex())
	}
	if full.DistanceRgb(th.Background) <= dim.DistanceRgb(th.Background) {
		t.Error("Shaded color should be closer to the background")
	}
}

func TestPowerUpColorsShared(t *testing.T) {
	for i := 0; i < Count(); i++ {
		if got := Get(i).Color(core.ColorGolden, 0).Hex(); got != "#ffd700" {
			t.Errorf("Theme %d golden: got %s", i, got)
		}
		if got := Get(i).Color(core.ColorPortal, 0).Hex(); got != "#78b4ff" {
			t.Errorf("Theme %d portal: got %s", i, got)
		}
	}
}

func TestStyleCached(t *testing.T) {
	th := &Theme{Name: "test", Text: rgb(255, 255, 255)}
	th.Style(core.ColorText, 0)
	th.Style(core.ColorText, 0)
	th.Style(core.ColorText, 10)
	if len(th.styles) != 2 {
		t.Errorf("Expected 2 cached styles, got %d", len(th.styles))
	}
}
