package snake

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/prefs"
	"github.com/vovakirdan/tui-snake/internal/sim"
)

// memSaver records saved preferences.
type memSaver struct {
	saved []prefs.Prefs
	err   error
}

func (m *memSaver) Save(p prefs.Prefs) error {
	m.saved = append(m.saved, p)
	return m.err
}

func newTestGame(t *testing.T, p prefs.Prefs, saver PrefsSaver) *Game {
	t.Helper()
	g := New(config.DefaultSnakeConfig(), p, saver)
	g.Reset(core.RuntimeConfig{Seed: 12345, ScreenW: 100, ScreenH: 30, TickRate: 60})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// crash drives a solid-wall run into the right wall without eating.
func crash(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	g.prefs.WrapWalls = false
	g.st.Walls = sim.WallsSolid
	r := g.engine.Rules()
	for i := 0; i < 60*60; i++ {
		g.st.Food = sim.NewFoodManager(r.Width, r.Height)
		res := g.Step(core.InputFrame{})
		if res.State.GameOver {
			return res
		}
	}
	t.Fatal("Run never ended")
	return core.StepResult{}
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 100, ScreenH: 30}

	g1 := New(config.DefaultSnakeConfig(), prefs.Defaults(), nil)
	g1.Reset(cfg)
	g2 := New(config.DefaultSnakeConfig(), prefs.Defaults(), nil)
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		switch i {
		case 0:
			input.Set(core.ActionConfirm)
		case 60:
			input.Set(core.ActionDown)
		case 150:
			input.Set(core.ActionLeft)
		case 300:
			input.Set(core.ActionUp)
		}
		g1.Step(input)
		g2.Step(input)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Tick != s2.Tick || s1.Score != s2.Score || s1.Length != s2.Length {
		t.Errorf("State mismatch: %+v vs %+v", s1, s2)
	}
	if s1.HeadX != s2.HeadX || s1.HeadY != s2.HeadY || s1.Heading != s2.Heading {
		t.Errorf("Head mismatch: (%d,%d,%v) vs (%d,%d,%v)", s1.HeadX, s1.HeadY, s1.Heading, s2.HeadX, s2.HeadY, s2.Heading)
	}
	if len(s1.Food) != len(s2.Food) {
		t.Fatalf("Food count mismatch: %d vs %d", len(s1.Food), len(s2.Food))
	}
	for i := range s1.Food {
		if s1.Food[i].At != s2.Food[i].At || s1.Food[i].Kind != s2.Food[i].Kind {
			t.Errorf("Food %d mismatch: %+v vs %+v", i, s1.Food[i], s2.Food[i])
		}
	}
}

func TestPhases(t *testing.T) {
	g := newTestGame(t, prefs.Defaults(), nil)

	if g.Phase() != PhaseMenu {
		t.Fatalf("Expected menu after reset, got %v", g.Phase())
	}
	head := g.st.Snake.Head()
	for range 30 {
		g.Step(core.InputFrame{})
	}
	if g.st.Snake.Head() != head {
		t.Error("Snake must not move on the title screen")
	}

	g.Step(press(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Fatalf("Expected playing after confirm, got %v", g.Phase())
	}

	g.Step(press(core.ActionPause))
	if g.Phase() != PhasePaused || !g.State().Paused {
		t.Fatalf("Expected paused, got %v", g.Phase())
	}
	head = g.st.Snake.Head()
	for range 30 {
		g.Step(core.InputFrame{})
	}
	if g.st.Snake.Head() != head {
		t.Error("Snake must not move while paused")
	}

	g.Step(press(core.ActionPause))
	if g.Phase() != PhasePlaying {
		t.Fatalf("Expected playing after unpause, got %v", g.Phase())
	}

	res := crash(t, g)
	if g.Phase() != PhaseGameOver || !res.State.GameOver {
		t.Fatalf("Expected game over, got %v", g.Phase())
	}

	g.Step(press(core.ActionRestart))
	if g.Phase() != PhasePlaying || g.st.Score != 0 || g.st.Over {
		t.Errorf("Restart should start a fresh run, got phase %v score %d", g.Phase(), g.st.Score)
	}
}

func TestGameOverPersistsPrefs(t *testing.T) {
	saver := &memSaver{}
	p := prefs.Defaults()
	p.BestScore = 100
	g := newTestGame(t, p, saver)
	g.Step(press(core.ActionConfirm))

	g.st.Score = 40
	res := crash(t, g)

	if res.Run == nil {
		t.Fatal("Expected a run summary on the final tick")
	}
	if res.Run.Score != 40 || res.Run.WrapWalls || res.Run.Cause != "wall" || res.Run.NewBest {
		t.Errorf("Unexpected summary: %+v", res.Run)
	}
	if len(saver.saved) != 1 {
		t.Fatalf("Expected prefs to be saved once, got %d", len(saver.saved))
	}
	saved := saver.saved[0]
	if saved.BestScore != 100 {
		t.Errorf("Best score must not drop, got %d", saved.BestScore)
	}
	if saved.LastStats == nil || saved.LastStats.Score != 40 {
		t.Errorf("Last stats not recorded: %+v", saved.LastStats)
	}
	if saved.WrapWalls {
		t.Error("Wall mode preference should be saved")
	}

	// Further ticks do not produce another summary.
	if res := g.Step(core.InputFrame{}); res.Run != nil {
		t.Error("Run summary should only be reported once")
	}
}

func TestNewBestScore(t *testing.T) {
	saver := &memSaver{}
	p := prefs.Defaults()
	p.BestScore = 100
	g := newTestGame(t, p, saver)
	g.Step(press(core.ActionConfirm))

	g.st.Score = 150
	res := crash(t, g)
	if !res.Run.NewBest || saver.saved[0].BestScore != 150 {
		t.Errorf("Expected new best 150, got summary %+v saved %d", res.Run, saver.saved[0].BestScore)
	}

	// An equal score in the next run is not a new best.
	g.Step(press(core.ActionRestart))
	g.st.Score = 150
	res = crash(t, g)
	if res.Run.NewBest {
		t.Error("Equal score must not count as a new best")
	}
}

func TestSaveFailureIsReported(t *testing.T) {
	saver := &memSaver{err: errors.New("disk full")}
	g := newTestGame(t, prefs.Defaults(), saver)
	g.Step(press(core.ActionConfirm))

	res := crash(t, g)
	if res.Err == nil {
		t.Error("Expected the save error to be reported")
	}
	if g.Phase() != PhaseGameOver {
		t.Error("A save failure must not affect the game")
	}
}

func TestToggles(t *testing.T) {
	g := newTestGame(t, prefs.Defaults(), nil)

	g.Step(press(core.ActionTheme))
	if g.ThemeIndex() != 1 {
		t.Errorf("Expected theme 1, got %d", g.ThemeIndex())
	}
	g.Step(press(core.ActionTheme))
	g.Step(press(core.ActionTheme))
	if g.ThemeIndex() != 0 {
		t.Errorf("Theme should wrap to 0, got %d", g.ThemeIndex())
	}

	g.Step(press(core.ActionWallMode))
	if g.Prefs().WrapWalls || g.st.Walls != sim.WallsSolid {
		t.Error("Wall toggle should switch to solid walls immediately")
	}

	g.Step(press(core.ActionGrid))
	if g.Prefs().ShowGrid {
		t.Error("Grid toggle should hide the grid")
	}

	g.Step(press(core.ActionSpeedUp))
	if g.Prefs().BaseSpeed != 8.5 || g.st.Speed != 8.5 {
		t.Errorf("Expected speed 8.5, got base %g current %g", g.Prefs().BaseSpeed, g.st.Speed)
	}
	g.Step(press(core.ActionSpeedDown))
	g.Step(press(core.ActionSpeedDown))
	if g.Prefs().BaseSpeed != 7.5 || g.st.Speed != 7.5 {
		t.Errorf("Expected speed 7.5, got base %g current %g", g.Prefs().BaseSpeed, g.st.Speed)
	}

	g.Step(press(core.ActionPhoto))
	if !g.photo {
		t.Error("Photo mode should be on")
	}

	g.Step(press(core.ActionHelp))
	if g.helpFlash <= 0 {
		t.Error("Help flash should be active")
	}
	for range 120 {
		g.Step(core.InputFrame{})
	}
	if g.helpFlash != 0 {
		t.Errorf("Help flash should expire after 1.5s, got %v", g.helpFlash)
	}
}

func TestSavePrefsOnQuit(t *testing.T) {
	saver := &memSaver{}
	g := newTestGame(t, prefs.Defaults(), saver)
	g.Step(press(core.ActionGrid))

	if err := g.SavePrefs(); err != nil {
		t.Fatalf("SavePrefs failed: %v", err)
	}
	if len(saver.saved) != 1 || saver.saved[0].ShowGrid {
		t.Errorf("Toggled prefs not saved: %+v", saver.saved)
	}

	if err := New(config.DefaultSnakeConfig(), prefs.Defaults(), nil).SavePrefs(); err != nil {
		t.Errorf("Nil saver should be a no-op, got %v", err)
	}
}

func TestEatingSpawnsEffects(t *testing.T) {
	g := newTestGame(t, prefs.Defaults(), nil)

	// Effects keep animating on the title screen while the snake stays put.
	g.burst(sim.Event{Kind: sim.FoodBonus, At: g.st.Snake.Head().Add(sim.Right)})
	if len(g.particles) != burstSize || g.shake != shakeTime {
		t.Fatalf("Expected %d particles and shake, got %d / %v", burstSize, len(g.particles), g.shake)
	}

	for range 60 {
		g.Step(core.InputFrame{})
	}
	if len(g.particles) != 0 || g.shake != 0 {
		t.Errorf("Effects should fade within a second, got %d particles shake %v", len(g.particles), g.shake)
	}
	if g.shakeX != 0 || g.shakeY != 0 {
		t.Error("Shake offset should reset")
	}
}

func TestTooSmallPausesSimulation(t *testing.T) {
	g := New(config.DefaultSnakeConfig(), prefs.Defaults(), nil)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 40, ScreenH: 10})
	g.Step(press(core.ActionConfirm))

	head := g.st.Snake.Head()
	for range 60 {
		g.Step(core.InputFrame{})
	}
	if g.st.Snake.Head() != head {
		t.Error("Snake must not move when the window is too small")
	}
	if !g.State().Paused {
		t.Error("State should report paused while the window is too small")
	}

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Expected too-small message")
	}

	g.Resize(100, 30)
	for range 10 {
		g.Step(core.InputFrame{})
	}
	if g.st.Snake.Head() == head {
		t.Error("Snake should move again after resize")
	}
}

func TestRenderLayouts(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		contains []string
		missing  []string
	}{
		{"sidebar", 100, 30, []string{"ULTIMATE SNAKE", "Score", "Golden +50", "[Wrap]"}, nil},
		{"compact", 80, 24, []string{"Score 0", "Space or Enter to start"}, []string{"Golden +50"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(config.DefaultSnakeConfig(), prefs.Defaults(), nil)
			g.Reset(core.RuntimeConfig{Seed: 3, ScreenW: tc.w, ScreenH: tc.h})
			screen := core.NewScreen(tc.w, tc.h)
			g.Render(screen)
			out := screen.String()
			for _, s := range tc.contains {
				if !strings.Contains(out, s) {
					t.Errorf("Expected %q in render:\n%s", s, out)
				}
			}
			for _, s := range tc.missing {
				if strings.Contains(out, s) {
					t.Errorf("Did not expect %q in render", s)
				}
			}
		})
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, prefs.Defaults(), nil)
	g.Step(press(core.ActionConfirm))
	screen := core.NewScreen(100, 30)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "██▶") {
		t.Errorf("Expected snake heading right in render:\n%s", out)
	}
	if !strings.Contains(out, "●") {
		t.Error("Expected normal food glyph")
	}

	g.Step(press(core.ActionPhoto))
	screen.Clear()
	g.Render(screen)
	if strings.Contains(screen.String(), "ULTIMATE SNAKE") {
		t.Error("Photo mode should hide the sidebar")
	}
}

func TestFormatTime(t *testing.T) {
	if got := formatTime(83 * time.Second); got != "01:23" {
		t.Errorf("Expected 01:23, got %s", got)
	}
}

func TestLastValidTurnWins(t *testing.T) {
	tests := []struct {
		name  string
		turns []core.Action
		want  sim.Heading
	}{
		{"right then left", []core.Action{core.ActionRight, core.ActionLeft}, sim.Left},
		{"left then right", []core.Action{core.ActionLeft, core.ActionRight}, sim.Right},
		{"reversal after valid press", []core.Action{core.ActionLeft, core.ActionDown}, sim.Left},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, prefs.Defaults(), nil)
			g.Step(press(core.ActionConfirm))
			g.st.Walls = sim.WallsWrap
			g.Step(press(core.ActionUp))
			for i := 0; i < 120 && g.st.Snake.Heading() != sim.Up; i++ {
				g.Step(core.InputFrame{})
			}
			if g.st.Snake.Heading() != sim.Up {
				t.Fatalf("Expected heading up, got %v", g.st.Snake.Heading())
			}

			g.Step(press(tc.turns...))
			if got := g.st.Snake.Pending(); got != tc.want {
				t.Errorf("Pending() = %v, expected %v", got, tc.want)
			}
		})
	}
}
