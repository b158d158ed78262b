package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/sim"
	"github.com/vovakirdan/tui-snake/internal/theme"
)

// Every board cell is two terminal columns wide so the grid looks square.
const (
	cellCols   = 2
	sidebarW   = 30
	sidebarGap = 1
	blinkBelow = 3 * time.Second
)

var foodGlyphs = map[sim.FoodKind]rune{
	sim.FoodNormal:    '●',
	sim.FoodBonus:     '★',
	sim.FoodSpeedDown: '◐',
	sim.FoodShrink:    '▼',
	sim.FoodTeleport:  '◎',
}

// lifeGlyphs show the remaining lifetime of an item, fullest first.
var lifeGlyphs = []rune{'⣿', '⣶', '⣤', '⣀'}

// boardSize returns the outer size of the board frame.
func (g *Game) boardSize() (int, int) {
	r := g.engine.Rules()
	return r.Width*cellCols + 2, r.Height + 2
}

// layout positions the board and, when it fits, the sidebar.
func (g *Game) layout() (board core.Rect, sidebar core.Rect, hasSidebar bool) {
	bw, bh := g.boardSize()
	total := bw
	hasSidebar = !g.photo && g.screenW >= bw+sidebarGap+sidebarW
	if hasSidebar {
		total += sidebarGap + sidebarW
	}
	top := (g.screenH - bh) / 2
	if !hasSidebar && !g.photo && g.screenH > bh {
		top = max(1, top) // leave room for the compact HUD line
	}
	board = core.NewRect((g.screenW-total)/2, top, bw, bh)
	sidebar = core.NewRect(board.Right()+sidebarGap, board.Y, sidebarW, bh)
	return board, sidebar, hasSidebar
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		bw, bh := g.boardSize()
		g.renderOverlay(dst, core.NewRect(0, 0, dst.Width(), dst.Height()),
			overlayLine{"Window too small", core.ColorBad},
			overlayLine{fmt.Sprintf("Need %dx%d, have %dx%d", bw, bh, dst.Width(), dst.Height()), core.ColorMuted},
		)
		return
	}

	board, sidebar, hasSidebar := g.layout()
	dst.DrawBoxColored(board, core.ColorMuted)
	inner := board.Inset(1)

	if g.prefs.ShowGrid {
		g.renderGrid(dst, inner)
	}
	g.renderFood(dst, inner)
	g.renderSnake(dst, inner)
	g.renderParticles(dst, inner)

	if g.photo {
		return
	}

	if hasSidebar {
		g.renderSidebar(dst, sidebar)
	} else if board.Y > 0 {
		g.renderHUD(dst, board)
	}

	switch {
	case g.helpFlash > 0:
		g.renderHelp(dst, board)
	case g.phase == PhaseMenu:
		g.renderOverlay(dst, board,
			overlayLine{"ULTIMATE SNAKE", core.ColorSnake},
			overlayLine{"", core.ColorText},
			overlayLine{"Space or Enter to start", core.ColorText},
			overlayLine{fmt.Sprintf("Best %d", g.prefs.BestScore), core.ColorGood},
		)
	case g.phase == PhasePaused:
		g.renderOverlay(dst, board,
			overlayLine{"Paused", core.ColorText},
			overlayLine{"P to resume  R to restart", core.ColorMuted},
		)
	case g.phase == PhaseGameOver:
		lines := []overlayLine{
			{"Game Over", core.ColorBad},
			{"", core.ColorText},
			{fmt.Sprintf("Score %d", g.st.Score), core.ColorMuted},
			{fmt.Sprintf("Length %d", g.st.Snake.Len()), core.ColorMuted},
			{"Time " + formatTime(g.st.Stats.Alive), core.ColorMuted},
			{fmt.Sprintf("Best %d", g.prefs.BestScore), core.ColorGood},
		}
		if g.newBest {
			lines = append(lines, overlayLine{"New best!", core.ColorWarn})
		}
		lines = append(lines, overlayLine{"", core.ColorText}, overlayLine{"Press R to try again", core.ColorText})
		g.renderOverlay(dst, board, lines...)
	}
}

// cellPos maps a board cell to the screen column/row of its left half,
// including the current shake offset.
func (g *Game) cellPos(inner core.Rect, c sim.Cell) (int, int) {
	return inner.X + c.X*cellCols + g.shakeX, inner.Y + c.Y + g.shakeY
}

// put draws a board cell, clipped to the board interior.
func put(dst *core.Screen, inner core.Rect, x, y int, left, right core.Cell) {
	if inner.Contains(x, y) {
		dst.SetCell(x, y, left)
	}
	if inner.Contains(x+1, y) {
		dst.SetCell(x+1, y, right)
	}
}

func (g *Game) renderGrid(dst *core.Screen, inner core.Rect) {
	dot := core.Cell{Rune: '·', Color: core.ColorGrid}
	blank := core.Cell{Rune: ' '}
	r := g.engine.Rules()
	for y := range r.Height {
		for x := range r.Width {
			px, py := inner.X+x*cellCols, inner.Y+y
			put(dst, inner, px, py, dot, blank)
		}
	}
}

func (g *Game) renderFood(dst *core.Screen, inner core.Rect) {
	blinkOff := (g.tick/8)%2 == 0
	for _, f := range g.st.Food.Items() {
		color := foodColor(f.Kind)
		var shade uint8
		if f.TTL < blinkBelow && blinkOff {
			shade = 170
		}
		idx := int((1 - f.Remaining()) * float64(len(lifeGlyphs)))
		idx = core.Clamp(idx, 0, len(lifeGlyphs)-1)

		x, y := g.cellPos(inner, f.At)
		put(dst, inner, x, y,
			core.Cell{Rune: foodGlyphs[f.Kind], Color: color, Shade: shade},
			core.Cell{Rune: lifeGlyphs[idx], Color: color, Shade: 128},
		)
	}
}

func (g *Game) renderSnake(dst *core.Screen, inner core.Rect) {
	body := g.st.Snake.Body()
	last := len(body) - 1
	for i, c := range body {
		cell := core.Cell{Rune: '█', Color: core.ColorSnake}
		if last > 0 {
			cell.Shade = uint8(i * 255 / last)
		}
		left, right := cell, cell
		if i == last {
			left, right = headCells(g.st.Snake.Heading())
		}
		x, y := g.cellPos(inner, c)
		put(dst, inner, x, y, left, right)
	}
}

// headCells draws the head pointing along its heading.
func headCells(h sim.Heading) (core.Cell, core.Cell) {
	block := core.Cell{Rune: '█', Color: core.ColorHead}
	switch h {
	case sim.Left:
		return core.Cell{Rune: '◀', Color: core.ColorHead}, block
	case sim.Right:
		return block, core.Cell{Rune: '▶', Color: core.ColorHead}
	case sim.Up:
		return core.Cell{Rune: '▀', Color: core.ColorHead}, core.Cell{Rune: '▀', Color: core.ColorHead}
	default:
		return core.Cell{Rune: '▄', Color: core.ColorHead}, core.Cell{Rune: '▄', Color: core.ColorHead}
	}
}

func (g *Game) renderParticles(dst *core.Screen, inner core.Rect) {
	for _, p := range g.particles {
		x := inner.X + int(p.x*cellCols) + g.shakeX
		y := inner.Y + int(p.y) + g.shakeY
		if !inner.Contains(x, y) {
			continue
		}
		life := float64(p.ttl) / float64(p.maxTTL)
		r := '·'
		if life > 0.5 {
			r = '*'
		}
		dst.SetCell(x, y, core.Cell{Rune: r, Color: p.color, Shade: uint8((1 - life) * 200)})
	}
}

func (g *Game) renderSidebar(dst *core.Screen, r core.Rect) {
	dst.DrawBoxColored(r, core.ColorMuted)
	x, right := r.X+2, r.Right()-2
	y := r.Y + 1

	dst.DrawTextColored(x, y, "ULTIMATE SNAKE", core.ColorSnake)
	y++
	dst.DrawTextColored(x, y, "Theme: "+theme.Get(g.prefs.ThemeIndex).Name, core.ColorMuted)
	y += 2

	combo := "-"
	if g.st.Combo > 0 {
		combo = fmt.Sprintf("x%d", g.st.Combo)
	}
	stats := []struct {
		label, value string
		color        core.Color
	}{
		{"Score", fmt.Sprint(g.st.Score), core.ColorText},
		{"Length", fmt.Sprint(g.st.Snake.Len()), core.ColorText},
		{"Apples", fmt.Sprint(g.st.Stats.Apples), core.ColorText},
		{"Best", fmt.Sprint(g.prefs.BestScore), core.ColorGood},
		{"Alive", formatTime(g.st.Stats.Alive), core.ColorText},
		{"Speed", fmt.Sprintf("%.1f cps", g.st.Speed), core.ColorText},
		{"Combo", combo, core.ColorWarn},
	}
	for _, s := range stats {
		dst.DrawTextColored(x, y, s.label, core.ColorMuted)
		dst.DrawTextRight(right, y, s.value, s.color)
		y++
	}
	y++

	walls, wallColor := "[Solid]", core.ColorWarn
	if g.prefs.WrapWalls {
		walls, wallColor = "[Wrap]", core.ColorGood
	}
	grid := "[No Grid]"
	if g.prefs.ShowGrid {
		grid = "[Grid]"
	}
	dst.DrawTextColored(x, y, walls, wallColor)
	dst.DrawTextColored(x+core.TextWidth(walls)+1, y, grid, core.ColorText)
	dst.DrawTextRight(right, y, "[UI On]", core.ColorText)
	y += 2

	legend := []struct {
		kind sim.FoodKind
		text string
	}{
		{sim.FoodNormal, "Apple +10"},
		{sim.FoodBonus, "Golden +50 (grow 3)"},
		{sim.FoodSpeedDown, "Slowmo (-2 cps)"},
		{sim.FoodShrink, "Shrink (up to 3)"},
		{sim.FoodTeleport, "Portal (teleport)"},
	}
	for _, l := range legend {
		dst.SetColored(x, y, foodGlyphs[l.kind], foodColor(l.kind))
		dst.DrawTextColored(x+2, y, l.text, core.ColorText)
		y++
	}

	help := []string{
		"Space start  P pause",
		"R restart  F1 help",
	}
	y = r.Bottom() - 1 - len(help)
	for _, line := range help {
		dst.DrawTextColored(x, y, line, core.ColorMuted)
		y++
	}
}

// renderHUD draws a one-line status above the board when the sidebar does
// not fit.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	walls := "Solid"
	if g.prefs.WrapWalls {
		walls = "Wrap"
	}
	hud := fmt.Sprintf(" Score %d  Len %d  Best %d  %.1fcps  %s", g.st.Score, g.st.Snake.Len(), g.prefs.BestScore, g.st.Speed, walls)
	dst.DrawTextColored(board.X, board.Y-1, hud, core.ColorText)
}

func (g *Game) renderHelp(dst *core.Screen, board core.Rect) {
	g.renderOverlay(dst, board,
		overlayLine{"Keys", core.ColorWarn},
		overlayLine{"", core.ColorText},
		overlayLine{"Arrows/WASD   move", core.ColorText},
		overlayLine{"Space/Enter   start", core.ColorText},
		overlayLine{"P pause       R restart", core.ColorText},
		overlayLine{"T theme       M walls", core.ColorText},
		overlayLine{"G grid        +/- speed", core.ColorText},
		overlayLine{"F2 photo      F5 screenshot", core.ColorText},
		overlayLine{"Esc quit", core.ColorText},
	)
}

type overlayLine struct {
	text  string
	color core.Color
}

// renderOverlay draws a framed message box centered in area.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, lines ...overlayLine) {
	width := 0
	for _, l := range lines {
		width = max(width, core.TextWidth(l.text))
	}
	boxW := width + 6
	boxH := len(lines) + 2
	cx, cy := area.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBoxColored(box, core.ColorText)
	for i, l := range lines {
		x := box.X + (boxW-core.TextWidth(l.text))/2
		dst.DrawTextColored(x, box.Y+1+i, l.text, l.color)
	}
}

// formatTime renders a duration as mm:ss.
func formatTime(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
