// Package theme holds the color palettes and resolves semantic screen colors
// to terminal styles.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Theme is a named palette.
type Theme struct {
	Name string

	Background colorful.Color
	Panel      colorful.Color
	Grid       colorful.Color
	Snake      colorful.Color // tail end of the body gradient
	Snake2     colorful.Color // head end of the body gradient
	Food       colorful.Color
	Text       colorful.Color
	Muted      colorful.Color
	Good       colorful.Color
	Bad        colorful.Color
	Warn       colorful.Color

	styles map[styleKey]lipgloss.Style
}

type styleKey struct {
	color core.Color
	shade uint8
}

// Power-up colors are shared by every theme.
var (
	golden = rgb(255, 215, 0)
	portal = rgb(120, 180, 255)
)

var themes = []*Theme{
	{
		Name:       "Neon Night",
		Background: rgb(11, 15, 20),
		Panel:      rgb(15, 22, 33),
		Grid:       rgb(27, 37, 53),
		Snake:      rgb(0, 245, 212),
		Snake2:     rgb(123, 44, 255),
		Food:       rgb(255, 61, 129),
		Text:       rgb(231, 240, 255),
		Muted:      rgb(155, 176, 201),
		Good:       rgb(124, 242, 154),
		Bad:        rgb(255, 107, 107),
		Warn:       rgb(255, 209, 102),
	},
	{
		Name:       "Retro Green",
		Background: rgb(6, 12, 8),
		Panel:      rgb(10, 20, 14),
		Grid:       rgb(18, 36, 22),
		Snake:      rgb(120, 255, 120),
		Snake2:     rgb(60, 200, 60),
		Food:       rgb(240, 255, 120),
		Text:       rgb(220, 255, 230),
		Muted:      rgb(140, 180, 150),
		Good:       rgb(190, 255, 190),
		Bad:        rgb(255, 120, 120),
		Warn:       rgb(255, 210, 140),
	},
	{
		Name:       "Candy Pop",
		Background: rgb(20, 10, 20),
		Panel:      rgb(32, 16, 40),
		Grid:       rgb(48, 24, 60),
		Snake:      rgb(255, 120, 180),
		Snake2:     rgb(120, 180, 255),
		Food:       rgb(255, 220, 120),
		Text:       rgb(255, 245, 255),
		Muted:      rgb(200, 170, 200),
		Good:       rgb(255, 180, 220),
		Bad:        rgb(255, 120, 180),
		Warn:       rgb(255, 230, 150),
	},
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Count returns the number of themes.
func Count() int {
	return len(themes)
}

// Names lists the theme names in index order.
func Names() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// Get returns the theme at index i, wrapping out-of-range indices.
func Get(i int) *Theme {
	return themes[core.Wrap(i, len(themes))]
}

// Color resolves a semantic color with a shade. For ColorSnake the shade
// walks the gradient from Snake to Snake2; for every other role it dims the
// color towards the background.
func (t *Theme) Color(c core.Color, shade uint8) colorful.Color {
	frac := float64(shade) / 255
	switch c {
	case core.ColorSnake:
		return t.Snake.BlendLab(t.Snake2, frac).Clamped()
	case core.ColorHead:
		return t.Snake.BlendRgb(t.Text, 0.35).Clamped()
	}
	base := t.base(c)
	if shade == 0 {
		return base
	}
	return base.BlendRgb(t.Background, frac*0.8).Clamped()
}

func (t *Theme) base(c core.Color) colorful.Color {
	switch c {
	case core.ColorPanel:
		return t.Panel
	case core.ColorGrid:
		return t.Grid
	case core.ColorFood:
		return t.Food
	case core.ColorGolden:
		return golden
	case core.ColorPortal:
		return portal
	case core.ColorMuted:
		return t.Muted
	case core.ColorGood:
		return t.Good
	case core.ColorBad:
		return t.Bad
	case core.ColorWarn:
		return t.Warn
	default:
		return t.Text
	}
}

// Style returns the lipgloss style for a cell color. Styles are cached per
// color and shade.
func (t *Theme) Style(c core.Color, shade uint8) lipgloss.Style {
	key := styleKey{color: c, shade: shade}
	if s, ok := t.styles[key]; ok {
		return s
	}
	if t.styles == nil {
		t.styles = make(map[styleKey]lipgloss.Style)
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Color(c, shade).Hex())).
		Background(lipgloss.Color(t.Background.Hex()))
	if c == core.ColorHead {
		s = s.Bold(true)
	}
	t.styles[key] = s
	return s
}

// Styles bundles the lipgloss styles used outside the game screen.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Select lipgloss.Style
	Muted  lipgloss.Style
	Good   lipgloss.Style
	Bad    lipgloss.Style
}

// UI returns styles for menus and tables in this theme.
func (t *Theme) UI() Styles {
	hex := func(c colorful.Color) lipgloss.Color { return lipgloss.Color(c.Hex()) }
	return Styles{
		Title:  lipgloss.NewStyle().Foreground(hex(t.Snake)).Bold(true),
		Header: lipgloss.NewStyle().Foreground(hex(t.Warn)).Bold(true),
		Cell:   lipgloss.NewStyle().Foreground(hex(t.Text)),
		Select: lipgloss.NewStyle().Foreground(hex(t.Background)).Background(hex(t.Snake)).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(hex(t.Muted)),
		Good:   lipgloss.NewStyle().Foreground(hex(t.Good)),
		Bad:    lipgloss.NewStyle().Foreground(hex(t.Bad)),
	}
}
