package core

// Color is a semantic color role for a screen cell.
// The platform layer resolves roles to concrete terminal colors using the
// active theme, so the game never deals with palettes directly.
type Color uint8

const (
	ColorDefault Color = iota
	ColorPanel
	ColorGrid
	ColorSnake // gradient from head color to tail color, see Cell.Shade
	ColorHead
	ColorFood
	ColorGolden
	ColorPortal
	ColorText
	ColorMuted
	ColorGood
	ColorBad
	ColorWarn
	ColorCount // Sentinel for counting roles
)

// String returns the palette key for the color role.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorPanel:
		return "panel"
	case ColorGrid:
		return "grid"
	case ColorSnake:
		return "snake"
	case ColorHead:
		return "head"
	case ColorFood:
		return "food"
	case ColorGolden:
		return "golden"
	case ColorPortal:
		return "portal"
	case ColorText:
		return "text"
	case ColorMuted:
		return "muted"
	case ColorGood:
		return "good"
	case ColorBad:
		return "bad"
	case ColorWarn:
		return "warn"
	default:
		return "unknown"
	}
}
