package tui

import (
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/theme"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color and shade to minimize ANSI
// escape sequences.
func RenderScreen(s *core.Screen, t *theme.Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Shade != start.Shade {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(t.Style(start.Color, start.Shade).Render(run.String()))
		}
	}
	return sb.String()
}
