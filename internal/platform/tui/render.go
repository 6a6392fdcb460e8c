package tui

import (
	"strings"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same attribute to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Attr

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Attr != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}
