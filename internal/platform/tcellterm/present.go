package tcellterm

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// cellSetter is the part of tcell.Screen used for drawing.
type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// StyleFor maps a cell attribute to a tcell style.
func StyleFor(a core.Attr) tcell.Style {
	switch a {
	case core.AttrDim:
		return tcell.StyleDefault.Dim(true)
	case core.AttrBold:
		return tcell.StyleDefault.Bold(true)
	default:
		return tcell.StyleDefault
	}
}

// Blit copies every cell of s onto dst at the origin.
func Blit(dst cellSetter, s *core.Screen) {
	for y, h := 0, s.Height(); y < h; y++ {
		for x, w := 0, s.Width(); x < w; x++ {
			c := s.GetCell(x, y)
			dst.SetContent(x, y, c.Rune, nil, StyleFor(c.Attr))
		}
	}
}

// drawStatus writes the status line on row y, padded to width.
func drawStatus(dst cellSetter, y, width int, st core.GameState) {
	text := fmt.Sprintf(" Year %d  Score %d ", st.Year, st.Score)
	style := tcell.StyleDefault.Bold(true)
	if st.GameOver {
		text = " GAME OVER" + text + " r restart  q quit"
		style = style.Reverse(true)
	}

	x := 0
	for _, r := range text {
		if x >= width {
			return
		}
		dst.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		dst.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}
