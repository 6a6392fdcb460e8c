package core

import (
	"strings"
)

// Cell is one character position of the screen.
type Cell struct {
	Rune rune
	Attr Attr
}

var blankCell = Cell{Rune: ' ', Attr: AttrNormal}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing tasks to draw
// using simple rune operations while the platform handles actual display.
//
// Unlike a frame-by-frame canvas, the buffer is never cleared between ticks:
// animations erase what they drew by redrawing it in negative mode.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = Max(width, 0)
	s.height = Max(height, 0)
	s.allocate()
	s.Clear()

	copyW := min(oldW, s.width)
	copyH := min(oldH, s.height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// inside reports whether (x, y) is on the screen.
func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a rune with the normal attribute at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inside(x, y) {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, attr Attr) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Attr: attr})
		i++
	}
}

// DrawFrame blits multi-line art with its top-left corner at (row, col).
// Spaces in the art are transparent. In negative mode every glyph cell of
// the art is overwritten with a blank, which erases a previous positive draw
// of the same art at the same place. Cells outside the screen are clipped.
func (s *Screen) DrawFrame(row, col int, art string, attr Attr, negative bool) {
	for dy, line := range strings.Split(art, "\n") {
		y := row + dy
		if y < 0 {
			continue
		}
		if y >= s.height {
			break
		}
		dx := 0
		for _, r := range line {
			x := col + dx
			dx++
			if r == ' ' || !s.inside(x, y) {
				continue
			}
			if negative {
				s.cells[y][x] = blankCell
				continue
			}
			s.cells[y][x] = Cell{Rune: r, Attr: attr}
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}

	// Corners
	s.Set(r.X, r.Y, '┌')
	s.Set(r.Right(), r.Y, '┐')
	s.Set(r.X, r.Bottom(), '└')
	s.Set(r.Right(), r.Bottom(), '┘')

	// Horizontal edges
	for x := r.X + 1; x < r.Right(); x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, r.Bottom(), '─')
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom(); y++ {
		s.Set(r.X, y, '│')
		s.Set(r.Right(), y, '│')
	}
}

// CopyFrom makes s an exact copy of src, resizing s if needed.
func (s *Screen) CopyFrom(src *Screen) {
	if s.width != src.width || s.height != src.height {
		s.width, s.height = src.width, src.height
		s.allocate()
	}
	for y := range src.cells {
		copy(s.cells[y], src.cells[y])
	}
}

// Bounds returns the rectangle covering the whole screen.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// String converts the screen buffer to a plain string without attributes.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
