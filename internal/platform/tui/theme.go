package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// Theme contains the visual styles of the terminal front end.
// Styles are bound to a renderer so SSH sessions use the color profile of
// the remote terminal rather than the server's.
type Theme struct {
	// Screen cells by attribute
	Cells map[core.Attr]lipgloss.Style

	// Status line
	StatusValue lipgloss.Style
	StatusAlert lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// NewTheme builds the default theme on the given renderer.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Cells: map[core.Attr]lipgloss.Style{
			core.AttrNormal: r.NewStyle(),
			core.AttrDim:    r.NewStyle().Faint(true),
			core.AttrBold:   r.NewStyle().Bold(true),
		},

		StatusValue: r.NewStyle().Bold(true),
		StatusAlert: r.NewStyle().Bold(true).Reverse(true),

		MenuTitle:       r.NewStyle().Bold(true),
		MenuItemNormal:  r.NewStyle(),
		MenuItemActive:  r.NewStyle().Bold(true).Reverse(true),
		MenuDescription: r.NewStyle().Faint(true),
	}
}

// DefaultTheme returns the theme for the local terminal.
func DefaultTheme() Theme {
	return NewTheme(lipgloss.DefaultRenderer())
}

// cellStyle returns the style for an attribute, falling back to normal.
func (t Theme) cellStyle(a core.Attr) lipgloss.Style {
	if s, ok := t.Cells[a]; ok {
		return s
	}
	return t.Cells[core.AttrNormal]
}
