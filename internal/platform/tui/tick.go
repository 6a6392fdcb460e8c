// Package tui provides the Bubble Tea integration for Space Garbage.
// It handles the terminal UI loop, input mapping, and mode selection.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen ties the tick to the model that scheduled it, so a model that was
// replaced (back to the menu, then a new game) stops receiving old ticks.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

// nextGen returns a fresh tick generation.
func nextGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick after delay.
func tickCmd(delay time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
