// Package tcellterm runs a game mode directly on a tcell screen, without
// Bubble Tea. The simulation is driven by engine.Run on a fixed ticker while
// a separate goroutine polls terminal events into an input latch.
package tcellterm

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// Latch collects key events between ticks.
// It implements core.InputSource: Poll hands out everything pressed since the
// previous Poll and starts over.
type Latch struct {
	mu       sync.Mutex
	controls core.Controls
	restart  bool
	quit     bool
}

// HandleKey records a terminal key event.
func (l *Latch) HandleKey(ev *tcell.EventKey) {
	l.press(ev.Key(), ev.Rune())
}

func (l *Latch) press(k tcell.Key, r rune) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch k {
	case tcell.KeyUp:
		l.controls.Press(-1, 0)
	case tcell.KeyDown:
		l.controls.Press(1, 0)
	case tcell.KeyLeft:
		l.controls.Press(0, -1)
	case tcell.KeyRight:
		l.controls.Press(0, 1)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		l.quit = true
	case tcell.KeyRune:
		switch r {
		case 'w', 'k':
			l.controls.Press(-1, 0)
		case 's', 'j':
			l.controls.Press(1, 0)
		case 'a', 'h':
			l.controls.Press(0, -1)
		case 'd', 'l':
			l.controls.Press(0, 1)
		case ' ':
			l.controls.Fire = true
		case 'r':
			l.restart = true
		case 'q':
			l.quit = true
		}
	}
}

// Poll returns the controls pressed since the last call and clears them.
func (l *Latch) Poll() core.Controls {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := l.controls
	l.controls.Clear()
	return c
}

// TakeRestart reports and clears a pending restart request.
func (l *Latch) TakeRestart() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	r := l.restart
	l.restart = false
	return r
}

// Quit reports whether the player asked to quit.
func (l *Latch) Quit() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.quit
}
