package anim

import (
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/sprites"
)

// Explosion plays its frames centered on a point. Every frame is shown for
// one tick and erased on the next. It never affects collisions.
type Explosion struct {
	frames   []sprites.Frame
	row, col int
	next     int
	shown    bool
}

// NewExplosion creates an explosion centered on (row, col).
func NewExplosion(frames []sprites.Frame, row, col int) *Explosion {
	return &Explosion{frames: frames, row: row, col: col}
}

func (e *Explosion) origin(f sprites.Frame) (int, int) {
	return e.row - f.Height/2, e.col - f.Width/2
}

// Step implements engine.Task.
func (e *Explosion) Step(w *engine.World) engine.Status {
	if e.next >= len(e.frames) {
		return engine.Done
	}

	f := e.frames[e.next]
	row, col := e.origin(f)
	if e.shown {
		w.Screen.DrawFrame(row, col, f.Art, core.AttrNormal, true)
		e.shown = false
		e.next++
		if e.next >= len(e.frames) {
			return engine.Done
		}
		return engine.Running
	}

	w.Screen.DrawFrame(row, col, f.Art, core.AttrNormal, false)
	e.shown = true
	return engine.Running
}
