package anim

import (
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/sprites"
)

// GameOverBanner draws the banner centered on screen every tick once the
// ship has crashed. It never completes.
type GameOverBanner struct {
	frame sprites.Frame
}

// NewGameOverBanner creates the banner task.
func NewGameOverBanner(frame sprites.Frame) *GameOverBanner {
	return &GameOverBanner{frame: frame}
}

// Step implements engine.Task.
func (b *GameOverBanner) Step(w *engine.World) engine.Status {
	if !w.GameOver() {
		return engine.Running
	}
	row := (w.Screen.Height() - b.frame.Height) / 2
	col := (w.Screen.Width() - b.frame.Width) / 2
	w.Screen.DrawFrame(row, col, b.frame.Art, core.AttrBold, false)
	return engine.Running
}
