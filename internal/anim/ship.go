package anim

import (
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/sprites"
)

// ShipRender draws the ship's alternating frames at its current position and
// detects crashes. After a crash it keeps running as a no-op.
type ShipRender struct {
	frames []sprites.Frame
	hold   int
	frame  int
	held   int

	drawn    bool
	drawnArt string
	drawnRow int
	drawnCol int
}

// NewShipRender creates the ship task. Each frame is shown for hold ticks.
func NewShipRender(frames []sprites.Frame, hold int) *ShipRender {
	return &ShipRender{frames: frames, hold: max(hold, 1)}
}

// Step implements engine.Task.
func (s *ShipRender) Step(w *engine.World) engine.Status {
	if s.drawn {
		w.Screen.DrawFrame(s.drawnRow, s.drawnCol, s.drawnArt, core.AttrNormal, true)
		s.drawn = false
	}

	ship := w.Ship
	if ship == nil || !ship.Alive || len(s.frames) == 0 {
		return engine.Running
	}

	if id, hit := w.Obstacles.Hit(ship); hit {
		ship.Alive = false
		ship.Firing = false
		w.Log.Debug("ship collided", "obstacle", id, "x", ship.X, "y", ship.Y)
		return engine.Running
	}

	f := s.frames[s.frame]
	w.Screen.DrawFrame(ship.Y, ship.X, f.Art, core.AttrNormal, false)
	s.drawn = true
	s.drawnArt, s.drawnRow, s.drawnCol = f.Art, ship.Y, ship.X

	s.held++
	if s.held >= s.hold {
		s.held = 0
		s.frame = (s.frame + 1) % len(s.frames)
	}
	return engine.Running
}
