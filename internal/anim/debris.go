package anim

import (
	"math"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/obstacle"
	"github.com/vovakirdan/space-garbage/internal/sprites"
)

// Debris falls straight down from the top of the screen. It owns one
// obstacle in the registry for its whole life.
type Debris struct {
	id    obstacle.ID
	frame sprites.Frame
	col   int
	row   float64
	speed float64

	drawn    bool
	drawnRow int
}

// NewDebris registers the obstacle at row 0 and returns the task that moves
// it. speed is in rows per tick.
func NewDebris(w *engine.World, col int, frame sprites.Frame, speed float64) *Debris {
	id := w.Obstacles.Add(0, col, frame.Width, frame.Height)
	return &Debris{id: id, frame: frame, col: col, speed: speed}
}

// ID returns the obstacle owned by this task.
func (d *Debris) ID() obstacle.ID {
	return d.id
}

// Step implements engine.Task.
func (d *Debris) Step(w *engine.World) engine.Status {
	if d.drawn {
		w.Screen.DrawFrame(d.drawnRow, d.col, d.frame.Art, core.AttrNormal, true)
		d.drawn = false
	}

	if w.Obstacles.ConsumeDestroyed(d.id) {
		o, _ := w.Obstacles.Get(d.id)
		w.Obstacles.Remove(d.id)
		w.Score++

		cx, cy := o.Bounds().Center()
		w.Spawn(NewExplosion(w.Catalog.Explosion(), cy, cx))
		w.Log.Debug("debris destroyed", "obstacle", d.id, "score", w.Score)
		return engine.Done
	}

	d.row += d.speed
	if d.row >= float64(w.Screen.Height()) {
		w.Obstacles.Remove(d.id)
		return engine.Done
	}

	w.Obstacles.SetRow(d.id, d.row)
	d.drawnRow = int(math.Round(d.row))
	w.Screen.DrawFrame(d.drawnRow, d.col, d.frame.Art, core.AttrNormal, false)
	d.drawn = true
	return engine.Running
}

// FitColumn shifts a spawn column left so that art of the given width stays
// on screen, never past column 1.
func FitColumn(col, width int) int {
	return min(max(1, col-width-1), col)
}

// DebrisSpawner drops new debris at the cadence the difficulty allows for the
// current year. While spawning is disabled it rechecks every tick.
type DebrisSpawner struct {
	armed     bool
	remaining int
}

// NewDebrisSpawner creates an idle spawner.
func NewDebrisSpawner() *DebrisSpawner {
	return &DebrisSpawner{}
}

// Step implements engine.Task. The spawner never completes.
func (s *DebrisSpawner) Step(w *engine.World) engine.Status {
	if s.armed {
		s.remaining--
		if s.remaining > 0 {
			return engine.Running
		}
		s.armed = false
		s.spawn(w)
	}

	if ticks, ok := w.Difficulty.Cadence(w.Year); ok {
		s.armed = true
		s.remaining = ticks
	}
	return engine.Running
}

func (s *DebrisSpawner) spawn(w *engine.World) {
	variants := w.Catalog.Debris()
	width := w.Screen.Width()
	if len(variants) == 0 || width < 3 {
		return
	}

	frame := variants[w.Rand.Intn(len(variants))]
	col := FitColumn(1+w.Rand.Intn(width-2), frame.Width)
	cfg := w.Config.Debris
	speed := cfg.MinSpeed + w.Rand.Float64()*cfg.SpeedJitter

	d := NewDebris(w, col, frame, speed)
	w.Spawn(d)
	w.Log.Debug("debris spawned", "obstacle", d.ID(), "frame", frame.Name, "col", col, "speed", speed, "year", w.Year)
}
