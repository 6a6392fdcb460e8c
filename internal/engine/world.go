// Package engine runs the cooperative animation tasks.
//
// Every task is an explicit state machine stepped exactly once per frame, in
// registration order, against a single shared World. There is no
// preemption and no locking: the scheduler is single-threaded and only the
// driver sleeps.
package engine

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/obstacle"
	"github.com/vovakirdan/space-garbage/internal/sprites"
)

// Status is the result of a single task step.
type Status int

const (
	Running Status = iota
	Done
)

func (s Status) String() string {
	if s == Done {
		return "done"
	}
	return "running"
}

// Task is one cooperative animation. Step does one tick of work and must
// never block.
type Task interface {
	Step(w *World) Status
}

// TaskFunc adapts a function to the Task interface.
type TaskFunc func(w *World) Status

// Step implements Task.
func (f TaskFunc) Step(w *World) Status {
	return f(w)
}

// Ship is the player's ship. X and Y are the top-left corner of its sprite.
type Ship struct {
	X, Y   int
	VX, VY int
	W, H   int
	Alive  bool
	Firing bool
}

// NewShip places a live ship with the given sprite size.
func NewShip(x, y, w, h int) *Ship {
	return &Ship{X: x, Y: y, W: w, H: h, Alive: true}
}

// Bounds implements core.BoundingBox.
func (s *Ship) Bounds() core.Rect {
	return core.NewRect(s.X, s.Y, s.W, s.H)
}

// Position implements physics.Body.
func (s *Ship) Position() (int, int) { return s.X, s.Y }

// Velocity implements physics.Body.
func (s *Ship) Velocity() (int, int) { return s.VX, s.VY }

// Move implements physics.Body.
func (s *Ship) Move(x, y, vx, vy int) {
	s.X, s.Y, s.VX, s.VY = x, y, vx, vy
}

// World is the state shared by every task.
type World struct {
	Screen     *core.Screen
	Obstacles  *obstacle.Registry
	Ship       *Ship // nil when the mode has no ship
	Catalog    *sprites.Catalog
	Config     config.Config
	Difficulty *config.DifficultyManager
	Rand       *rand.Rand
	Log        *log.Logger

	Year  int
	Tick  int
	Score int

	spawned []Task
}

// NewWorld creates a world for a screen of the given size. The logger may be
// nil, in which case log output is discarded.
func NewWorld(rc core.RuntimeConfig, cfg config.Config, catalog *sprites.Catalog, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &World{
		Screen:     core.NewScreen(rc.ScreenW, rc.ScreenH),
		Obstacles:  obstacle.NewRegistry(),
		Catalog:    catalog,
		Config:     cfg,
		Difficulty: config.NewDifficultyManager(cfg.Difficulty, cfg.Weapon.UnlockYear),
		Rand:       rand.New(rand.NewSource(rc.Seed)),
		Log:        logger,
		Year:       cfg.Timing.StartYear,
	}
}

// Spawn queues a task. It joins the live list after the current pass and
// takes its first step on the next frame.
func (w *World) Spawn(t Task) {
	w.spawned = append(w.spawned, t)
}

// Field returns the whole playfield, border included.
func (w *World) Field() core.Rect {
	return w.Screen.Bounds()
}

// Border returns the border width in cells.
func (w *World) Border() int {
	return w.Config.Field.Border
}

// ShipAlive reports whether there is a ship and it has not crashed.
func (w *World) ShipAlive() bool {
	return w.Ship != nil && w.Ship.Alive
}

// GameOver reports whether the ship has crashed.
func (w *World) GameOver() bool {
	return w.Ship != nil && !w.Ship.Alive
}

func (w *World) takeSpawned() []Task {
	s := w.spawned
	w.spawned = nil
	return s
}
