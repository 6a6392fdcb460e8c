package engine

import (
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/physics"
)

// Scheduler advances the world one frame at a time.
type Scheduler struct {
	world      *World
	tasks      []Task
	integrator physics.Integrator
}

// NewScheduler creates a scheduler for w with no tasks.
func NewScheduler(w *World) *Scheduler {
	return &Scheduler{
		world:      w,
		integrator: physics.NewIntegrator(w.Config.Ship.Acceleration, w.Border()),
	}
}

// World returns the shared world.
func (s *Scheduler) World() *World {
	return s.world
}

// Add registers a task at the end of the live list.
func (s *Scheduler) Add(t Task) {
	s.tasks = append(s.tasks, t)
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// RunFrame simulates one tick: ship physics, border, one step of every live
// task in registration order, then the year clock. A panicking task is a
// programming error and takes the whole loop down.
func (s *Scheduler) RunFrame(in core.Controls) core.StepResult {
	w := s.world

	if w.ShipAlive() {
		ship := w.Ship
		ship.Firing = in.Fire && w.Difficulty.FireAllowed(w.Year)
		s.integrator.Apply(ship, in, w.Field(), ship.W, ship.H)
	}

	if w.Border() > 0 {
		w.Screen.DrawBox(w.Field())
	}

	wasOver := w.GameOver()

	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Step(w) == Running {
			live = append(live, t)
		}
	}
	// Clear the tail so finished tasks can be collected.
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live

	if spawned := w.takeSpawned(); len(spawned) > 0 {
		s.tasks = append(s.tasks, spawned...)
	}

	if !wasOver && w.GameOver() {
		w.Log.Info("ship destroyed", "year", w.Year, "tick", w.Tick, "score", w.Score)
	}

	w.Tick++
	if !w.GameOver() && w.Tick%w.Config.Timing.TicksPerYear == 0 {
		w.Year++
		w.Log.Debug("year advanced", "year", w.Year, "tasks", len(s.tasks), "obstacles", w.Obstacles.Len())
	}

	return core.StepResult{State: s.State()}
}

// State returns a snapshot of the game state.
func (s *Scheduler) State() core.GameState {
	w := s.world
	return core.GameState{
		Year:      w.Year,
		Tick:      w.Tick,
		Score:     w.Score,
		GameOver:  w.GameOver(),
		LiveTasks: len(s.tasks),
		Finished:  len(s.tasks) == 0,
	}
}
