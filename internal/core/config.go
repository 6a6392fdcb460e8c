package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Year      int  // Simulated year shown to the player
	Tick      int  // Frames simulated so far
	Score     int  // Debris destroyed by projectiles
	GameOver  bool // The ship has collided with debris
	LiveTasks int  // Animation tasks still scheduled
	Finished  bool // No live tasks remain; the run is over
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
