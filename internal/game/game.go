// Package game assembles the engine, the animation tasks and the loaded art
// into playable modes and registers them with the mode registry.
package game

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garbage/internal/anim"
	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/physics"
	"github.com/vovakirdan/space-garbage/internal/registry"
	"github.com/vovakirdan/space-garbage/internal/sprites"
)

// Mode selects which tasks a game runs.
type Mode struct {
	ID     string
	Title  string
	Ship   bool // player ship, fire control and year label
	Debris bool // debris spawner and game-over banner
}

// Built-in modes.
var (
	Orbit  = Mode{ID: "orbit", Title: "Space Garbage", Ship: true, Debris: true}
	Flight = Mode{ID: "flight", Title: "Free Flight", Ship: true}
	Sky    = Mode{ID: "sky", Title: "Starry Sky"}
)

func init() {
	for _, m := range []Mode{Orbit, Flight, Sky} {
		m := m
		registry.Register(m.ID, func() registry.Game { return New(m) })
	}
}

var (
	settingsMu       sync.RWMutex
	configPath       string
	framesDir        string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)

	catalogMu    sync.Mutex
	catalogCache = make(map[string]*sprites.Catalog)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetFramesDir loads art from dir instead of the embedded frames.
func SetFramesDir(dir string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	framesDir = dir
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) error {
	p, ok := config.ParsePreset(preset)
	if !ok {
		return fmt.Errorf("game: unknown difficulty %q", preset)
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = p
	return nil
}

// SetLogger sets the logger handed to every new world.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	logger = l
}

// LoadCatalog returns the art for dir, or the embedded art when dir is
// empty. Each catalog is loaded once per process and shared read-only.
func LoadCatalog(dir string) (*sprites.Catalog, error) {
	catalogMu.Lock()
	defer catalogMu.Unlock()

	if c, ok := catalogCache[dir]; ok {
		return c, nil
	}

	var (
		c   *sprites.Catalog
		err error
	)
	if dir == "" {
		c, err = sprites.Default()
	} else {
		c, err = sprites.LoadDir(dir)
	}
	if err != nil {
		return nil, err
	}
	catalogCache[dir] = c
	return c, nil
}

// Game implements registry.Game for one mode.
type Game struct {
	mode  Mode
	world *engine.World
	sched *engine.Scheduler
}

// New creates a game for a mode. Reset must be called before Step.
func New(m Mode) *Game {
	return &Game{mode: m}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.mode.Title
}

// Config returns the configuration of the current world.
func (g *Game) Config() config.Config {
	if g.world == nil {
		return config.Default()
	}
	return g.world.Config
}

// Reset builds a fresh world and registers the mode's tasks.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	settingsMu.RLock()
	path, dir, preset, lg := configPath, framesDir, difficultyPreset, logger
	settingsMu.RUnlock()

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	catalog, err := LoadCatalog(dir)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	w := engine.NewWorld(runtime, cfg, catalog, lg.With("mode", g.mode.ID))
	sched := engine.NewScheduler(w)
	g.world, g.sched = w, sched

	border := cfg.Field.Border
	for _, star := range anim.GenerateStars(w.Rand, w.Field(), border, cfg.Stars) {
		sched.Add(star)
	}

	if g.mode.Ship {
		sw, sh := catalog.ShipSize()
		x := (runtime.ScreenW - 1 - border) / 2
		y := (runtime.ScreenH - 1 - border) / 2
		// Start inside the field even on small terminals.
		x, y = physics.ClampPosition(x, y, w.Field(), border, sw, sh)
		w.Ship = engine.NewShip(x, y, sw, sh)

		sched.Add(anim.NewShipRender(catalog.Ship(), cfg.Ship.FrameHold))
	}
	if g.mode.Debris {
		sched.Add(anim.NewDebrisSpawner())
	}
	if g.mode.Ship {
		sched.Add(anim.NewFireControl())
	}
	if g.mode.Debris {
		sched.Add(anim.NewGameOverBanner(catalog.Banner()))
	}
	if g.mode.Ship {
		sched.Add(anim.NewYearTicker())
	}

	w.Log.Debug("world ready",
		"width", runtime.ScreenW, "height", runtime.ScreenH,
		"seed", runtime.Seed, "tasks", sched.Len(), "preset", string(preset))
	return nil
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.Controls) core.StepResult {
	if g.sched == nil {
		return core.StepResult{State: core.GameState{Finished: true}}
	}
	return g.sched.RunFrame(in)
}

// Render copies the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		return
	}
	dst.CopyFrom(g.world.Screen)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sched == nil {
		return core.GameState{}
	}
	return g.sched.State()
}

// World exposes the running world for inspection.
func (g *Game) World() *engine.World {
	return g.world
}
