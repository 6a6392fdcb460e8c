package tcellterm

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/registry"
)

// statusHeight is the number of rows below the playfield.
const statusHeight = 1

// sizer reports the terminal size.
type sizer interface {
	Size() (width, height int)
}

// session adapts a game to engine.Stepper, rebuilding the world on restart
// or after the terminal was resized.
type session struct {
	game    registry.Game
	screen  sizer
	latch   *Latch
	seed    int64
	logger  *log.Logger
	resized atomic.Bool
	err     error
}

// reset builds a fresh world for the current screen size.
func (s *session) reset() error {
	w, h := s.screen.Size()
	cfg := core.RuntimeConfig{
		ScreenW: w,
		ScreenH: max(h-statusHeight, 0),
		Seed:    s.seed,
	}
	if err := s.game.Reset(cfg); err != nil {
		return err
	}
	s.logger.Debug("world reset", "width", cfg.ScreenW, "height", cfg.ScreenH)
	return nil
}

// Step implements engine.Stepper.
func (s *session) Step(in core.Controls) core.StepResult {
	restart := s.latch.TakeRestart() && s.game.State().GameOver
	if s.resized.Swap(false) || restart {
		if restart {
			s.seed = time.Now().UnixNano()
		}
		if err := s.reset(); err != nil {
			s.err = err
			return core.StepResult{State: core.GameState{Finished: true}}
		}
	}
	return s.game.Step(in)
}

// Run plays game on the terminal until the player quits or the game
// finishes. Screen sizes are taken from the terminal; the last row is the
// status line.
func Run(ctx context.Context, game registry.Game, seed int64, delay time.Duration, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	defer screen.Fini()

	return run(ctx, screen, game, seed, delay, logger)
}

func run(ctx context.Context, screen tcell.Screen, game registry.Game, seed int64, delay time.Duration, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s := &session{
		game:   game,
		screen: screen,
		latch:  &Latch{},
		seed:   seed,
		logger: logger,
	}
	if err := s.reset(); err != nil {
		return err
	}

	go func() {
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case nil:
				return
			case *tcell.EventKey:
				s.latch.HandleKey(ev)
				if s.latch.Quit() {
					cancel()
					return
				}
			case *tcell.EventResize:
				screen.Sync()
				s.resized.Store(true)
			}
		}
	}()

	buf := core.NewScreen(0, 0)
	present := func(res core.StepResult) {
		game.Render(buf)
		Blit(screen, buf)
		w, _ := screen.Size()
		drawStatus(screen, buf.Height(), w, res.State)
		screen.Show()
	}

	err := engine.Run(ctx, s, s.latch, present, delay)
	if s.err != nil {
		return s.err
	}
	if errors.Is(err, context.Canceled) && s.latch.Quit() {
		return nil
	}
	return err
}
