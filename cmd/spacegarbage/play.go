package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/game"
	"github.com/vovakirdan/space-garbage/internal/platform/tcellterm"
	"github.com/vovakirdan/space-garbage/internal/platform/tui"
	"github.com/vovakirdan/space-garbage/internal/registry"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (orbit when omitted).

Modes:
  orbit   - Dodge falling debris; the gun unlocks in 2020
  flight  - Fly freely under the stars, no debris
  sky     - Just the starry sky

Controls:
  Arrows/WASD/hjkl - Thrust (the ship keeps drifting)
  Space            - Fire (from 2020)
  R                - Restart (after game over)
  Ctrl+S           - Screenshot (tea backend)
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Debris eras start five years later
  normal - Historical schedule
  hard   - Debris eras start five years earlier
  fixed  - The first era's cadence forever

Examples:
  spacegarbage play
  spacegarbage play orbit --difficulty hard
  spacegarbage play flight --backend tcell
  spacegarbage play --frames ./my-art --config ./my.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Terminal backend: tea or tcell")
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID := game.Orbit.ID
	if len(args) == 1 {
		modeID = args[0]
	}
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q (run 'spacegarbage list' to see available modes)", modeID)
	}

	logger, closeLog, err := openLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()
	game.SetLogger(logger)

	cfg, err := applyGameFlags()
	if err != nil {
		return err
	}

	g, err := registry.Create(modeID)
	if err != nil {
		return err
	}

	logger.Info("starting", "mode", modeID, "backend", flagBackend, "seed", flagSeed)

	switch flagBackend {
	case "tea":
		return tui.Run(g, terminalConfig(), cfg.Timing.FrameDelay())
	case "tcell":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return tcellterm.Run(ctx, g, flagSeed, cfg.Timing.FrameDelay(), logger)
	default:
		return fmt.Errorf("unknown backend %q (expected tea or tcell)", flagBackend)
	}
}
