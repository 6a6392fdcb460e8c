package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/game"
	"github.com/vovakirdan/space-garbage/internal/platform/tui"
	"github.com/vovakirdan/space-garbage/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick modes from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Q/Esc        - Quit`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()
	game.SetLogger(logger)

	gameCfg, err := applyGameFlags()
	if err != nil {
		return err
	}

	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}

		g, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}
		logger.Info("starting", "mode", result.GameID)
		if err := tui.Run(g, cfg, gameCfg.Timing.FrameDelay()); err != nil {
			return err
		}
	}
}
