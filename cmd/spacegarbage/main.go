// spacegarbage is a terminal arcade: steer a ship through falling space
// debris while the years tick by from the launch of the first satellite.
//
// Usage:
//
//	spacegarbage play [mode]     - Play a mode (default: orbit)
//	spacegarbage list            - List available modes
//	spacegarbage menu            - Pick modes interactively
//	spacegarbage serve           - Start SSH server for remote play
//	spacegarbage frames [dir]    - Validate and describe an art directory
//	spacegarbage config          - Print the default configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Custom YAML config
//	--frames <dir>        - Load art from a directory instead of the built-in set
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write structured logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/game"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagFrames     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacegarbage",
	Short: "Space Garbage - dodge orbital debris in your terminal",
	Long: `Space Garbage is a terminal arcade game. Your ship drifts through a
field of twinkling stars while debris from decades of launches falls from
orbit. From 2020 on, the ship's gun can clear a path.

Available commands:
  play     - Play a mode directly
  list     - Show all modes
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  frames   - Validate an art directory
  config   - Print the default configuration

Examples:
  spacegarbage play
  spacegarbage play flight --backend tcell
  spacegarbage play orbit --difficulty hard --seed 42
  spacegarbage serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagFrames, "frames", "", "Directory of art frames (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGameFlags hands the global flags to the game package and returns the
// loaded configuration.
func applyGameFlags() (config.Config, error) {
	game.SetConfigPath(flagConfig)
	game.SetFramesDir(flagFrames)
	if err := game.SetDifficultyPreset(flagDifficulty); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	// Fail before the terminal switches to the alternate screen.
	if _, err := game.LoadCatalog(flagFrames); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// terminalConfig returns a runtime config sized to the terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
