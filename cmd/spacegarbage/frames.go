package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/sprites"
)

var flagShowArt bool

var framesCmd = &cobra.Command{
	Use:   "frames [dir]",
	Short: "Validate an art directory and list its frames",
	Long: `Load every frame kind (ship, debris, explosion, banner) from dir, or
from the built-in art when dir is omitted, and print each frame's size.

A directory is valid when each kind has at least one .txt file, every file
is UTF-8 and none contains control characters.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFrames,
}

func init() {
	framesCmd.Flags().BoolVar(&flagShowArt, "art", false, "Print the art of every frame")
}

func runFrames(_ *cobra.Command, args []string) error {
	dir := flagFrames
	if len(args) == 1 {
		dir = args[0]
	}

	var (
		catalog *sprites.Catalog
		err     error
	)
	if dir == "" {
		catalog, err = sprites.Default()
	} else {
		catalog, err = sprites.LoadDir(dir)
	}
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KIND", "FRAME", "WIDTH", "HEIGHT")
	for _, kind := range sprites.Kinds {
		for _, f := range catalog.Frames(kind) {
			t.Row(string(kind), f.Name, strconv.Itoa(f.Width), strconv.Itoa(f.Height))
		}
	}
	fmt.Println(t)

	w, h := catalog.ShipSize()
	fmt.Printf("Ship bounding box: %dx%d\n", w, h)

	if flagShowArt {
		for _, kind := range sprites.Kinds {
			for _, f := range catalog.Frames(kind) {
				fmt.Printf("\n%s/%s\n%s\n", kind, f.Name, f.Art)
			}
		}
	}
	return nil
}
