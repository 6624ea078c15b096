package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rhythm/internal/game"
	"github.com/vovakirdan/tui-rhythm/internal/platform/desktop"
	"github.com/vovakirdan/tui-rhythm/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window with the classic look: red tile outlines and a
black hub and pointer on white.

Controls:
  Space/Enter/Left click  - Release the pointer
  P                       - Pause
  R                       - Restart
  Esc/Q                   - Quit

Examples:
  rhythm window
  rhythm window endless --width 1280 --height 720`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 800, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 600, "Window height in pixels")
	windowCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start from (1-based)")
}

func runWindow(_ *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}
	setup, err := loadSetup()
	if err != nil {
		return err
	}

	created, err := registry.Create(mode, setup)
	if err != nil {
		return err
	}
	g, ok := created.(*game.Game)
	if !ok {
		return fmt.Errorf("mode %q cannot run in a window", mode)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := desktop.DefaultOptions()
	opts.Width = flagWidth
	opts.Height = flagHeight
	opts.TickRate = flagFPS
	opts.StartLevel = flagLevel - 1
	opts.Title = "Rhythm - " + g.Title()
	return desktop.Run(g, store, opts, logger.WithPrefix("desktop"))
}
