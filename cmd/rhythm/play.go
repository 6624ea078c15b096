package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/game"
	"github.com/vovakirdan/tui-rhythm/internal/platform/tui"
	"github.com/vovakirdan/tui-rhythm/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode directly",
	Long: `Start playing the given mode (default: campaign).

Modes:
  campaign  - Clear every level once
  endless   - Levels repeat, each lap a little faster

Controls:
  Space/Enter/Click  - Release the pointer
  P                  - Pause
  R                  - Restart
  Esc/B              - Back
  Ctrl+S             - Screenshot
  Q/Ctrl+C           - Quit

Difficulty options (each turns speed progression on, except fixed):
  easy    - 4 deg/tick, ramps up from the base speed, gentle lap bonus
  normal  - Configured speed, ramp starts 30% of the way up
  hard    - 6 deg/tick, ramp starts 70% of the way up, steep lap bonus
  fixed   - Configured speed, no progression
Without --difficulty the config file's difficulty section is used as written.

Examples:
  rhythm play
  rhythm play endless --difficulty hard
  rhythm play campaign --level 3
  rhythm play --levels ./my-levels --config ./my-rhythm.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start from (1-based)")
}

// modeArg returns the mode named by args, defaulting to the campaign.
func modeArg(args []string) (string, error) {
	mode := game.ModeCampaign
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return "", fmt.Errorf("unknown mode %q, run 'rhythm list' to see available modes", mode)
	}
	return mode, nil
}

// terminalConfig builds the runtime config from the terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

func runPlay(_ *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}
	setup, err := loadSetup()
	if err != nil {
		return err
	}

	cfg := terminalConfig()
	cfg.StartLevel = flagLevel - 1

	g, err := registry.Create(mode, setup)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(g, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
