// rhythm is a one-button timing game for the terminal. A pointer orbits a
// hub; press when it points the way the next tile goes.
//
// Usage:
//
//	rhythm menu              - Pick a mode and level interactively
//	rhythm play [mode]       - Play a mode directly (campaign, endless)
//	rhythm window [mode]     - Play in a desktop window
//	rhythm list              - List modes and levels
//	rhythm levels            - Inspect or export level files
//	rhythm scores [mode]     - Show high scores and run history
//	rhythm serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.rhythm/rhythm.db)
//	--config <path>      - Use a custom rhythm.yaml
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--levels <dir>       - Load levels from a directory instead of the campaign
//	--debug              - Log hit and miss diagnostics
//	--log <path>         - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/registry"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm/levels"
	"github.com/vovakirdan/tui-rhythm/internal/storage"

	// Register game modes
	_ "github.com/vovakirdan/tui-rhythm/internal/game"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagDebug      bool
	flagLogPath    string
)

var (
	logger  = log.Default()
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rhythm",
	Short: "Rhythm - a one-button timing game in your terminal",
	Long: `Rhythm is a timing game played with a single input.

A pointer orbits the hub. Each tile of the path says which way the path goes
next. Press Space, Enter or click while the pointer faces that way to move on.
Clear every tile of a level to reach the next one.

Available commands:
  menu     - Interactive mode and level picker
  play     - Play a mode directly
  window   - Play in a desktop window
  list     - Show modes and levels
  levels   - Inspect, check or export level files
  scores   - View high scores and run history
  serve    - Start SSH server for remote play

Examples:
  rhythm menu
  rhythm play campaign --level 3
  rhythm play endless --difficulty hard
  rhythm window
  rhythm serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rhythm.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in campaign)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log hit and miss diagnostics")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogging points the default logger at --log. Without a log file the
// terminal frontends would garble their screen, so only warnings reach stderr.
func setupLogging(_ *cobra.Command, _ []string) error {
	var out io.Writer = os.Stderr
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "rhythm",
	})
	switch {
	case flagDebug:
		logger.SetLevel(log.DebugLevel)
	case flagLogPath != "":
		logger.SetLevel(log.InfoLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}
	log.SetDefault(logger)
	return nil
}

// loadSetup reads the config, applies the difficulty preset and loads levels.
// A broken level file is fatal.
func loadSetup() (registry.Setup, error) {
	cfg, source, err := config.LoadRhythmFrom(flagConfig)
	if err != nil {
		return registry.Setup{}, err
	}
	logger.Debug("config loaded", "source", source)

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return registry.Setup{}, fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyRhythmPreset(&cfg, preset)
	}

	loader := levels.Open(flagLevels)
	loader.SetLogger(logger.WithPrefix("levels"))
	lvls, err := loader.LoadAll()
	if err != nil {
		return registry.Setup{}, err
	}
	logger.Info("levels loaded", "count", len(lvls), "dir", flagLevels)

	return registry.Setup{Levels: lvls, Config: cfg}, nil
}

// openStore opens the scores database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
