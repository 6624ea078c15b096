package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm/levels"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm/levels/formats"
)

// previewTiles is how many directions the level table shows.
const previewTiles = 8

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect, check or export level files",
	Long: `Show the levels that will be played (the built-in campaign, or --levels).

Level files are named 0.yaml, 1.yaml, ... (.yml and .json work too) and are
loaded in order until the first missing index. Each file is either a bare
list of tiles or a document with a name and speed:

  name: Turns
  speed: 6
  tiles:
    - next_dir: Right
    - next_dir: Up

Examples:
  rhythm levels
  rhythm levels check ./my-levels
  rhythm levels export ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Validate a directory of level files",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsCheck,
}

var levelsExportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write the current levels as YAML documents",
	Long: `Write every level as <dir>/<index>.yaml. Exporting the built-in campaign
is a good starting point for custom levels.`,
	Args: cobra.ExactArgs(1),
	RunE: runLevelsExport,
}

func init() {
	levelsCmd.AddCommand(levelsCheckCmd)
	levelsCmd.AddCommand(levelsExportCmd)
}

func runLevels(_ *cobra.Command, _ []string) error {
	setup, err := loadSetup()
	if err != nil {
		return err
	}
	printLevels(setup.Levels)
	return nil
}

// printLevels writes a table of levels to stdout.
func printLevels(lvls []rhythm.Level) {
	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-20s  %-5s  %-5s  %s\n", "#", "Name", "Tiles", "Speed", "Path")
	fmt.Printf("  %-3s  %-20s  %-5s  %-5s  %s\n", "-", "----", "-----", "-----", "----")
	for i, l := range lvls {
		speed := "-"
		if l.Speed > 0 {
			speed = strconv.FormatFloat(l.Speed, 'g', -1, 64)
		}
		fmt.Printf("  %-3d  %-20s  %-5d  %-5s  %s\n", i+1, l.Name, len(l.Tiles), speed, preview(l))
	}
}

// preview abbreviates the first tiles of a level, e.g. "R R U L ...".
func preview(l rhythm.Level) string {
	var parts []string
	for i, d := range l.Directions() {
		if i == previewTiles {
			parts = append(parts, "...")
			break
		}
		parts = append(parts, d.String()[:1])
	}
	return strings.Join(parts, " ")
}

func runLevelsCheck(_ *cobra.Command, args []string) error {
	loader := levels.NewDirLoader(args[0])
	loader.SetLogger(logger.WithPrefix("levels"))

	lvls, err := loader.LoadAll()
	if err != nil {
		return err
	}

	tiles := 0
	for _, l := range lvls {
		tiles += len(l.Tiles)
	}
	fmt.Printf("OK: %d levels, %d tiles\n", len(lvls), tiles)
	return nil
}

func runLevelsExport(_ *cobra.Command, args []string) error {
	setup, err := loadSetup()
	if err != nil {
		return err
	}

	dir := args[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}

	for i, l := range setup.Levels {
		data, err := formats.Encode(l)
		if err != nil {
			return fmt.Errorf("encoding level %d: %w", i, err)
		}
		path := filepath.Join(dir, strconv.Itoa(i)+".yaml")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("cannot write %s: %w", path, err)
		}
	}

	fmt.Printf("Wrote %d levels to %s\n", len(setup.Levels), dir)
	return nil
}
