package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rhythm/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List modes and levels",
	Long:  `Shows every game mode and the levels that will be played.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	modes := registry.List()

	fmt.Println("Modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Description)
	}
	fmt.Println()

	setup, err := loadSetup()
	if err != nil {
		return err
	}
	printLevels(setup.Levels)

	fmt.Println()
	fmt.Println("Run 'rhythm play <id>' to play a mode.")
	return nil
}
