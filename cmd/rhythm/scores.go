package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rhythm/internal/registry"
	"github.com/vovakirdan/tui-rhythm/internal/storage"
)

var (
	flagRuns  int
	flagClear bool
	flagRunID string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and run history",
	Long: `Display the top 10 high scores and the latest runs for a mode
(default: campaign).

Examples:
  rhythm scores
  rhythm scores endless --runs 20
  rhythm scores campaign --clear
  rhythm scores --run 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score and run of the mode")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its ID")
}

func runScores(_ *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagRunID != "" {
		return printRun(os.Stdout, store, flagRunID)
	}

	if flagClear {
		if err := store.ClearScores(mode); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", mode)
		return nil
	}

	scores, err := store.TopScores(mode, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := mode
	for _, info := range registry.List() {
		if info.ID == mode {
			title = info.Title
		}
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rhythm play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level+1, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetRunStats(mode); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Completed: %d  Accuracy: %.0f%%  Best streak: %d\n",
			stats.Runs, stats.Completed, stats.Accuracy()*100, stats.BestStreak)
	}

	runs, err := store.RecentRuns(mode, flagRuns)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	for _, r := range runs {
		fmt.Printf("  %s  %-9s  score %-6d  levels %d  hits %d/%d  %ds  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Outcome, r.Score,
			r.LevelsCleared, r.TilesHit, r.TilesHit+r.Misses, r.Duration, r.RunID)
	}
	return nil
}

// printRun writes one run and how it compares with the mode's best score.
func printRun(w io.Writer, store *storage.Store, runID string) error {
	run, err := store.RunByID(runID)
	if err != nil {
		return fmt.Errorf("retrieving run: %w", err)
	}
	if run == nil {
		return fmt.Errorf("no run with ID %q", runID)
	}
	best, err := store.HighScore(run.Mode)
	if err != nil {
		return fmt.Errorf("retrieving high score: %w", err)
	}

	fmt.Fprintf(w, "Run %s (%s)\n", run.RunID, run.Mode)
	fmt.Fprintf(w, "  Played:   %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "  Outcome:  %s\n", run.Outcome)
	fmt.Fprintf(w, "  Score:    %d (best %d)\n", run.Score, best)
	fmt.Fprintf(w, "  Levels:   %d cleared from level %d\n", run.LevelsCleared, run.StartLevel+1)
	fmt.Fprintf(w, "  Hits:     %d/%d (%.0f%%)\n", run.TilesHit, run.TilesHit+run.Misses, run.Accuracy()*100)
	fmt.Fprintf(w, "  Streak:   %d\n", run.BestStreak)
	fmt.Fprintf(w, "  Duration: %ds\n", run.Duration)
	return nil
}
