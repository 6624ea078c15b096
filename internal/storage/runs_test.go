package storage

import (
	"testing"

	"github.com/google/uuid"
)

func TestSaveRunAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{
		Mode:          "campaign",
		LevelsCleared: 2,
		TilesHit:      15,
		Misses:        5,
		BestStreak:    9,
		Score:         340,
		Outcome:       OutcomeCompleted,
		Duration:      61,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("run ID %q is not a UUID: %v", id, err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("run not found")
	}
	if run.Score != 340 || run.TilesHit != 15 || run.Outcome != OutcomeCompleted || run.Duration != 61 {
		t.Errorf("unexpected run: %+v", run)
	}
	if run.Accuracy() != 0.75 {
		t.Errorf("Accuracy() = %g, expected 0.75", run.Accuracy())
	}
}

func TestSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	want := uuid.NewString()

	got, err := store.SaveRun(RunRecord{RunID: want, Mode: "endless"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != want {
		t.Errorf("run ID = %q, expected %q", got, want)
	}

	// Same ID twice violates the unique constraint
	if _, err := store.SaveRun(RunRecord{RunID: want, Mode: "endless"}); err == nil {
		t.Error("duplicate run ID should fail")
	}

	run, _ := store.RunByID(want)
	if run == nil || run.Outcome != OutcomeQuit {
		t.Errorf("empty outcome should default to quit: %+v", run)
	}
}

func TestRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	run, err := store.RunByID("nope")
	if err != nil || run != nil {
		t.Errorf("RunByID(missing) = %v, %v", run, err)
	}
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{Mode: "campaign", Score: i})
	}
	store.SaveRun(RunRecord{Mode: "endless", Score: 99})

	runs, err := store.RecentRuns("campaign", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	// Newest first
	if runs[0].Score != 4 || runs[2].Score != 2 {
		t.Errorf("runs out of order: %v", runs)
	}

	all, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 6 || all[0].Mode != "endless" {
		t.Errorf("unfiltered runs = %v", all)
	}
}

func TestRunStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Mode: "campaign", TilesHit: 10, Misses: 10, BestStreak: 4, Outcome: OutcomeCompleted, Duration: 30})
	store.SaveRun(RunRecord{Mode: "campaign", TilesHit: 20, Misses: 0, BestStreak: 20, Outcome: OutcomeQuit, Duration: 15})

	stats, err := store.GetRunStats("campaign")
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	want := RunStats{Mode: "campaign", Runs: 2, Completed: 1, TilesHit: 30, Misses: 10, BestStreak: 20, TotalDuration: 45}
	if *stats != want {
		t.Errorf("stats = %+v, expected %+v", *stats, want)
	}
	if stats.Accuracy() != 0.75 {
		t.Errorf("Accuracy() = %g", stats.Accuracy())
	}

	empty, err := store.GetRunStats("endless")
	if err != nil || empty.Runs != 0 || empty.Accuracy() != 0 {
		t.Errorf("empty stats = %+v, %v", empty, err)
	}
}
