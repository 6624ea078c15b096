package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rhythm/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	store.SaveScore("campaign", 420, 2)
	store.SaveRun(storage.RunRecord{
		Mode: "campaign", LevelsCleared: 3, TilesHit: 9, Misses: 1,
		BestStreak: 7, Score: 420, Outcome: storage.OutcomeCompleted, Duration: 75,
	})
	store.SaveRun(storage.RunRecord{Mode: "endless", TilesHit: 2, Misses: 2, Score: 20, Outcome: storage.OutcomeQuit})
	return store
}

func sbUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sb
}

func TestScoreboardShowsScoresAndRuns(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), 120, 40)

	if m.ModeID() != "campaign" {
		t.Fatalf("first mode = %q", m.ModeID())
	}
	view := m.View()
	for _, want := range []string{"420", "completed", "9/10", "90%", "1:15", "Accuracy: 90%", "Avg score: 420"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardSwitchesMode(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), 120, 40)

	m = sbUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ModeID() != "endless" {
		t.Fatalf("tab should switch to endless, got %q", m.ModeID())
	}
	if len(m.scores) != 0 || len(m.runs) != 1 || m.runs[0].Outcome != storage.OutcomeQuit {
		t.Errorf("endless data not loaded: scores=%v runs=%v", m.scores, m.runs)
	}

	m = sbUpdate(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.ModeID() != "campaign" {
		t.Errorf("shift+tab should wrap back, got %q", m.ModeID())
	}
}

func TestScoreboardPaneFocusAndLayout(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), 120, 40)
	if !m.scoreView.Focused() || m.runView.Focused() {
		t.Fatal("scores pane should start focused")
	}

	m = sbUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.pane != paneRuns || !m.runView.Focused() {
		t.Error("right should focus the runs pane")
	}

	m = sbUpdate(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	if m.sideBySide() {
		t.Error("narrow window should stack the panes")
	}
	if !m.runView.Focused() {
		t.Error("resize should keep the focused pane")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No scores yet") {
		t.Error("empty scoreboard should say so")
	}

	m = sbUpdate(t, m, runeKey("b"))
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("b should go back, not quit")
	}
}
