package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
	"github.com/vovakirdan/tui-rhythm/internal/storage"
)

func TestModeArg(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{nil, "campaign", false},
		{[]string{"endless"}, "endless", false},
		{[]string{"tetris"}, "", true},
	}

	for _, tt := range tests {
		got, err := modeArg(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("modeArg(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("modeArg(%v) = %q, expected %q", tt.args, got, tt.want)
		}
	}
}

func TestLoadSetup(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	defer func() { flagDifficulty, flagLevels = "", "" }()

	setup, err := loadSetup()
	if err != nil {
		t.Fatalf("built-in campaign should load: %v", err)
	}
	if len(setup.Levels) == 0 {
		t.Fatal("expected campaign levels")
	}

	flagDifficulty = "impossible"
	if _, err := loadSetup(); err == nil {
		t.Error("expected error for unknown difficulty")
	}

	flagDifficulty = ""
	flagLevels = t.TempDir()
	if _, err := loadSetup(); err == nil {
		t.Error("expected error for a directory without levels")
	}
}

func TestLevelsExportRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := filepath.Join(t.TempDir(), "out")

	if err := runLevelsExport(nil, []string{dir}); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "0.yaml")); err != nil {
		t.Fatalf("0.yaml not written: %v", err)
	}
	if err := runLevelsCheck(nil, []string{dir}); err != nil {
		t.Errorf("exported levels do not load: %v", err)
	}
}

func TestPreview(t *testing.T) {
	l := rhythm.NewLevel("x", rhythm.Right, rhythm.Up, rhythm.Left)
	if got := preview(l); got != "R U L" {
		t.Errorf("preview = %q", got)
	}

	long := rhythm.NewLevel("y", make([]rhythm.Direction, 12)...)
	if got := preview(long); got != "U U U U U U U U ..." {
		t.Errorf("preview = %q", got)
	}
}

func TestPort(t *testing.T) {
	if got := port(":23234"); got != "23234" {
		t.Errorf("port = %q", got)
	}
	if got := port("bad"); got != "bad" {
		t.Errorf("port = %q", got)
	}
}

func TestPrintRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	store.SaveScore("campaign", 500, 3)
	id, err := store.SaveRun(storage.RunRecord{
		Mode: "campaign", LevelsCleared: 2, TilesHit: 3, Misses: 1,
		Score: 300, Outcome: storage.OutcomeQuit, Duration: 42,
	})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := printRun(&out, store, id); err != nil {
		t.Fatalf("printRun failed: %v", err)
	}
	for _, want := range []string{id, "300 (best 500)", "3/4 (75%)", "42s"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	if err := printRun(&out, store, "missing"); err == nil {
		t.Error("expected error for an unknown run")
	}
}
