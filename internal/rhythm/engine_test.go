package rhythm

import (
	"testing"
)

// ticksUntil steps the engine without triggering until the pointer faces
// inside dir's window, then returns the number of ticks taken.
func ticksUntil(t *testing.T, e *Engine, dir Direction) int {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if dir.Window().Contains(e.Head().Facing().Degrees()) {
			return i
		}
		e.Step(false)
	}
	t.Fatalf("pointer never reached the %v window", dir)
	return 0
}

func TestEngineMissDoesNotMove(t *testing.T) {
	e := NewEngine(newTestState(), DefaultGeometry())

	// Default facing 270 is outside Right's window
	out := e.Step(true)

	if out.Hit() {
		t.Fatal("trigger at 270 should miss Right")
	}
	if e.Head().Pos != (Position{}) {
		t.Errorf("hub moved on a miss: %+v", e.Head().Pos)
	}
	if e.Tick() != 1 {
		t.Errorf("Tick() = %d, kinematics must run on a miss", e.Tick())
	}
}

func TestEngineHitMovesHub(t *testing.T) {
	e := NewEngine(newTestState(), DefaultGeometry())

	ticksUntil(t, e, Right)
	out := e.Step(true)

	if out.Kind != OutcomeMove {
		t.Fatalf("Kind = %v, expected move", out.Kind)
	}
	if e.Head().Pos != (Position{X: 75}) {
		t.Errorf("hub = %+v, expected (75, 0)", e.Head().Pos)
	}
	// Reseeded to Right + 180, then rotated once
	want := Right.Angle().Add(180).Sub(DefaultSpeed).Degrees()
	if got := e.Head().Facing().Degrees(); got != want {
		t.Errorf("Facing() = %v, expected %v", got, want)
	}
}

func TestEnginePlaysThroughCampaign(t *testing.T) {
	e := NewEngine(newTestState(), DefaultGeometry())

	var outcomes []OutcomeKind
	for !e.State().Finished() {
		tile, ok := e.State().ActiveTile()
		if !ok {
			t.Fatal("no active tile before finishing")
		}
		ticksUntil(t, e, tile.Next)
		out := e.Step(true)
		if !out.Hit() {
			t.Fatalf("trigger inside the %v window missed", tile.Next)
		}
		outcomes = append(outcomes, out.Kind)
	}

	expected := []OutcomeKind{
		OutcomeMove, OutcomeMove, OutcomeLevelComplete,
		OutcomeMove, OutcomeGameComplete,
	}
	if len(outcomes) != len(expected) {
		t.Fatalf("outcomes = %v, expected %v", outcomes, expected)
	}
	for i := range expected {
		if outcomes[i] != expected[i] {
			t.Errorf("outcome %d = %v, expected %v", i, outcomes[i], expected[i])
		}
	}
	if e.Head().Pos != (Position{}) {
		t.Errorf("hub = %+v, expected reset to origin", e.Head().Pos)
	}
}

func TestEngineLevelCompleteResetsHead(t *testing.T) {
	e := NewEngine(NewState(NewMap(testLevels()), DefaultSpeed), DefaultGeometry())
	for _, d := range []Direction{Right, Right, Up} {
		ticksUntil(t, e, d)
		e.Step(true)
	}

	if e.State().Map().CurrentLevel() != 1 {
		t.Fatalf("level = %d, expected 1", e.State().Map().CurrentLevel())
	}
	if e.Head().Pos != (Position{}) {
		t.Errorf("hub = %+v, expected origin", e.Head().Pos)
	}
	want := DefaultFacing.Sub(DefaultSpeed).Degrees()
	if got := e.Head().Facing().Degrees(); got != want {
		t.Errorf("Facing() = %v, expected %v", got, want)
	}
}

func TestEngineFrame(t *testing.T) {
	e := NewEngine(newTestState(), DefaultGeometry())
	ticksUntil(t, e, Right)
	e.Step(true)

	f := e.Frame()

	if len(f.Tiles) != 4 {
		t.Fatalf("len(Tiles) = %d, expected 4", len(f.Tiles))
	}
	if f.Tiles[0].Pos != (Position{X: -35, Y: -35}) {
		t.Errorf("first tile at %+v, expected (-35, -35)", f.Tiles[0].Pos)
	}
	if !f.Tiles[0].Passed || f.Tiles[0].Active {
		t.Error("first tile should be passed and inactive")
	}
	if !f.Tiles[1].Active {
		t.Error("second tile should be active")
	}
	if !f.Tiles[3].Terminal {
		t.Error("last placement should be the terminal marker")
	}
	if f.Hub != (Position{X: 75}) {
		t.Errorf("Hub = %+v", f.Hub)
	}
	if f.Window != Right.Window() {
		t.Errorf("Window = %v, expected Right's", f.Window)
	}
	if f.Camera != (Position{}) {
		t.Error("camera should stay still without follow")
	}

	e.SetFollow(true)
	if e.Frame().Camera != f.Hub {
		t.Error("camera should track the hub with follow enabled")
	}
}

func TestEngineDeterminism(t *testing.T) {
	run := func() Snapshot {
		e := NewEngine(newTestState(), DefaultGeometry())
		for i := 0; i < 400; i++ {
			e.Step(i%7 == 0)
		}
		return e.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("snapshots differ: %+v vs %+v", a, b)
	}
}

func TestEngineRestart(t *testing.T) {
	e := NewEngine(newTestState(), DefaultGeometry())
	ticksUntil(t, e, Right)
	e.Step(true)

	if err := e.Restart(1); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	snap := e.Snapshot()
	if snap.Tick != 0 || snap.Level != 1 || snap.Tile != 0 || snap.HubX != 0 {
		t.Errorf("unexpected snapshot after restart: %+v", snap)
	}
}
