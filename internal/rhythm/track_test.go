package rhythm

import (
	"errors"
	"testing"
)

func testLevels() []Level {
	return []Level{
		NewLevel("first", Right, Right, Up),
		NewLevel("second", Left, Down),
	}
}

func TestMapTilesAndLevels(t *testing.T) {
	m := NewMap(testLevels())

	if m.LevelCount() != 2 {
		t.Fatalf("LevelCount() = %d, expected 2", m.LevelCount())
	}
	if m.CurrentLevel() != 0 {
		t.Errorf("CurrentLevel() = %d, expected 0", m.CurrentLevel())
	}
	if len(m.Tiles()) != 3 {
		t.Errorf("len(Tiles()) = %d, expected 3", len(m.Tiles()))
	}

	if !m.NextLevel() {
		t.Fatal("NextLevel() should advance from the first level")
	}
	dirs := NewLevel("", Left, Down).Directions()
	for i, tile := range m.Tiles() {
		if tile.Next != dirs[i] {
			t.Errorf("tile %d = %v, expected %v", i, tile.Next, dirs[i])
		}
	}
	if !m.IsLast() {
		t.Error("second level should be the last")
	}
}

func TestMapNextLevelStopsAtEnd(t *testing.T) {
	m := NewMap(testLevels())
	m.NextLevel()

	if m.NextLevel() {
		t.Error("NextLevel() past the last level should report false")
	}
	if m.CurrentLevel() != 1 {
		t.Errorf("CurrentLevel() = %d, expected to stay at 1", m.CurrentLevel())
	}

	m.Rewind()
	if m.CurrentLevel() != 0 {
		t.Errorf("Rewind() left level at %d", m.CurrentLevel())
	}
}

func TestMapSetLevel(t *testing.T) {
	m := NewMap(testLevels())

	if err := m.SetLevel(1); err != nil {
		t.Fatalf("SetLevel(1) failed: %v", err)
	}
	if m.CurrentLevel() != 1 {
		t.Errorf("CurrentLevel() = %d, expected 1", m.CurrentLevel())
	}

	for _, bad := range []int{-1, 2, 100} {
		if err := m.SetLevel(bad); !errors.Is(err, ErrLevelOutOfRange) {
			t.Errorf("SetLevel(%d) = %v, expected ErrLevelOutOfRange", bad, err)
		}
	}
	if m.CurrentLevel() != 1 {
		t.Error("failed SetLevel must not change the active level")
	}
}

func TestMapEmpty(t *testing.T) {
	m := NewMap(nil)

	if m.Tiles() != nil {
		t.Error("Tiles() of an empty map should be nil")
	}
	if _, ok := m.Active(); ok {
		t.Error("Active() of an empty map should report false")
	}
	if !m.IsLast() || m.NextLevel() {
		t.Error("an empty map has no level to advance to")
	}
	layout := m.Layout(Position{}, DefaultGeometry())
	if len(layout) != 1 {
		t.Errorf("layout of empty level should only hold the terminal marker, got %d", len(layout))
	}
}

func TestMapLayout(t *testing.T) {
	m := NewMap([]Level{NewLevel("path", Right, Right, Up, Left, Down)})
	g := DefaultGeometry()
	anchor := Position{X: 100, Y: 200}

	layout := m.Layout(anchor, g)

	expected := []Position{
		{X: 100, Y: 200},
		{X: 175, Y: 200},
		{X: 250, Y: 200},
		{X: 250, Y: 125},
		{X: 175, Y: 125},
		{X: 175, Y: 200},
	}

	if len(layout) != len(m.Tiles())+1 {
		t.Fatalf("len(Layout()) = %d, expected %d", len(layout), len(m.Tiles())+1)
	}
	for i, pos := range layout {
		if pos != expected[i] {
			t.Errorf("placement %d = %+v, expected %+v", i, pos, expected[i])
		}
	}
}
