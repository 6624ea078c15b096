package rhythm

import (
	"errors"
	"fmt"
)

// ErrLevelOutOfRange is returned when selecting a level that does not exist.
var ErrLevelOutOfRange = errors.New("rhythm: level out of range")

// Map holds every loaded level and tracks which one is active.
type Map struct {
	levels  []Level
	current int
}

// NewMap creates a map positioned at the first level.
func NewMap(levels []Level) *Map {
	return &Map{levels: levels}
}

// Tiles returns the active level's tile sequence.
// Returns nil once the map has run past its last level.
func (m *Map) Tiles() []Tile {
	if m.current < 0 || m.current >= len(m.levels) {
		return nil
	}
	return m.levels[m.current].Tiles
}

// Active returns the active level.
func (m *Map) Active() (Level, bool) {
	return m.Level(m.current)
}

// Level returns the level at index i.
func (m *Map) Level(i int) (Level, bool) {
	if i < 0 || i >= len(m.levels) {
		return Level{}, false
	}
	return m.levels[i], true
}

// CurrentLevel returns the active level index.
func (m *Map) CurrentLevel() int {
	return m.current
}

// LevelCount returns the number of loaded levels.
func (m *Map) LevelCount() int {
	return len(m.levels)
}

// IsLast reports whether the active level is the final one.
func (m *Map) IsLast() bool {
	return m.current >= len(m.levels)-1
}

// NextLevel advances to the following level.
// Returns false, leaving the map unchanged, when the active level is the last.
func (m *Map) NextLevel() bool {
	if m.IsLast() {
		return false
	}
	m.current++
	return true
}

// Rewind returns to the first level.
func (m *Map) Rewind() {
	m.current = 0
}

// SetLevel makes level i active.
func (m *Map) SetLevel(i int) error {
	if i < 0 || i >= len(m.levels) {
		return fmt.Errorf("%w: %d (have %d)", ErrLevelOutOfRange, i, len(m.levels))
	}
	m.current = i
	return nil
}

// Layout returns the placement of every tile of the active level, starting
// at anchor. Each placement is the previous one moved by the previous tile's
// step; a terminal placement follows the last tile, so the result has
// len(Tiles())+1 entries.
func (m *Map) Layout(anchor Position, g Geometry) []Position {
	tiles := m.Tiles()
	out := make([]Position, 0, len(tiles)+1)
	pos := anchor
	for _, t := range tiles {
		out = append(out, pos)
		pos = pos.Add(t.Next.Step(g))
	}
	return append(out, pos)
}
