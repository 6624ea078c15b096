package rhythm

// Tile is one checkpoint on a level's path. Next is the direction the pointer
// must face to pass through it; tiles are never mutated after loading.
type Tile struct {
	Next Direction
}

// Level is an ordered sequence of tiles.
type Level struct {
	Name  string
	Speed float64 // Overrides the configured angular speed when > 0
	Tiles []Tile
}

// Directions returns the required direction of every tile in order.
func (l Level) Directions() []Direction {
	dirs := make([]Direction, len(l.Tiles))
	for i, t := range l.Tiles {
		dirs[i] = t.Next
	}
	return dirs
}

// NewLevel builds a level from a list of directions.
func NewLevel(name string, dirs ...Direction) Level {
	tiles := make([]Tile, len(dirs))
	for i, d := range dirs {
		tiles[i] = Tile{Next: d}
	}
	return Level{Name: name, Tiles: tiles}
}
