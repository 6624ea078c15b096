package rhythm

// Position is a 2D offset in world units.
// Y grows downwards, matching screen coordinates.
type Position struct {
	X, Y float64
}

// Add returns p + o.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale multiplies both components by f.
func (p Position) Scale(f float64) Position {
	return Position{X: p.X * f, Y: p.Y * f}
}
