package rhythm

import "math"

// Ball is the pointer orbiting the hub. Pos is an offset from the hub that
// is recomputed from Angle on every update.
type Ball struct {
	Pos   Position
	Angle Angle
}

// Head is the hub the ball orbits. Pos is its world position.
type Head struct {
	Pos  Position
	Ball Ball
}

// NewHead creates a head centred at center with the ball at its default facing.
func NewHead(center Position) Head {
	h := Head{}
	h.Reset(center)
	return h
}

// Update projects the ball onto its orbit and then rotates it by speed
// degrees. It runs every tick whether or not a trigger happened.
func (h *Head) Update(speed, distance float64) {
	rad := h.Ball.Angle.Radians()
	h.Ball.Pos = Position{
		X: distance * math.Sin(rad),
		Y: distance * math.Cos(rad),
	}
	h.Ball.Angle = h.Ball.Angle.Sub(speed)
}

// Advance moves the hub by step and reseeds the ball half a turn away from
// next, so the pointer has to sweep towards the new window.
func (h *Head) Advance(step Position, next Direction) {
	h.Pos = h.Pos.Add(step)
	h.Ball.Angle = next.Opposite().Angle()
}

// Reset recentres the hub and returns the ball to its default facing.
func (h *Head) Reset(center Position) {
	h.Pos = center
	h.Ball = Ball{Angle: DefaultFacing}
}

// Facing returns the ball's current angle.
func (h Head) Facing() Angle {
	return h.Ball.Angle
}

// BallPosition returns the ball's world position.
func (h Head) BallPosition() Position {
	return h.Pos.Add(h.Ball.Pos)
}
