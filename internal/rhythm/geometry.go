package rhythm

// Geometry holds the world-space sizes used for path layout and kinematics.
type Geometry struct {
	TileWidth     float64
	TileHeight    float64
	TileSpace     float64 // Gap between consecutive tiles
	TileThickness float64 // Outline thickness, presentation only
	BallRadius    float64
	BallDistance  float64 // Orbit radius; 0 means TileWidth + TileSpace
}

// DefaultGeometry returns the stock sizes.
func DefaultGeometry() Geometry {
	return Geometry{
		TileWidth:     70,
		TileHeight:    70,
		TileSpace:     5,
		TileThickness: 10,
		BallRadius:    20,
	}
}

// StepX returns the horizontal distance between consecutive tiles.
func (g Geometry) StepX() float64 {
	return g.TileWidth + g.TileSpace
}

// StepY returns the vertical distance between consecutive tiles.
func (g Geometry) StepY() float64 {
	return g.TileHeight + g.TileSpace
}

// Orbit returns the distance between the hub and the pointer.
func (g Geometry) Orbit() float64 {
	if g.BallDistance > 0 {
		return g.BallDistance
	}
	return g.StepX()
}

// HubRadius returns the radius of the hub circle.
func (g Geometry) HubRadius() float64 {
	return g.BallRadius * 0.75
}
