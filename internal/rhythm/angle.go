// Package rhythm implements the timing and progression engine of the rhythm game:
// a pointer orbits a hub and must be released while facing the direction the
// current tile demands. The package is pure logic with no platform dependencies.
package rhythm

import "math"

// Angle is a facing direction in degrees.
// The stored value is never normalized; read it through Degrees.
type Angle float64

// DefaultFacing is the pointer angle at the start of every level.
const DefaultFacing Angle = -90

// Degrees returns the angle normalized into [0, 360).
func (a Angle) Degrees() float64 {
	d := math.Mod(float64(a), 360)
	if d < 0 {
		d += 360
	}
	// -1e-14 + 360 rounds to exactly 360
	if d >= 360 || d == 0 {
		return 0
	}
	return d
}

// Radians returns the normalized angle in radians.
func (a Angle) Radians() float64 {
	return a.Degrees() * math.Pi / 180
}

// Add returns the angle rotated by delta degrees.
func (a Angle) Add(delta float64) Angle {
	return a + Angle(delta)
}

// Sub returns the angle rotated by -delta degrees.
func (a Angle) Sub(delta float64) Angle {
	return a - Angle(delta)
}
