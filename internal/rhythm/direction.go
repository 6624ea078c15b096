package rhythm

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is the compass direction a tile requires the pointer to face.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// WindowHalfWidth is the tolerance in degrees on either side of a direction's angle.
const WindowHalfWidth = 25.0

// ErrUnknownDirection is returned when a direction tag cannot be parsed.
var ErrUnknownDirection = errors.New("rhythm: unknown direction")

// Directions lists all directions in declaration order.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// Angle returns the canonical facing angle for the direction.
// Angles follow the pointer's projection (sin, cos): 0 points down the screen.
func (d Direction) Angle() Angle {
	switch d {
	case Up:
		return 180
	case Down:
		return 0
	case Left:
		return 270
	case Right:
		return 90
	default:
		return 0
	}
}

// Window returns the acceptance window around the direction's angle.
func (d Direction) Window() Window {
	center := d.Angle().Degrees()
	low := center - WindowHalfWidth
	if low < 0 {
		low += 360
	}
	return Window{Low: low, High: center + WindowHalfWidth}
}

// Step returns the path offset from a tile to the next one when this
// direction is followed.
func (d Direction) Step(g Geometry) Position {
	switch d {
	case Right:
		return Position{X: g.StepX()}
	case Left:
		return Position{X: -g.StepX()}
	case Up:
		return Position{Y: -g.StepY()}
	case Down:
		return Position{Y: g.StepY()}
	default:
		return Position{}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String returns the direction tag used in level files.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Arrow returns a single-rune glyph for the direction.
func (d Direction) Arrow() rune {
	switch d {
	case Up:
		return '↑'
	case Down:
		return '↓'
	case Left:
		return '←'
	default:
		return '→'
	}
}

// ParseDirection parses a direction tag. Matching is case-insensitive and
// accepts the compass letters n, s, w, e.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "n":
		return Up, nil
	case "down", "s":
		return Down, nil
	case "left", "w":
		return Left, nil
	case "right", "e":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Window is an inclusive range of angles in degrees.
// When Low > High the window wraps through 0.
type Window struct {
	Low  float64
	High float64
}

// Wraps reports whether the window crosses the 360/0 boundary.
func (w Window) Wraps() bool {
	return w.Low > w.High
}

// Contains reports whether the normalized angle deg lies inside the window.
func (w Window) Contains(deg float64) bool {
	if w.Wraps() {
		return (deg >= w.Low && deg <= 360) || (deg >= 0 && deg <= w.High)
	}
	return deg >= w.Low && deg <= w.High
}

// String formats the window as [low, high].
func (w Window) String() string {
	return fmt.Sprintf("[%g, %g]", w.Low, w.High)
}
