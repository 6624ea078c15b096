// Package scene lays out a rhythm frame in window pixels. It has no
// dependency on the window toolkit so it can be tested headless.
package scene

import (
	"fmt"

	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

// Rect is a tile outline in pixels.
type Rect struct {
	X, Y, W, H float32
	Stroke     float32
	Active     bool
	Terminal   bool
}

// Circle is a filled disc in pixels.
type Circle struct {
	X, Y, R float32
}

// Scene is one frame ready to draw.
type Scene struct {
	Tiles []Rect
	Hub   Circle
	Ball  Circle
}

// Build projects f onto a w×h window. World units are pixels; the camera
// sits at the centre of the window.
func Build(f rhythm.Frame, w, h int) Scene {
	ox := float64(w)/2 - f.Camera.X
	oy := float64(h)/2 - f.Camera.Y

	s := Scene{Tiles: make([]Rect, 0, len(f.Tiles))}
	for _, t := range f.Tiles {
		s.Tiles = append(s.Tiles, Rect{
			X:        float32(t.Pos.X + ox),
			Y:        float32(t.Pos.Y + oy),
			W:        float32(f.TileWidth),
			H:        float32(f.TileHeight),
			Stroke:   float32(f.Thickness),
			Active:   t.Active,
			Terminal: t.Terminal,
		})
	}
	s.Hub = Circle{X: float32(f.Hub.X + ox), Y: float32(f.Hub.Y + oy), R: float32(f.HubRadius)}
	s.Ball = Circle{X: float32(f.Ball.X + ox), Y: float32(f.Ball.Y + oy), R: float32(f.BallRadius)}
	return s
}

// HUD returns the status lines drawn in the top-left corner.
func HUD(f rhythm.Frame, st core.GameState, multiplier int) []string {
	name := f.LevelName
	if name == "" {
		name = fmt.Sprintf("Level %d", f.Level+1)
	}
	lines := []string{
		fmt.Sprintf("%s (%d/%d)  tile %d/%d", name, f.Level+1, f.LevelCount, f.Tile+1, f.TileCount),
		fmt.Sprintf("score %d  x%d", st.Score, multiplier),
		fmt.Sprintf("facing %3.0f  need %s", f.Facing, f.Window),
	}
	if f.Lap > 0 {
		lines = append(lines, fmt.Sprintf("lap %d", f.Lap+1))
	}
	switch {
	case st.GameOver && st.Won:
		lines = append(lines, "ALL LEVELS CLEAR - R to play again, Esc to quit")
	case st.Paused:
		lines = append(lines, "PAUSED - P to resume")
	}
	return lines
}
