package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

// Visual characters for rendering
const (
	HubChar  = '●'
	BallChar = '◍'
)

// cellsPerStep is how many columns one tile plus its spacing takes.
// Terminal cells are about twice as tall as wide, so rows use half the scale.
const cellsPerStep = 10.0

// Projection maps world units to screen cells.
type Projection struct {
	SX, SY float64 // Cells per world unit
	OX, OY float64 // Screen position of the camera
	Camera rhythm.Position
}

// NewProjection centres the camera of f on a w×h screen.
func NewProjection(f rhythm.Frame, g rhythm.Geometry, w, h int) Projection {
	step := g.StepX()
	if step <= 0 {
		step = 1
	}
	sx := cellsPerStep / step
	return Projection{
		SX:     sx,
		SY:     sx / 2,
		OX:     float64(w) / 2,
		OY:     float64(h) / 2,
		Camera: f.Camera,
	}
}

// Point converts a world position to fractional screen coordinates.
func (p Projection) Point(pos rhythm.Position) (float64, float64) {
	return p.OX + (pos.X-p.Camera.X)*p.SX, p.OY + (pos.Y-p.Camera.Y)*p.SY
}

// Rect converts a world box to a screen rectangle.
func (p Projection) Rect(pos rhythm.Position, w, h float64) core.Rect {
	x, y := p.Point(pos)
	return core.NewRect(
		int(math.Round(x)),
		int(math.Round(y)),
		int(math.Round(w*p.SX)),
		int(math.Round(h*p.SY)),
	)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	f := g.engine.Frame()
	proj := NewProjection(f, g.engine.Geometry(), dst.Width(), dst.Height())

	for _, box := range f.Tiles {
		drawTile(dst, proj, f, box)
	}

	hx, hy := proj.Point(f.Hub)
	dst.DrawDisc(hx, hy, f.HubRadius*proj.SX, f.HubRadius*proj.SY, HubChar, core.ColorBrightWhite)
	bx, by := proj.Point(f.Ball)
	dst.DrawDisc(bx, by, f.BallRadius*proj.SX, f.BallRadius*proj.SY, BallChar, g.ballColor(f))

	g.drawHUD(dst, f)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "ALL LEVELS CLEAR", fmt.Sprintf("Score: %d  |  Press R to restart", g.scorer.Score()))
	}
}

// drawTile draws one path square with the arrow of the direction it asks for.
func drawTile(dst *core.Screen, proj Projection, f rhythm.Frame, box rhythm.TileBox) {
	r := proj.Rect(box.Pos, f.TileWidth, f.TileHeight)

	color := core.ColorRed
	switch {
	case box.Terminal:
		color = core.ColorGreen
	case box.Passed:
		color = core.ColorGray
	case box.Active:
		color = core.ColorBrightYellow
	}
	dst.DrawBox(r, color)

	if box.Terminal || box.Passed {
		return
	}
	cx, cy := r.Center()
	dst.SetColored(cx, cy, box.Dir.Arrow(), color)
}

// ballColor lights the pointer up while it is inside the active window.
func (g *Game) ballColor(f rhythm.Frame) core.Color {
	if f.Finished || f.TileCount == 0 {
		return core.ColorWhite
	}
	if f.Window.Contains(f.Facing) {
		return core.ColorBrightGreen
	}
	return core.ColorCyan
}

// drawHUD renders the status line and the last hit or miss.
func (g *Game) drawHUD(dst *core.Screen, f rhythm.Frame) {
	name := f.LevelName
	if name == "" {
		name = fmt.Sprintf("Level %d", f.Level+1)
	}
	status := fmt.Sprintf(" %s  %d/%d  Tile %d/%d  Score: %d  x%d ",
		name, f.Level+1, f.LevelCount, f.Tile+1, f.TileCount, g.scorer.Score(), g.scorer.Multiplier())
	if f.Lap > 0 {
		status += fmt.Sprintf(" Lap %d ", f.Lap+1)
	}
	dst.DrawText(1, 0, status, core.ColorBrightWhite)

	aim := fmt.Sprintf(" Facing %3.0f°  Need %s ", f.Facing, f.Window)
	dst.DrawText(dst.Width()-len([]rune(aim))-1, 0, aim, core.ColorGray)

	if !g.feedback.Visible() {
		return
	}
	y := dst.Height() - 1
	switch {
	case g.feedback.Miss:
		dst.DrawTextCentered(y, "MISS", core.ColorBrightRed)
	case g.feedback.Kind == rhythm.OutcomeLevelComplete:
		dst.DrawTextCentered(y, fmt.Sprintf("LEVEL CLEAR +%d", g.feedback.Points), core.ColorBrightYellow)
	default:
		dst.DrawTextCentered(y, fmt.Sprintf("HIT +%d", g.feedback.Points), core.ColorBrightGreen)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorWhite)
}
