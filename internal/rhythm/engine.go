package rhythm

// Engine owns the state machine and the head and advances them one tick at a
// time. World coordinates put the hub's starting point at the origin.
type Engine struct {
	state  *State
	head   Head
	geom   Geometry
	follow bool
	tick   uint64
}

// NewEngine creates an engine for state using the given geometry.
func NewEngine(state *State, geom Geometry) *Engine {
	return &Engine{
		state: state,
		head:  NewHead(Position{}),
		geom:  geom,
	}
}

// SetFollow makes the camera track the hub instead of staying on the origin.
func (e *Engine) SetFollow(follow bool) {
	e.follow = follow
}

// State returns the hit-detection state machine.
func (e *Engine) State() *State {
	return e.state
}

// Head returns the hub and pointer.
func (e *Engine) Head() Head {
	return e.head
}

// Geometry returns the world sizes in use.
func (e *Engine) Geometry() Geometry {
	return e.geom
}

// Tick returns the number of steps taken since the last restart.
func (e *Engine) Tick() uint64 {
	return e.tick
}

// Restart begins again at the first tile of level.
func (e *Engine) Restart(level int) error {
	if err := e.state.Restart(level); err != nil {
		return err
	}
	e.head.Reset(Position{})
	e.tick = 0
	return nil
}

// Step runs one tick: at most one trigger is judged and applied, then the
// pointer rotates.
func (e *Engine) Step(trigger bool) Outcome {
	var out Outcome
	if trigger {
		out = e.state.MoveNext(e.head.Facing())
		e.apply(out)
	}
	e.head.Update(e.state.Speed(), e.geom.Orbit())
	e.tick++
	return out
}

// apply feeds an outcome back into the head.
func (e *Engine) apply(out Outcome) {
	switch out.Kind {
	case OutcomeMove:
		e.head.Advance(out.Dir.Step(e.geom), out.Next)
	case OutcomeLevelComplete, OutcomeGameComplete:
		e.head.Reset(Position{})
	}
}

// TileBox is one square of the path in world coordinates.
type TileBox struct {
	Pos      Position // Top-left corner
	Dir      Direction
	Passed   bool
	Active   bool
	Terminal bool // The marker after the last tile
}

// Frame is everything a renderer needs to draw one tick.
type Frame struct {
	Tiles      []TileBox
	TileWidth  float64
	TileHeight float64
	Thickness  float64
	Hub        Position
	HubRadius  float64
	Ball       Position
	BallRadius float64
	Camera     Position // Subtract from world positions before drawing
	Facing     float64
	Window     Window
	Level      int
	LevelName  string
	LevelCount int
	Tile       int
	TileCount  int
	Lap        int
	Finished   bool
}

// Frame returns the render contract for the current tick.
func (e *Engine) Frame() Frame {
	m := e.state.Map()
	anchor := Position{X: -e.geom.TileWidth / 2, Y: -e.geom.TileHeight / 2}
	layout := m.Layout(anchor, e.geom)
	tiles := m.Tiles()
	current := e.state.CurrentTile()

	boxes := make([]TileBox, len(layout))
	for i, pos := range layout {
		box := TileBox{Pos: pos, Terminal: i == len(tiles)}
		if i < len(tiles) {
			box.Dir = tiles[i].Next
			box.Passed = i < current
			box.Active = i == current && !e.state.Finished()
		}
		boxes[i] = box
	}

	f := Frame{
		Tiles:      boxes,
		TileWidth:  e.geom.TileWidth,
		TileHeight: e.geom.TileHeight,
		Thickness:  e.geom.TileThickness,
		Hub:        e.head.Pos,
		HubRadius:  e.geom.HubRadius(),
		Ball:       e.head.BallPosition(),
		BallRadius: e.geom.BallRadius,
		Facing:     e.head.Facing().Degrees(),
		Level:      m.CurrentLevel(),
		LevelCount: m.LevelCount(),
		Tile:       current,
		TileCount:  len(tiles),
		Lap:        e.state.Lap(),
		Finished:   e.state.Finished(),
	}
	if lvl, ok := m.Active(); ok {
		f.LevelName = lvl.Name
	}
	if t, ok := e.state.ActiveTile(); ok {
		f.Window = t.Next.Window()
	}
	if e.follow {
		f.Camera = e.head.Pos
	}
	return f
}
