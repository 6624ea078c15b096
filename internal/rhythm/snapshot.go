package rhythm

// Snapshot captures the engine state for determinism tests and debugging.
type Snapshot struct {
	Tick     uint64
	Level    int
	Tile     int
	Lap      int
	HubX     float64
	HubY     float64
	Facing   float64
	Speed    float64
	Finished bool
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:     e.tick,
		Level:    e.state.Map().CurrentLevel(),
		Tile:     e.state.CurrentTile(),
		Lap:      e.state.Lap(),
		HubX:     e.head.Pos.X,
		HubY:     e.head.Pos.Y,
		Facing:   e.head.Facing().Degrees(),
		Speed:    e.state.Speed(),
		Finished: e.state.Finished(),
	}
}
