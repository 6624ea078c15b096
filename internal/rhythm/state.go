package rhythm

import (
	"github.com/charmbracelet/log"
)

// DefaultSpeed is the pointer's angular speed in degrees per tick.
const DefaultSpeed = 5.0

// EndPolicy decides what happens after the last tile of the last level.
type EndPolicy string

const (
	// EndFinish stops the game in a terminal completed state.
	EndFinish EndPolicy = "finish"
	// EndLoop wraps back to the first level and starts a new lap.
	EndLoop EndPolicy = "loop"
)

// ParseEndPolicy maps a config value to a policy, defaulting to EndFinish.
func ParseEndPolicy(s string) EndPolicy {
	if EndPolicy(s) == EndLoop {
		return EndLoop
	}
	return EndFinish
}

// OutcomeKind classifies the result of a trigger.
type OutcomeKind int

const (
	// OutcomeNone means the trigger missed the acceptance window. Nothing changed.
	OutcomeNone OutcomeKind = iota
	// OutcomeMove means the tile was passed and more tiles remain in the level.
	OutcomeMove
	// OutcomeLevelComplete means the level's last tile was passed and the
	// next level (or the first one, when looping) is now active.
	OutcomeLevelComplete
	// OutcomeGameComplete means the final level was finished under EndFinish.
	OutcomeGameComplete
)

// String returns a short name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeMove:
		return "move"
	case OutcomeLevelComplete:
		return "level_complete"
	case OutcomeGameComplete:
		return "game_complete"
	default:
		return "unknown"
	}
}

// Outcome is returned by State.MoveNext.
type Outcome struct {
	Kind OutcomeKind
	Dir  Direction // Direction of the tile just passed
	Next Direction // Direction of the tile that is now active
}

// Hit reports whether the trigger landed inside the window.
func (o Outcome) Hit() bool {
	return o.Kind != OutcomeNone
}

// State is the hit-detection state machine. It owns the map and the index
// of the active tile. Between triggers it is always waiting for input; the
// outcomes of MoveNext are reported to the caller and never stored.
type State struct {
	speed    float64
	lapBonus float64
	m        *Map
	tile     int
	policy   EndPolicy
	lap      int
	finished bool
	logger   *log.Logger
}

// NewState creates a state at the first tile of the map's active level.
func NewState(m *Map, speed float64) *State {
	return &State{
		speed:  speed,
		m:      m,
		policy: EndFinish,
		logger: log.Default().WithPrefix("rhythm"),
	}
}

// SetPolicy sets the end-of-content policy.
func (s *State) SetPolicy(p EndPolicy) {
	s.policy = p
}

// SetLapBonus sets the extra degrees per tick added for each completed lap.
func (s *State) SetLapBonus(bonus float64) {
	s.lapBonus = bonus
}

// SetLogger replaces the diagnostics logger.
func (s *State) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// SetSpeed changes the base angular speed.
func (s *State) SetSpeed(speed float64) {
	s.speed = speed
}

// Speed returns the effective angular speed: the active level's override if
// it has one, plus the lap bonus.
func (s *State) Speed() float64 {
	speed := s.speed
	if lvl, ok := s.m.Active(); ok && lvl.Speed > 0 {
		speed = lvl.Speed
	}
	return speed + float64(s.lap)*s.lapBonus
}

// Map returns the level map.
func (s *State) Map() *Map {
	return s.m
}

// CurrentTile returns the index of the active tile.
func (s *State) CurrentTile() int {
	return s.tile
}

// Lap returns how many times the whole campaign has been looped.
func (s *State) Lap() int {
	return s.lap
}

// Finished reports whether the final level has been completed.
func (s *State) Finished() bool {
	return s.finished
}

// ActiveTile returns the tile the next trigger is judged against.
func (s *State) ActiveTile() (Tile, bool) {
	tiles := s.m.Tiles()
	if s.finished || s.tile >= len(tiles) {
		return Tile{}, false
	}
	return tiles[s.tile], true
}

// Restart moves to the first tile of level and clears lap and completion.
func (s *State) Restart(level int) error {
	if err := s.m.SetLevel(level); err != nil {
		return err
	}
	s.tile = 0
	s.lap = 0
	s.finished = false
	return nil
}

// MoveNext judges a trigger made while the pointer faces the given angle.
// A miss leaves the state untouched.
func (s *State) MoveNext(facing Angle) Outcome {
	tile, ok := s.ActiveTile()
	if !ok {
		return Outcome{}
	}

	window := tile.Next.Window()
	deg := facing.Degrees()
	if !window.Contains(deg) {
		s.logger.Debug("bad facing", "facing", deg, "range", window, "level", s.m.CurrentLevel(), "tile", s.tile)
		return Outcome{}
	}
	s.logger.Debug("good facing", "facing", deg, "range", window, "level", s.m.CurrentLevel(), "tile", s.tile)

	s.tile++
	tiles := s.m.Tiles()
	if s.tile < len(tiles) {
		return Outcome{Kind: OutcomeMove, Dir: tile.Next, Next: tiles[s.tile].Next}
	}

	s.tile = 0
	if s.m.NextLevel() {
		return Outcome{Kind: OutcomeLevelComplete, Dir: tile.Next, Next: s.firstDirection()}
	}

	if s.policy == EndLoop {
		s.m.Rewind()
		s.lap++
		s.logger.Debug("lap complete", "lap", s.lap)
		return Outcome{Kind: OutcomeLevelComplete, Dir: tile.Next, Next: s.firstDirection()}
	}

	s.finished = true
	s.logger.Debug("game complete", "levels", s.m.LevelCount())
	return Outcome{Kind: OutcomeGameComplete, Dir: tile.Next}
}

// firstDirection returns the direction of the active level's first tile.
func (s *State) firstDirection() Direction {
	tiles := s.m.Tiles()
	if len(tiles) == 0 {
		return Down
	}
	return tiles[0].Next
}
