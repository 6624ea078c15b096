package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW    int // Screen width in characters
	ScreenH    int // Screen height in characters
	TickRate   int // Simulation ticks per second (default 60)
	StartLevel int // Zero-based level to start from
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int
	Level    int // Zero-based active level
	Tile     int // Zero-based active tile
	Streak   int // Consecutive hits without a miss
	GameOver bool
	Won      bool // GameOver because every level was completed
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Hit   bool // A trigger landed inside the window this tick
	Miss  bool // A trigger missed this tick
}
