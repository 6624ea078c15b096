// Package game adapts the rhythm engine to the platform's Game interface.
// It adds scoring, pause, difficulty scaling and terminal rendering on top
// of the pure engine.
package game

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/registry"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

// Mode IDs. They double as the game_id in score storage.
const (
	ModeCampaign = "campaign"
	ModeEndless  = "endless"
)

// ErrNoLevels is returned when a game is built without any level.
var ErrNoLevels = errors.New("game: no levels")

// feedbackTicks is how long a hit or miss stays on the HUD.
const feedbackTicks = 20

// Feedback describes the last judged trigger.
type Feedback struct {
	Kind   rhythm.OutcomeKind
	Miss   bool
	Points int
	ticks  int
}

// Visible reports whether the feedback should still be shown.
func (f Feedback) Visible() bool {
	return f.ticks > 0
}

// RunStats summarises a run for persistence.
type RunStats struct {
	StartLevel    int
	LevelsCleared int
	TilesHit      int
	Misses        int
	BestStreak    int
	Laps          int
	Ticks         uint64
}

// Game implements registry.Game for the rhythm engine.
type Game struct {
	id     string
	title  string
	policy rhythm.EndPolicy
	levels []rhythm.Level
	cfg    config.RhythmConfig

	engine     *rhythm.Engine
	difficulty *config.DifficultyManager
	scorer     Scorer
	stats      RunStats
	feedback   Feedback
	runtime    core.RuntimeConfig
	logger     *log.Logger

	paused   bool
	gameOver bool
	won      bool
}

// New creates a game for the given mode ID. Reset must be called before Step.
func New(id string, setup registry.Setup) (*Game, error) {
	if len(setup.Levels) == 0 {
		return nil, ErrNoLevels
	}
	if err := setup.Config.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		id:     id,
		levels: setup.Levels,
		cfg:    setup.Config,
		scorer: NewScorer(setup.Config.Gameplay),
		logger: log.Default().WithPrefix("game"),
	}
	switch id {
	case ModeEndless:
		g.title = "Rhythm - Endless"
		g.policy = rhythm.EndLoop
	default:
		g.title = "Rhythm - Campaign"
		g.policy = rhythm.ParseEndPolicy(setup.Config.Gameplay.EndPolicy)
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// SetLogger replaces the logger used by the game and its engine.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	g.logger = l
	g.engine.State().SetLogger(l.WithPrefix("rhythm"))
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.title
}

// Levels returns the loaded levels.
func (g *Game) Levels() []rhythm.Level {
	return g.levels
}

// Geometry converts the configured sizes to engine geometry.
func Geometry(cfg config.RhythmConfig) rhythm.Geometry {
	return rhythm.Geometry{
		TileWidth:     cfg.Geometry.TileWidth,
		TileHeight:    cfg.Geometry.TileHeight,
		TileSpace:     cfg.Geometry.TileSpace,
		TileThickness: cfg.Geometry.TileThickness,
		BallRadius:    cfg.Geometry.BallRadius,
		BallDistance:  cfg.Physics.BallDistance,
	}
}

// Reset builds a fresh engine starting at cfg.StartLevel.
// An out-of-range start level falls back to the first level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	m := rhythm.NewMap(g.levels)
	start := cfg.StartLevel
	if err := m.SetLevel(start); err != nil {
		g.logger.Warn("start level out of range, using first level", "level", start, "levels", len(g.levels))
		start = 0
	}

	state := rhythm.NewState(m, g.cfg.Physics.Speed)
	state.SetPolicy(g.policy)
	state.SetLapBonus(g.cfg.Gameplay.LapSpeedBonus)
	if g.logger != nil {
		state.SetLogger(g.logger.WithPrefix("rhythm"))
	}

	g.engine = rhythm.NewEngine(state, Geometry(g.cfg))
	g.engine.SetFollow(g.cfg.Gameplay.FollowCamera)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.scorer.Reset()
	g.stats = RunStats{StartLevel: start}
	g.feedback = Feedback{}
	g.paused = false
	g.gameOver = false
	g.won = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	state := g.engine.State()
	if g.difficulty.IsEnabled() {
		state.SetSpeed(g.difficulty.Speed(g.cfg.Physics.Speed, g.stats.TilesHit, int(g.engine.Tick())))
	}

	trigger := in.Has(core.ActionHit)
	out := g.engine.Step(trigger)
	g.stats.Ticks = g.engine.Tick()
	if g.feedback.ticks > 0 {
		g.feedback.ticks--
	}

	result := core.StepResult{}
	switch {
	case !trigger:
	case out.Hit():
		g.onHit(out)
		result.Hit = true
	default:
		g.scorer.Miss()
		g.stats.Misses++
		g.feedback = Feedback{Miss: true, ticks: feedbackTicks}
		result.Miss = true
	}

	result.State = g.State()
	return result
}

// onHit books a passed tile.
func (g *Game) onHit(out rhythm.Outcome) {
	levelDone := out.Kind == rhythm.OutcomeLevelComplete || out.Kind == rhythm.OutcomeGameComplete
	points := g.scorer.Hit(levelDone)
	g.stats.TilesHit++
	g.stats.BestStreak = g.scorer.BestStreak()
	g.feedback = Feedback{Kind: out.Kind, Points: points, ticks: feedbackTicks}

	if levelDone {
		g.stats.LevelsCleared++
		g.stats.Laps = g.engine.State().Lap()
		g.logger.Info("level complete", "mode", g.id, "cleared", g.stats.LevelsCleared, "score", g.scorer.Score())
	}
	if out.Kind == rhythm.OutcomeGameComplete {
		g.gameOver = true
		g.won = true
		g.logger.Info("campaign complete", "score", g.scorer.Score(), "misses", g.stats.Misses)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := g.engine.State()
	return core.GameState{
		Score:    g.scorer.Score(),
		Level:    state.Map().CurrentLevel(),
		Tile:     state.CurrentTile(),
		Streak:   g.scorer.Streak(),
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Stats returns the run summary so far.
func (g *Game) Stats() RunStats {
	return g.stats
}

// Feedback returns the last judged trigger.
func (g *Game) Feedback() Feedback {
	return g.feedback
}

// Multiplier returns the current streak multiplier.
func (g *Game) Multiplier() int {
	return g.scorer.Multiplier()
}

// Frame returns the engine's render contract.
func (g *Game) Frame() rhythm.Frame {
	return g.engine.Frame()
}

// Snapshot returns the engine snapshot for determinism checks.
func (g *Game) Snapshot() rhythm.Snapshot {
	return g.engine.Snapshot()
}

// factory returns a registry factory for a mode.
func factory(id string) registry.Factory {
	return func(s registry.Setup) (registry.Game, error) {
		g, err := New(id, s)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          ModeCampaign,
		Title:       "Campaign",
		Description: "Play every level once, in order",
	}, factory(ModeCampaign))
	registry.Register(registry.GameInfo{
		ID:          ModeEndless,
		Title:       "Endless",
		Description: "Levels repeat forever and speed up each lap",
	}, factory(ModeEndless))
}
