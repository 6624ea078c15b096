// Package record saves finished runs for every frontend.
package record

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/game"
	"github.com/vovakirdan/tui-rhythm/internal/registry"
	"github.com/vovakirdan/tui-rhythm/internal/storage"
)

// statsReporter is implemented by games that can summarise a run.
type statsReporter interface {
	Stats() game.RunStats
}

// Recorder saves the current run at most once. A nil store disables it.
type Recorder struct {
	store   *storage.Store
	logger  *log.Logger
	started time.Time
	done    bool
	now     func() time.Time
}

// New creates a recorder and starts its clock.
func New(store *storage.Store) *Recorder {
	r := &Recorder{
		store:  store,
		logger: log.Default().WithPrefix("record"),
		now:    time.Now,
	}
	r.started = r.now()
	return r
}

// SetLogger replaces the recorder's logger.
func (r *Recorder) SetLogger(l *log.Logger) {
	if l != nil {
		r.logger = l
	}
}

// Restart arms the recorder for a new run.
func (r *Recorder) Restart() {
	r.done = false
	r.started = r.now()
}

// Done reports whether the current run has been saved or skipped.
func (r *Recorder) Done() bool {
	return r.done
}

// Outcome picks the stored outcome for a run that ends with exit.
// A won game is always completed.
func Outcome(state core.GameState, exit string) string {
	if state.GameOver && state.Won {
		return storage.OutcomeCompleted
	}
	return exit
}

// Save records g's run with the given outcome. Runs where no trigger was
// judged are skipped. Failures are logged only.
func (r *Recorder) Save(g registry.Game, outcome string) {
	if r.done || r.store == nil {
		return
	}
	r.done = true

	state := g.State()
	run := storage.RunRecord{
		Mode:     g.ID(),
		Score:    state.Score,
		Outcome:  outcome,
		Duration: int(r.now().Sub(r.started).Seconds()),
	}
	if sr, ok := g.(statsReporter); ok {
		stats := sr.Stats()
		if stats.TilesHit+stats.Misses == 0 {
			return
		}
		run.StartLevel = stats.StartLevel
		run.LevelsCleared = stats.LevelsCleared
		run.TilesHit = stats.TilesHit
		run.Misses = stats.Misses
		run.BestStreak = stats.BestStreak
	}

	if state.Score > 0 {
		if _, err := r.store.SaveScore(g.ID(), state.Score, state.Level); err != nil {
			r.logger.Warn("could not save score", "error", err)
		}
	}
	id, err := r.store.SaveRun(run)
	if err != nil {
		r.logger.Warn("could not save run", "error", err)
		return
	}
	r.logger.Debug("run saved", "run", id, "mode", run.Mode, "score", run.Score, "outcome", outcome)
}
