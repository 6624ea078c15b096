package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run outcomes.
const (
	OutcomeCompleted = "completed" // Every level cleared
	OutcomeQuit      = "quit"      // Player left mid-run
	OutcomeRestarted = "restarted" // Player restarted before finishing
)

// RunRecord is one played run.
type RunRecord struct {
	ID            int64
	RunID         string
	Mode          string
	StartLevel    int
	LevelsCleared int
	TilesHit      int
	Misses        int
	BestStreak    int
	Score         int
	Outcome       string
	Duration      int // Duration in seconds
	CreatedAt     time.Time
}

// Accuracy returns hits over judged triggers, or 0 with none.
func (r RunRecord) Accuracy() float64 {
	total := r.TilesHit + r.Misses
	if total == 0 {
		return 0
	}
	return float64(r.TilesHit) / float64(total)
}

// SaveRun records a run. A missing RunID is filled with a fresh UUID.
// Returns the run ID.
func (s *Store) SaveRun(run RunRecord) (string, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	if run.Outcome == "" {
		run.Outcome = OutcomeQuit
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, mode, start_level, levels_cleared, tiles_hit, misses, best_streak, score, outcome, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.Mode,
		run.StartLevel,
		run.LevelsCleared,
		run.TilesHit,
		run.Misses,
		run.BestStreak,
		run.Score,
		run.Outcome,
		run.Duration,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.RunID, nil
}

// RunByID retrieves a run by its run ID. Returns nil if it does not exist.
func (s *Store) RunByID(runID string) (*RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, mode, start_level, levels_cleared, tiles_hit, misses,
		        best_streak, score, outcome, duration_secs, created_at
		 FROM runs
		 WHERE run_id = ?`,
		runID,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &run, nil
}

// RecentRuns retrieves the most recent runs, optionally filtered by mode.
func (s *Store) RecentRuns(mode string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, run_id, mode, start_level, levels_cleared, tiles_hit, misses,
	                 best_streak, score, outcome, duration_secs, created_at
	          FROM runs`
	args := []any{}
	if mode != "" {
		query += " WHERE mode = ?"
		args = append(args, mode)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunStats aggregates every run of a mode.
type RunStats struct {
	Mode          string
	Runs          int
	Completed     int
	TilesHit      int
	Misses        int
	BestStreak    int
	TotalDuration int
}

// Accuracy returns hits over judged triggers, or 0 with none.
func (r RunStats) Accuracy() float64 {
	total := r.TilesHit + r.Misses
	if total == 0 {
		return 0
	}
	return float64(r.TilesHit) / float64(total)
}

// GetRunStats aggregates the runs of a mode.
func (s *Store) GetRunStats(mode string) (*RunStats, error) {
	stats := &RunStats{Mode: mode}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(tiles_hit), 0),
		        COALESCE(SUM(misses), 0),
		        COALESCE(MAX(best_streak), 0),
		        COALESCE(SUM(duration_secs), 0)
		 FROM runs WHERE mode = ?`,
		OutcomeCompleted, mode,
	).Scan(&stats.Runs, &stats.Completed, &stats.TilesHit, &stats.Misses, &stats.BestStreak, &stats.TotalDuration)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	return stats, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(r rowScanner) (RunRecord, error) {
	var run RunRecord
	var createdAt any
	err := r.Scan(
		&run.ID,
		&run.RunID,
		&run.Mode,
		&run.StartLevel,
		&run.LevelsCleared,
		&run.TilesHit,
		&run.Misses,
		&run.BestStreak,
		&run.Score,
		&run.Outcome,
		&run.Duration,
		&createdAt,
	)
	if err != nil {
		return RunRecord{}, err
	}
	run.CreatedAt = parseTime(createdAt)
	return run, nil
}
