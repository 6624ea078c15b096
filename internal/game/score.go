package game

import "github.com/vovakirdan/tui-rhythm/internal/config"

// Scorer turns judged triggers into points. Consecutive hits build a streak
// that raises the multiplier every StreakStep hits, up to MaxMultiplier.
type Scorer struct {
	pointsPerTile int
	levelBonus    int
	streakStep    int
	maxMultiplier int

	score  int
	streak int
	best   int
}

// NewScorer creates a scorer from the gameplay config.
func NewScorer(cfg config.RhythmGameplay) Scorer {
	return Scorer{
		pointsPerTile: cfg.PointsPerTile,
		levelBonus:    cfg.LevelBonus,
		streakStep:    cfg.StreakStep,
		maxMultiplier: cfg.MaxMultiplier,
	}
}

// Multiplier returns the factor applied to the next hit.
func (s *Scorer) Multiplier() int {
	if s.streakStep <= 0 {
		return 1
	}
	m := 1 + s.streak/s.streakStep
	if s.maxMultiplier > 0 && m > s.maxMultiplier {
		m = s.maxMultiplier
	}
	return m
}

// Hit scores a passed tile and returns the points awarded.
// levelDone adds the level bonus on top.
func (s *Scorer) Hit(levelDone bool) int {
	points := s.pointsPerTile * s.Multiplier()
	if levelDone {
		points += s.levelBonus
	}
	s.score += points
	s.streak++
	if s.streak > s.best {
		s.best = s.streak
	}
	return points
}

// Miss breaks the streak.
func (s *Scorer) Miss() {
	s.streak = 0
}

// Reset clears score and streaks.
func (s *Scorer) Reset() {
	s.score = 0
	s.streak = 0
	s.best = 0
}

// Score returns the total points.
func (s *Scorer) Score() int { return s.score }

// Streak returns the current run of consecutive hits.
func (s *Scorer) Streak() int { return s.streak }

// BestStreak returns the longest streak since the last reset.
func (s *Scorer) BestStreak() int { return s.best }
