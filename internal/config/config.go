// Package config provides YAML-based game configuration loading and
// difficulty management for the rhythm game.
package config

// RhythmConfig contains all configuration for the rhythm game.
type RhythmConfig struct {
	Physics    RhythmPhysics    `yaml:"physics"`
	Geometry   RhythmGeometry   `yaml:"geometry"`
	Gameplay   RhythmGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RhythmPhysics defines pointer motion parameters.
type RhythmPhysics struct {
	Speed        float64 `yaml:"speed"`         // Degrees the pointer sweeps per tick
	BallDistance float64 `yaml:"ball_distance"` // Orbit radius, 0 = tile width + spacing
}

// RhythmGeometry defines tile and pointer sizes in world units.
type RhythmGeometry struct {
	TileWidth     float64 `yaml:"tile_width"`
	TileHeight    float64 `yaml:"tile_height"`
	TileSpace     float64 `yaml:"tile_space"`
	TileThickness float64 `yaml:"tile_thickness"`
	BallRadius    float64 `yaml:"ball_radius"`
}

// RhythmGameplay defines progression and scoring parameters.
type RhythmGameplay struct {
	EndPolicy     string  `yaml:"end_policy"`      // "finish" or "loop"
	LapSpeedBonus float64 `yaml:"lap_speed_bonus"` // Extra degrees per tick for each lap in loop mode
	PointsPerTile int     `yaml:"points_per_tile"`
	LevelBonus    int     `yaml:"level_bonus"`
	StreakStep    int     `yaml:"streak_step"` // Hits needed per extra multiplier, 0 disables
	MaxMultiplier int     `yaml:"max_multiplier"`
	FollowCamera  bool    `yaml:"follow_camera"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "tiles", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Tiles/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
