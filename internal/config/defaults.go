package config

import (
	_ "embed"
)

//go:embed defaults/rhythm.yaml
var defaultRhythmYAML []byte

// DefaultRhythmConfig returns the default rhythm configuration.
func DefaultRhythmConfig() RhythmConfig {
	return RhythmConfig{
		Physics: RhythmPhysics{
			Speed:        5,
			BallDistance: 0,
		},
		Geometry: RhythmGeometry{
			TileWidth:     70,
			TileHeight:    70,
			TileSpace:     5,
			TileThickness: 10,
			BallRadius:    20,
		},
		Gameplay: RhythmGameplay{
			EndPolicy:     "finish",
			LapSpeedBonus: 1,
			PointsPerTile: 10,
			LevelBonus:    100,
			StreakStep:    8,
			MaxMultiplier: 4,
			FollowCamera:  true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "tiles",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRhythmYAML
}
