package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in every config directory.
const ConfigFile = "rhythm.yaml"

// localConfigDir is the working-directory config folder.
var localConfigDir = "configs"

// Source names where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadRhythm loads the rhythm configuration.
// Search order: customPath -> ~/.rhythm/configs/rhythm.yaml -> ./configs/rhythm.yaml -> embedded default
func LoadRhythm(customPath string) (RhythmConfig, error) {
	cfg, _, err := LoadRhythmFrom(customPath)
	return cfg, err
}

// LoadRhythmFrom is LoadRhythm that also reports which source won.
// Missing keys keep their default values.
func LoadRhythmFrom(customPath string) (RhythmConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRhythmConfig(), SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRhythm(data)
		if err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRhythm(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join(localConfigDir, ConfigFile)); err == nil {
		if cfg, err := parseRhythm(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRhythm(defaultRhythmYAML)
	if err != nil {
		return DefaultRhythmConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func parseRhythm(data []byte) (RhythmConfig, error) {
	cfg := DefaultRhythmConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultRhythmConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultRhythmConfig(), err
	}
	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c RhythmConfig) Validate() error {
	var errs []error
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"physics.speed", c.Physics.Speed},
		{"physics.ball_distance", c.Physics.BallDistance},
		{"geometry.tile_width", c.Geometry.TileWidth},
		{"geometry.tile_height", c.Geometry.TileHeight},
		{"geometry.tile_space", c.Geometry.TileSpace},
		{"geometry.tile_thickness", c.Geometry.TileThickness},
		{"geometry.ball_radius", c.Geometry.BallRadius},
		{"gameplay.lap_speed_bonus", c.Gameplay.LapSpeedBonus},
		{"difficulty.initial_level", c.Difficulty.InitialLevel},
		{"difficulty.scaling.speed_multiplier", c.Difficulty.Scaling.SpeedMultiplier},
	} {
		// A non-finite value would turn every pointer angle into NaN
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			errs = append(errs, fmt.Errorf("%s must be a finite number, got %g", f.name, f.v))
		} else if f.v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", f.name, f.v))
		}
	}
	if c.Geometry.TileWidth == 0 || c.Geometry.TileHeight == 0 {
		errs = append(errs, fmt.Errorf("geometry tile size must be positive, got %gx%g", c.Geometry.TileWidth, c.Geometry.TileHeight))
	}
	switch c.Gameplay.EndPolicy {
	case "", "finish", "loop":
	default:
		errs = append(errs, fmt.Errorf("gameplay.end_policy must be finish or loop, got %q", c.Gameplay.EndPolicy))
	}
	switch c.Difficulty.Progression.Type {
	case "", "tiles", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be tiles, time or none, got %q", c.Difficulty.Progression.Type))
	}
	return errors.Join(errs...)
}

// UserConfigDir returns ~/.rhythm/configs, or empty if home is unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rhythm", "configs")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

// ApplyRhythmPreset modifies the config based on a difficulty preset.
func ApplyRhythmPreset(cfg *RhythmConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the sweep itself so early levels feel different too
	switch preset {
	case DifficultyEasy:
		cfg.Physics.Speed = 4
		cfg.Gameplay.LapSpeedBonus = 0.5
	case DifficultyHard:
		cfg.Physics.Speed = 6
		cfg.Gameplay.LapSpeedBonus = 1.5
	}
}
