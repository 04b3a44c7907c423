// Package config provides YAML-based game configuration loading and
// difficulty tuning for the rocket game.
package config

import (
	"errors"
	"fmt"
)

// RocketConfig contains all tuning for the game.
type RocketConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Rocket     RocketTuning     `yaml:"rocket"`
	Obstacles  ObstacleTuning   `yaml:"obstacles"`
	Background BackgroundConfig `yaml:"background"`
	Particles  ParticleConfig   `yaml:"particles"`
	Scores     ScoresConfig     `yaml:"scores"`
}

// FieldConfig defines the play field in world units.
// Width and Height of 0 derive the field from the terminal size.
type FieldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	UnitsPerCol float64 `yaml:"units_per_col"` // World units covered by one terminal column
	UnitsPerRow float64 `yaml:"units_per_row"` // World units covered by one terminal row
	EdgePadding float64 `yaml:"edge_padding"`  // How far the rocket centre may pass a side edge
	WallHit     bool    `yaml:"wall_collision"`
}

// RocketTuning defines rocket size and kinematics.
type RocketTuning struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BaselineY    float64 `yaml:"baseline_y"` // Fraction of field height
	StartSpeed   float64 `yaml:"start_speed"`
	SpeedRamp    float64 `yaml:"speed_ramp"` // Units/s added per second
	MaxSpeed     float64 `yaml:"max_speed"`  // 0 = uncapped
	RotationRate float64 `yaml:"rotation_rate"`
	MaxRotation  float64 `yaml:"max_rotation"` // Degrees
	MaxDelta     float64 `yaml:"max_delta"`    // Largest dt accepted per tick, seconds
}

// ObstacleTuning defines obstacle generation and motion.
type ObstacleTuning struct {
	Height      float64   `yaml:"height"`
	StartSpeed  float64   `yaml:"start_speed"`
	SpeedRamp   float64   `yaml:"speed_ramp"`
	MaxSpeed    float64   `yaml:"max_speed"` // 0 = uncapped
	MinGapRatio float64   `yaml:"min_gap_ratio"`
	GapVariance float64   `yaml:"gap_variance"`
	SplitRatios []float64 `yaml:"split_ratios"`
	MinSpacing  float64   `yaml:"min_spacing"`
	MaxSpacing  float64   `yaml:"max_spacing"`
	MinCount    int       `yaml:"min_count"`
	MaxCount    int       `yaml:"max_count"`
	HitboxInset float64   `yaml:"hitbox_inset"`
	TierStep    int       `yaml:"tier_step"` // Score per visual tier
	MaxTier     int       `yaml:"max_tier"`
}

// BackgroundConfig defines the scrolling star field.
type BackgroundConfig struct {
	Stars    int     `yaml:"stars"`
	Parallax float64 `yaml:"parallax"`
}

// ParticleConfig defines the rocket exhaust.
type ParticleConfig struct {
	Enabled bool          `yaml:"enabled"`
	Max     int           `yaml:"max"`
	Flame   EmitterConfig `yaml:"flame"`
	Smoke   EmitterConfig `yaml:"smoke"`
}

// EmitterConfig defines a single particle emitter.
type EmitterConfig struct {
	BirthRate     float64 `yaml:"birth_rate"` // Particles per second
	Lifetime      float64 `yaml:"lifetime"`
	LifetimeRange float64 `yaml:"lifetime_range"`
	Speed         float64 `yaml:"speed"`
	SpeedRange    float64 `yaml:"speed_range"`
	Spread        float64 `yaml:"spread"` // Emission half-angle, degrees
}

// ScoresConfig defines leaderboard behaviour.
type ScoresConfig struct {
	MaxEntries int `yaml:"max_entries"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate rejects tuning the simulation cannot run with.
func (c RocketConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Field.Width >= 0 && c.Field.Height >= 0, "field size must not be negative")
	check(c.Field.UnitsPerCol > 0 && c.Field.UnitsPerRow > 0, "units per cell must be positive")
	check(c.Field.EdgePadding >= 0, "edge_padding must not be negative")

	check(c.Rocket.Width > 0 && c.Rocket.Height > 0, "rocket size must be positive")
	check(c.Rocket.BaselineY > 0 && c.Rocket.BaselineY < 1, "rocket baseline_y must be in (0, 1)")
	check(c.Rocket.StartSpeed >= 0, "rocket start_speed must not be negative")
	check(c.Rocket.SpeedRamp >= 0, "rocket speed_ramp must not be negative")
	check(c.Rocket.RotationRate > 0, "rocket rotation_rate must be positive")
	check(c.Rocket.MaxRotation > 0 && c.Rocket.MaxRotation < 90, "rocket max_rotation must be in (0, 90)")
	check(c.Rocket.MaxDelta > 0, "rocket max_delta must be positive")

	check(c.Obstacles.Height > 0, "obstacle height must be positive")
	check(c.Obstacles.StartSpeed >= 0, "obstacle start_speed must not be negative")
	check(c.Obstacles.SpeedRamp >= 0, "obstacle speed_ramp must not be negative")
	check(c.Obstacles.MinGapRatio >= 1, "min_gap_ratio must be at least 1")
	check(c.Obstacles.GapVariance >= 0, "gap_variance must not be negative")
	check(len(c.Obstacles.SplitRatios) > 0, "split_ratios must not be empty")
	for _, r := range c.Obstacles.SplitRatios {
		check(r >= 0 && r <= 1, "split ratio %v must be in [0, 1]", r)
	}
	check(c.Obstacles.MinSpacing > c.Obstacles.Height, "min_spacing must exceed obstacle height")
	check(c.Obstacles.MaxSpacing >= c.Obstacles.MinSpacing, "max_spacing must be >= min_spacing")
	check(c.Obstacles.MinCount >= 0, "min_count must not be negative")
	check(c.Obstacles.MaxCount >= 2, "max_count must allow at least one pair")
	check(c.Obstacles.HitboxInset >= 0 && c.Obstacles.HitboxInset < 0.5, "hitbox_inset must be in [0, 0.5)")
	check(c.Obstacles.TierStep > 0, "tier_step must be positive")
	check(c.Obstacles.MaxTier >= 0, "max_tier must not be negative")

	check(c.Background.Stars >= 0, "star count must not be negative")
	check(c.Particles.Max >= 0, "particle max must not be negative")
	check(c.Scores.MaxEntries > 0, "scores max_entries must be positive")

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
