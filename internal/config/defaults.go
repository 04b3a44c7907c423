package config

import (
	_ "embed"
)

//go:embed defaults/rocket.yaml
var defaultRocketYAML []byte

// DefaultRocketConfig returns the hard-coded fallback configuration.
// It mirrors defaults/rocket.yaml.
func DefaultRocketConfig() RocketConfig {
	return RocketConfig{
		Field: FieldConfig{
			UnitsPerCol: 10,
			UnitsPerRow: 20,
			EdgePadding: 10,
			WallHit:     true,
		},
		Rocket: RocketTuning{
			Width:        40,
			Height:       60,
			BaselineY:    0.2,
			StartSpeed:   150,
			SpeedRamp:    2,
			RotationRate: 90,
			MaxRotation:  60,
			MaxDelta:     0.1,
		},
		Obstacles: ObstacleTuning{
			Height:      20,
			StartSpeed:  200,
			SpeedRamp:   5,
			MinGapRatio: 1.3,
			GapVariance: 30,
			SplitRatios: []float64{0.4, 0.6},
			MinSpacing:  300,
			MaxSpacing:  500,
			MinCount:    2,
			MaxCount:    8,
			HitboxInset: 0.1,
			TierStep:    600,
			MaxTier:     5,
		},
		Background: BackgroundConfig{
			Stars:    40,
			Parallax: 0.35,
		},
		Particles: ParticleConfig{
			Enabled: true,
			Max:     96,
			Flame: EmitterConfig{
				BirthRate:     60,
				Lifetime:      0.15,
				LifetimeRange: 0.1,
				Speed:         250,
				SpeedRange:    80,
				Spread:        30,
			},
			Smoke: EmitterConfig{
				BirthRate:     20,
				Lifetime:      0.8,
				LifetimeRange: 0.2,
				Speed:         200,
				SpeedRange:    20,
				Spread:        15,
			},
		},
		Scores: ScoresConfig{
			MaxEntries: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRocketYAML
}
