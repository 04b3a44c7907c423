package config

import "math"

// Ramp is a value that grows linearly with elapsed run time and never
// decreases. Max of 0 leaves it uncapped.
type Ramp struct {
	Base      float64
	PerSecond float64
	Max       float64
}

// Advance returns v increased by PerSecond*dt, respecting Max.
// Negative growth is ignored so the value stays monotonic.
func (r Ramp) Advance(v, dt float64) float64 {
	if dt <= 0 || r.PerSecond <= 0 {
		return v
	}
	next := v + r.PerSecond*dt
	if r.Max > 0 && next > r.Max {
		next = math.Max(v, r.Max)
	}
	return next
}

// RocketRamp returns the rocket's linear speed ramp.
func (c RocketConfig) RocketRamp() Ramp {
	return Ramp{Base: c.Rocket.StartSpeed, PerSecond: c.Rocket.SpeedRamp, Max: c.Rocket.MaxSpeed}
}

// ObstacleRamp returns the obstacle scroll speed ramp.
func (c RocketConfig) ObstacleRamp() Ramp {
	return Ramp{Base: c.Obstacles.StartSpeed, PerSecond: c.Obstacles.SpeedRamp, Max: c.Obstacles.MaxSpeed}
}

// presetScale holds the multipliers a preset applies to the loaded config.
type presetScale struct {
	speed       float64 // Start speeds
	ramp        float64 // Speed ramps
	gapVariance float64
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {speed: 0.8, ramp: 0.5, gapVariance: 1.5},
	DifficultyNormal: {speed: 1.0, ramp: 1.0, gapVariance: 1.0},
	DifficultyHard:   {speed: 1.25, ramp: 1.6, gapVariance: 0.5},
}

// ApplyPreset modifies the config based on a difficulty preset.
// Fixed keeps the configured start speeds and disables both ramps.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *RocketConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Rocket.SpeedRamp = 0
		cfg.Obstacles.SpeedRamp = 0
		return
	}

	s, ok := presetScales[preset]
	if !ok {
		return
	}
	cfg.Rocket.StartSpeed *= s.speed
	cfg.Obstacles.StartSpeed *= s.speed
	cfg.Rocket.SpeedRamp *= s.ramp
	cfg.Obstacles.SpeedRamp *= s.ramp
	cfg.Obstacles.GapVariance *= s.gapVariance
}
