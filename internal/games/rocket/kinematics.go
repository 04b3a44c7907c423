package rocket

import (
	"math"

	"github.com/vovakirdan/unrocketry/internal/config"
	"github.com/vovakirdan/unrocketry/internal/core"
)

// Rocket is the player's ship. X, Y is the centre of its hull in world units.
// Rotation is counter-clockwise in radians, so a positive angle leans the
// nose left and drifts the rocket left.
type Rocket struct {
	X, Y      float64
	Rotation  float64
	Direction float64 // +1 or -1
	Speed     float64
	Width     float64
	Height    float64

	rotationRate float64 // radians per second
	maxRotation  float64 // radians
	maxDelta     float64 // seconds
}

// NewRocket creates a rocket at (x, y) with the tuning from cfg.
func NewRocket(cfg config.RocketTuning, x, y float64) Rocket {
	return Rocket{
		X:            x,
		Y:            y,
		Direction:    1,
		Speed:        cfg.StartSpeed,
		Width:        cfg.Width,
		Height:       cfg.Height,
		rotationRate: cfg.RotationRate * math.Pi / 180,
		maxRotation:  cfg.MaxRotation * math.Pi / 180,
		maxDelta:     cfg.MaxDelta,
	}
}

// MaxRotation returns the rotation limit in radians.
func (r *Rocket) MaxRotation() float64 {
	return r.maxRotation
}

// ClampDelta bounds a frame time to [0, limit]. NaN and negative values become 0.
func ClampDelta(dt, limit float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > limit {
		return limit
	}
	return dt
}

// Advance moves the rocket forward by dt seconds and reports whether it
// ended up pinned against one of the horizontal limits.
//
// Rotation sweeps toward the current direction's limit. On the tick it
// reaches or crosses the limit, rotation is set to limit*direction (the
// direction before the flip) and the direction inverts.
func (r *Rocket) Advance(dt, fieldWidth, padding float64) bool {
	dt = ClampDelta(dt, r.maxDelta)

	if dt > 0 {
		next := r.Rotation + r.rotationRate*dt*r.Direction
		if math.Abs(next) >= r.maxRotation {
			r.Rotation = r.maxRotation * r.Direction
			r.Direction = -r.Direction
		} else {
			r.Rotation = next
		}
	}

	vx := r.Speed * -math.Sin(r.Rotation)
	r.X += vx * dt

	lo, hi := -padding, fieldWidth+padding
	r.X = core.ClampF(r.X, lo, hi)
	return r.X <= lo || r.X >= hi
}

// ToggleDrift flips the drift direction.
func (r *Rocket) ToggleDrift() {
	r.Direction = -r.Direction
}

// Hull returns the rocket's silhouette in world units: a pointed nose on a
// rectangular body, rotated and placed at the rocket's position.
func (r *Rocket) Hull() core.Polygon {
	hw, hh := r.Width/2, r.Height/2
	shoulder := hh / 3
	local := core.Polygon{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: shoulder},
		{X: 0, Y: hh},
		{X: -hw, Y: shoulder},
	}
	return local.Rotate(r.Rotation).Translate(core.Vec{X: r.X, Y: r.Y})
}

// Tail returns the centre of the engine nozzle in world units.
func (r *Rocket) Tail() core.Vec {
	return core.Vec{X: 0, Y: -r.Height / 2}.Rotate(r.Rotation).Add(core.Vec{X: r.X, Y: r.Y})
}
