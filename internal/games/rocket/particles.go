package rocket

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/unrocketry/internal/config"
	"github.com/vovakirdan/unrocketry/internal/core"
)

// ParticleKind selects how a particle is drawn.
type ParticleKind int

const (
	ParticleFlame ParticleKind = iota
	ParticleSmoke
)

// Particle is a single exhaust puff in world units.
type Particle struct {
	Pos  core.Vec
	Vel  core.Vec
	Age  float64
	Life float64
	Kind ParticleKind
}

// Fade returns how far through its life the particle is, in [0, 1].
func (p Particle) Fade() float64 {
	if p.Life <= 0 {
		return 1
	}
	return core.ClampF(p.Age/p.Life, 0, 1)
}

// Exhaust emits flame and smoke from the rocket's tail.
// It has no effect on gameplay.
type Exhaust struct {
	cfg       config.ParticleConfig
	rng       *rand.Rand
	particles []Particle
	flameDebt float64 // Fractional particles owed to the next update
	smokeDebt float64
}

// NewExhaust creates an exhaust with its own RNG stream.
func NewExhaust(cfg config.ParticleConfig, seed int64) *Exhaust {
	e := &Exhaust{cfg: cfg}
	e.Reset(seed)
	return e
}

// Reset removes all particles.
func (e *Exhaust) Reset(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
	e.particles = e.particles[:0]
	e.flameDebt = 0
	e.smokeDebt = 0
}

// Update ages and moves existing particles, drops expired ones, and emits
// new ones at tail pointing away from the nose.
func (e *Exhaust) Update(dt float64, tail core.Vec, rotation float64) {
	if !e.cfg.Enabled || dt <= 0 {
		return
	}

	alive := e.particles[:0]
	for _, p := range e.particles {
		p.Age += dt
		if p.Age >= p.Life {
			continue
		}
		p.Pos.X += p.Vel.X * dt
		p.Pos.Y += p.Vel.Y * dt
		alive = append(alive, p)
	}
	e.particles = alive

	e.flameDebt = e.emit(ParticleFlame, e.cfg.Flame, e.flameDebt, dt, tail, rotation)
	e.smokeDebt = e.emit(ParticleSmoke, e.cfg.Smoke, e.smokeDebt, dt, tail, rotation)
}

// emit spawns BirthRate*dt particles, carrying the fraction over.
func (e *Exhaust) emit(kind ParticleKind, ec config.EmitterConfig, debt, dt float64, tail core.Vec, rotation float64) float64 {
	debt += ec.BirthRate * dt
	for debt >= 1 {
		debt--
		if len(e.particles) >= e.cfg.Max {
			continue
		}
		spread := (e.rng.Float64()*2 - 1) * ec.Spread * math.Pi / 180
		speed := ec.Speed + (e.rng.Float64()*2-1)*ec.SpeedRange
		life := ec.Lifetime + (e.rng.Float64()*2-1)*ec.LifetimeRange
		dir := core.Vec{X: 0, Y: -1}.Rotate(rotation + spread)
		e.particles = append(e.particles, Particle{
			Pos:  tail,
			Vel:  core.Vec{X: dir.X * speed, Y: dir.Y * speed},
			Life: math.Max(life, 0.01),
			Kind: kind,
		})
	}
	return debt
}

// Particles returns the live particles.
func (e *Exhaust) Particles() []Particle {
	return e.particles
}
