package rocket

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/unrocketry/internal/config"
	"github.com/vovakirdan/unrocketry/internal/core"
)

// Side tells which wall an obstacle grows from.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Obstacle is one half of a pair: a bar reaching in from a side wall.
type Obstacle struct {
	Box  core.Box
	Side Side
	Pair int // Sequence number of the pair, starting at 1
	Tier int // Visual tier, cosmetic only
}

// Hitbox returns the collision box. Every side moves in by inset times the
// bar's shorter side, so the edge facing the gap gives the same slack at any
// width.
func (o Obstacle) Hitbox(inset float64) core.Box {
	return o.Box.Inset(inset)
}

// Generator spawns obstacle pairs ahead of the rocket.
type Generator struct {
	cfg         config.ObstacleTuning
	rocketWidth float64
	rng         *rand.Rand
	pairs       int
}

// NewGenerator creates a generator with the given RNG seed.
func NewGenerator(cfg config.RocketConfig, seed int64) *Generator {
	g := &Generator{
		cfg:         cfg.Obstacles,
		rocketWidth: cfg.Rocket.Width,
	}
	g.Reset(seed)
	return g
}

// Reset restarts the pair sequence and reseeds the RNG.
func (g *Generator) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.pairs = 0
}

// MinGap returns the narrowest gap a pair may have.
func (g *Generator) MinGap() float64 {
	return g.rocketWidth * g.cfg.MinGapRatio
}

// Tier maps a score to a visual tier: one step per TierStep points, capped.
func (g *Generator) Tier(score int) int {
	if score < 0 || g.cfg.TierStep <= 0 {
		return 0
	}
	return min(score/g.cfg.TierStep, g.cfg.MaxTier)
}

// Capacity returns the most obstacles Fill keeps live in a field of height
// fieldH: MaxCount, raised when the field is tall enough to hold more pairs
// at MinSpacing.
func (g *Generator) Capacity(fieldH float64) int {
	pairs := int(math.Ceil((fieldH+g.cfg.Height)/g.cfg.MinSpacing)) + 1
	return max(g.cfg.MaxCount, 2*pairs)
}

// Fill appends at most one pair to obstacles and returns the result.
// A pair is added while the list holds fewer than MinCount obstacles, or once
// the newest pair has fully entered the window. The list never grows past
// Capacity.
func (g *Generator) Fill(obstacles []Obstacle, score int, fieldW, fieldH float64) []Obstacle {
	if len(obstacles)+2 > g.Capacity(fieldH) {
		return obstacles
	}

	y := fieldH
	if n := len(obstacles); n > 0 {
		newest := obstacles[n-1]
		if n >= g.cfg.MinCount && newest.Box.Top() > fieldH {
			return obstacles
		}
		y = max(newest.Box.Y+g.spacing(), fieldH)
	}

	return append(obstacles, g.pair(y, score, fieldW)...)
}

// spacing draws the vertical distance to the previous pair.
func (g *Generator) spacing() float64 {
	return g.cfg.MinSpacing + g.rng.Float64()*(g.cfg.MaxSpacing-g.cfg.MinSpacing)
}

// pair builds two obstacles at height y leaving a randomized gap between them.
func (g *Generator) pair(y float64, score int, fieldW float64) []Obstacle {
	gap := g.MinGap() + g.rng.Float64()*g.cfg.GapVariance
	ratio := g.cfg.SplitRatios[g.rng.Intn(len(g.cfg.SplitRatios))]

	if gap > fieldW {
		gap = fieldW
	}
	rest := fieldW - gap
	leftW := rest * ratio
	rightW := rest - leftW

	g.pairs++
	tier := g.Tier(score)
	h := g.cfg.Height

	return []Obstacle{
		{Box: core.Box{X: 0, Y: y, W: leftW, H: h}, Side: SideLeft, Pair: g.pairs, Tier: tier},
		{Box: core.Box{X: leftW + gap, Y: y, W: rightW, H: h}, Side: SideRight, Pair: g.pairs, Tier: tier},
	}
}

// Gap returns the horizontal gap between the two halves of a pair.
func Gap(left, right Obstacle) float64 {
	return right.Box.X - left.Box.Right()
}
