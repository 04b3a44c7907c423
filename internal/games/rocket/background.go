package rocket

import (
	"math/rand"

	"github.com/vovakirdan/unrocketry/internal/config"
)

// Star is one background point in world units.
type Star struct {
	X, Y   float64
	Bright bool
}

// Background is a star field that scrolls slower than the obstacles.
type Background struct {
	cfg   config.BackgroundConfig
	stars []Star
	rng   *rand.Rand
}

// NewBackground creates an empty star field. Call Reset to populate it.
func NewBackground(cfg config.BackgroundConfig) *Background {
	return &Background{cfg: cfg}
}

// Reset scatters the stars over the field.
func (b *Background) Reset(seed int64, fieldW, fieldH float64) {
	b.rng = rand.New(rand.NewSource(seed))
	b.stars = b.stars[:0]
	for range b.cfg.Stars {
		b.stars = append(b.stars, Star{
			X:      b.rng.Float64() * fieldW,
			Y:      b.rng.Float64() * fieldH,
			Bright: b.rng.Intn(4) == 0,
		})
	}
}

// Scroll moves the stars down by parallax * obstacleSpeed * dt.
// Stars leaving the bottom reappear at the top at a new x.
func (b *Background) Scroll(obstacleSpeed, dt, fieldW, fieldH float64) {
	if fieldH <= 0 {
		return
	}
	dy := b.cfg.Parallax * obstacleSpeed * dt
	for i := range b.stars {
		s := &b.stars[i]
		s.Y -= dy
		for s.Y < 0 {
			s.Y += fieldH
			s.X = b.rng.Float64() * fieldW
		}
	}
}

// Stars returns the current star positions.
func (b *Background) Stars() []Star {
	return b.stars
}
