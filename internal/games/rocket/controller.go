package rocket

import (
	"github.com/vovakirdan/unrocketry/internal/config"
	"github.com/vovakirdan/unrocketry/internal/core"
)

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Event is something the shell may want to react to, such as playing a cue.
type Event int

const (
	EventTurn Event = iota + 1
	EventGameOver
)

// Controller owns one run: the rocket, the obstacle list and the run state.
// It is driven by one Tick per frame and is not safe for concurrent use.
type Controller struct {
	cfg    config.RocketConfig
	fieldW float64
	fieldH float64

	rocket    Rocket
	obstacles []Obstacle
	gen       *Generator
	bg        *Background
	exhaust   *Exhaust

	phase         Phase
	score         int
	finalScore    int
	obstacleSpeed float64
	elapsed       float64
	events        []Event
}

// NewController creates an idle controller for a field of the given size.
func NewController(cfg config.RocketConfig, fieldW, fieldH float64) *Controller {
	c := &Controller{
		cfg:       cfg,
		fieldW:    fieldW,
		fieldH:    fieldH,
		obstacles: make([]Obstacle, 0, cfg.Obstacles.MaxCount),
		gen:       NewGenerator(cfg, 0),
		bg:        NewBackground(cfg.Background),
		exhaust:   NewExhaust(cfg.Particles, 0),
	}
	c.rocket = c.baselineRocket()
	return c
}

// Start begins the first run. It does nothing unless the controller is idle.
func (c *Controller) Start(seed int64) {
	if c.phase != PhaseIdle {
		return
	}
	c.Reset(seed)
}

// Reset discards the current run and starts a new one from the baseline.
func (c *Controller) Reset(seed int64) {
	c.rocket = c.baselineRocket()
	c.obstacles = c.obstacles[:0]
	c.gen.Reset(seed)
	c.bg.Reset(seed+1, c.fieldW, c.fieldH)
	c.exhaust.Reset(seed + 2)

	c.score = 0
	c.finalScore = 0
	c.obstacleSpeed = c.cfg.Obstacles.StartSpeed
	c.elapsed = 0
	c.events = c.events[:0]
	c.phase = PhaseRunning
}

// Resize changes the field dimensions. The run is not restarted; the caller
// decides whether to Reset.
func (c *Controller) Resize(fieldW, fieldH float64) {
	c.fieldW = fieldW
	c.fieldH = fieldH
}

func (c *Controller) baselineRocket() Rocket {
	return NewRocket(c.cfg.Rocket, c.fieldW/2, c.fieldH*c.cfg.Rocket.BaselineY)
}

// Tick advances the run by dt seconds. It does nothing unless running.
func (c *Controller) Tick(dt float64) {
	if c.phase != PhaseRunning {
		return
	}

	dt = ClampDelta(dt, c.cfg.Rocket.MaxDelta)
	c.elapsed += dt

	c.moveObstacles(dt)
	c.obstacles = c.gen.Fill(c.obstacles, c.score, c.fieldW, c.fieldH)

	atWall := c.rocket.Advance(dt, c.fieldW, c.cfg.Field.EdgePadding)
	c.bg.Scroll(c.obstacleSpeed, dt, c.fieldW, c.fieldH)
	c.exhaust.Update(dt, c.rocket.Tail(), c.rocket.Rotation)

	c.obstacleSpeed = c.cfg.ObstacleRamp().Advance(c.obstacleSpeed, dt)
	c.rocket.Speed = c.cfg.RocketRamp().Advance(c.rocket.Speed, dt)
	c.score++

	if (atWall && c.cfg.Field.WallHit) || collides(c.rocket.Hull(), c.obstacles, c.cfg.Obstacles.HitboxInset) {
		c.gameOver()
	}
}

// moveObstacles scrolls obstacles down and drops those below the window.
func (c *Controller) moveObstacles(dt float64) {
	dy := c.obstacleSpeed * dt
	kept := c.obstacles[:0]
	for _, o := range c.obstacles {
		o.Box.Y -= dy
		if o.Box.Top() < 0 {
			continue
		}
		kept = append(kept, o)
	}
	c.obstacles = kept
}

// collides reports whether the hull overlaps any obstacle's hitbox.
func collides(hull core.Polygon, obstacles []Obstacle, inset float64) bool {
	for _, o := range obstacles {
		if hull.IntersectsBox(o.Hitbox(inset)) {
			return true
		}
	}
	return false
}

// gameOver ends the run. Calls after the first are ignored.
func (c *Controller) gameOver() {
	if c.phase != PhaseRunning {
		return
	}
	c.phase = PhaseGameOver
	c.finalScore = c.score
	c.events = append(c.events, EventGameOver)
}

// ToggleDrift flips the rocket's drift direction while running.
func (c *Controller) ToggleDrift() {
	if c.phase != PhaseRunning {
		return
	}
	c.rocket.ToggleDrift()
	c.events = append(c.events, EventTurn)
}

// DrainEvents returns the events raised since the last call and clears them.
func (c *Controller) DrainEvents() []Event {
	if len(c.events) == 0 {
		return nil
	}
	out := make([]Event, len(c.events))
	copy(out, c.events)
	c.events = c.events[:0]
	return out
}

// Phase returns the current lifecycle state.
func (c *Controller) Phase() Phase { return c.phase }

// IsGameOver reports whether the run has ended.
func (c *Controller) IsGameOver() bool { return c.phase == PhaseGameOver }

// FinalScore returns the score captured at game over, or 0 before it.
func (c *Controller) FinalScore() int { return c.finalScore }

// Score returns the live score.
func (c *Controller) Score() int { return c.score }

// Rocket returns a copy of the rocket state.
func (c *Controller) Rocket() Rocket { return c.rocket }

// Obstacles returns the live obstacles, oldest first.
// The slice is owned by the controller and valid until the next Tick.
func (c *Controller) Obstacles() []Obstacle { return c.obstacles }

// ObstacleSpeed returns the current scroll speed in world units per second.
func (c *Controller) ObstacleSpeed() float64 { return c.obstacleSpeed }

// Elapsed returns the run time in seconds.
func (c *Controller) Elapsed() float64 { return c.elapsed }

// Tier returns the visual tier for the current score.
func (c *Controller) Tier() int { return c.gen.Tier(c.score) }

// Stars returns the background star field.
func (c *Controller) Stars() []Star { return c.bg.Stars() }

// Particles returns the live exhaust particles.
func (c *Controller) Particles() []Particle { return c.exhaust.Particles() }

// Field returns the field size in world units.
func (c *Controller) Field() (w, h float64) { return c.fieldW, c.fieldH }
