package rocket

import (
	"math"
	"testing"

	"github.com/vovakirdan/unrocketry/internal/config"
	"github.com/vovakirdan/unrocketry/internal/core"
)

func newTestController(cfg config.RocketConfig) *Controller {
	return NewController(cfg, testFieldW, testFieldH)
}

// survivableConfig makes every gap span the whole field so runs never end.
func survivableConfig() config.RocketConfig {
	cfg := config.DefaultRocketConfig()
	cfg.Obstacles.MinGapRatio = 100
	return cfg
}

// blockRocket drops a full-field obstacle on top of the rocket.
func blockRocket(c *Controller) {
	c.obstacles = append(c.obstacles, Obstacle{
		Box: core.Box{X: 0, Y: 0, W: testFieldW, H: testFieldH},
	})
}

func TestControllerIdleUntilStarted(t *testing.T) {
	c := newTestController(config.DefaultRocketConfig())

	if c.Phase() != PhaseIdle {
		t.Fatalf("new controller should be idle, got %v", c.Phase())
	}
	c.Tick(frame)
	if c.Score() != 0 || c.Elapsed() != 0 {
		t.Error("Tick should do nothing while idle")
	}
	c.ToggleDrift()
	if len(c.DrainEvents()) != 0 {
		t.Error("ToggleDrift should do nothing while idle")
	}

	c.Start(1)
	if c.Phase() != PhaseRunning {
		t.Fatalf("Start should enter running, got %v", c.Phase())
	}

	// Start only applies from idle
	c.Tick(frame)
	c.Start(2)
	if c.Score() != 1 {
		t.Errorf("second Start should be ignored, score=%d", c.Score())
	}
}

func TestControllerStartBaseline(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	c := newTestController(cfg)
	c.Start(1)

	r := c.Rocket()
	if r.X != testFieldW/2 || r.Y != testFieldH*cfg.Rocket.BaselineY {
		t.Errorf("rocket should start at the baseline, got (%v, %v)", r.X, r.Y)
	}
	if r.Rotation != 0 || r.Direction != 1 || r.Speed != cfg.Rocket.StartSpeed {
		t.Errorf("unexpected initial rocket %+v", r)
	}
	if c.ObstacleSpeed() != cfg.Obstacles.StartSpeed {
		t.Errorf("obstacle speed should start at %v, got %v", cfg.Obstacles.StartSpeed, c.ObstacleSpeed())
	}
	if len(c.Obstacles()) != 0 {
		t.Errorf("obstacle list should start empty, got %d", len(c.Obstacles()))
	}
}

func TestControllerScoreMonotonic(t *testing.T) {
	c := newTestController(config.DefaultRocketConfig())
	c.Start(5)

	prev := c.Score()
	for i := 0; i < 3000 && !c.IsGameOver(); i++ {
		if i%45 == 0 {
			c.ToggleDrift()
		}
		c.Tick(frame)
		if c.Score() < prev {
			t.Fatalf("tick %d: score decreased %d -> %d", i, prev, c.Score())
		}
		prev = c.Score()
	}

	if !c.IsGameOver() {
		blockRocket(c)
		c.Tick(frame)
	}
	frozen := c.Score()
	for i := 0; i < 10; i++ {
		c.Tick(frame)
	}
	if c.Score() != frozen || c.FinalScore() != frozen {
		t.Errorf("score should freeze at game over: score=%d final=%d frozen=%d", c.Score(), c.FinalScore(), frozen)
	}
}

func TestControllerGameOverIdempotent(t *testing.T) {
	c := newTestController(config.DefaultRocketConfig())
	c.Start(1)
	for i := 0; i < 10; i++ {
		c.Tick(frame)
	}
	c.DrainEvents()

	blockRocket(c)
	c.Tick(frame)

	if !c.IsGameOver() {
		t.Fatal("rocket inside an obstacle should end the run")
	}
	if c.FinalScore() != 11 {
		t.Errorf("final score should be 11, got %d", c.FinalScore())
	}

	r := c.Rocket()
	obs := append([]Obstacle(nil), c.Obstacles()...)

	// A second hit in the same or a later tick changes nothing
	c.gameOver()
	c.Tick(frame)
	c.ToggleDrift()

	events := c.DrainEvents()
	if len(events) != 1 || events[0] != EventGameOver {
		t.Errorf("expected a single game over event, got %v", events)
	}
	if c.FinalScore() != 11 {
		t.Errorf("final score changed to %d", c.FinalScore())
	}
	if c.Rocket() != r {
		t.Error("rocket moved after game over")
	}
	if len(c.Obstacles()) != len(obs) {
		t.Error("obstacles changed after game over")
	}
}

func TestControllerWallCollision(t *testing.T) {
	cfg := survivableConfig()
	c := newTestController(cfg)
	c.Start(1)
	c.rocket.X = testFieldW + 100

	c.Tick(frame)
	if !c.IsGameOver() {
		t.Error("reaching the side limit should end the run")
	}

	cfg.Field.WallHit = false
	c = newTestController(cfg)
	c.Start(1)
	c.rocket.X = testFieldW + 100

	c.Tick(frame)
	if c.IsGameOver() {
		t.Error("wall collision disabled, run should continue")
	}
	if c.Rocket().X != testFieldW+cfg.Field.EdgePadding {
		t.Errorf("rocket should be clamped to the limit, got %v", c.Rocket().X)
	}
}

func TestControllerHitboxInsetForgivesGrazes(t *testing.T) {
	cfg := survivableConfig()
	c := newTestController(cfg)
	c.Start(1)

	// A bar whose visual edge reaches 1 unit into the hull's left side
	r := c.Rocket()
	left := r.X - r.Width/2
	c.obstacles = append(c.obstacles, Obstacle{
		Box: core.Box{X: left - 100, Y: r.Y - 10, W: 101, H: 20},
	})

	if !r.Hull().IntersectsBox(c.obstacles[0].Box) {
		t.Fatal("visual box should overlap the hull")
	}
	if collides(r.Hull(), c.obstacles, cfg.Obstacles.HitboxInset) {
		t.Error("shrunk hitbox should not register a graze")
	}
}

func TestControllerWideBarsKeepTheirReach(t *testing.T) {
	cfg := survivableConfig()
	h := cfg.Obstacles.Height
	slack := cfg.Obstacles.HitboxInset * h

	for _, overlap := range []float64{5, 15, 25, 29} {
		c := newTestController(cfg)
		c.Start(1)
		r := c.Rocket()
		left := r.X - r.Width/2
		c.obstacles = append(c.obstacles, Obstacle{
			Box: core.Box{X: left + overlap - 300, Y: r.Y - h/2, W: 300, H: h},
		})

		hit := collides(r.Hull(), c.obstacles, cfg.Obstacles.HitboxInset)
		if want := overlap > slack; hit != want {
			t.Errorf("300-unit bar %v units into the hull: collides=%v, want %v", overlap, hit, want)
		}
	}
}

func TestControllerCollisionGapTracksDrawnGap(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	inset := cfg.Obstacles.HitboxInset
	slack := 2 * inset * cfg.Obstacles.Height

	for _, fieldW := range []float64{400, 800, 2000} {
		g := NewGenerator(cfg, 7)
		var obstacles []Obstacle
		for i := 0; i < 20; i++ {
			obstacles = g.Fill(obstacles[:0], 0, fieldW, 600)
			left, right := obstacles[0], obstacles[1]

			drawn := Gap(left, right)
			hit := right.Hitbox(inset).X - left.Hitbox(inset).Right()
			if hit < drawn || hit > drawn+slack+1e-9 {
				t.Fatalf("field %v: collision gap %v strays from drawn gap %v (slack %v)", fieldW, hit, drawn, slack)
			}
		}
	}
}

func TestControllerReset(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	c := newTestController(cfg)
	c.Start(3)
	for i := 0; i < 200 && !c.IsGameOver(); i++ {
		if i%30 == 0 {
			c.ToggleDrift()
		}
		c.Tick(frame)
	}
	blockRocket(c)
	c.Tick(frame)

	c.Reset(4)

	if c.Phase() != PhaseRunning {
		t.Errorf("Reset should re-enter running, got %v", c.Phase())
	}
	if len(c.Obstacles()) != 0 {
		t.Errorf("Reset should clear obstacles, got %d", len(c.Obstacles()))
	}
	r := c.Rocket()
	if r.X != testFieldW/2 || r.Rotation != 0 || r.Direction != 1 || r.Speed != cfg.Rocket.StartSpeed {
		t.Errorf("Reset should restore the baseline rocket, got %+v", r)
	}
	if c.Score() != 0 || c.FinalScore() != 0 || c.Elapsed() != 0 {
		t.Errorf("Reset should clear run state, score=%d final=%d elapsed=%v", c.Score(), c.FinalScore(), c.Elapsed())
	}
	if c.ObstacleSpeed() != cfg.Obstacles.StartSpeed {
		t.Errorf("Reset should restore obstacle speed, got %v", c.ObstacleSpeed())
	}
	if len(c.DrainEvents()) != 0 {
		t.Error("Reset should drop pending events")
	}
}

func TestControllerObstaclesBounded(t *testing.T) {
	cfg := survivableConfig()
	c := newTestController(cfg)
	c.Start(8)

	for i := 0; i < 60*60; i++ {
		c.Tick(frame)
		if c.IsGameOver() {
			t.Fatalf("tick %d: survivable run ended", i)
		}
		if n := len(c.Obstacles()); n > cfg.Obstacles.MaxCount {
			t.Fatalf("tick %d: %d obstacles exceeds max %d", i, n, cfg.Obstacles.MaxCount)
		}
		for _, o := range c.Obstacles() {
			if o.Box.Top() < 0 {
				t.Fatalf("tick %d: obstacle below the window was not culled", i)
			}
		}
	}

	if c.Score() != 3600 {
		t.Errorf("score should count ticks, got %d", c.Score())
	}
	if len(c.Particles()) > cfg.Particles.Max {
		t.Errorf("particles exceed cap: %d", len(c.Particles()))
	}
}

func TestControllerSpeedRamps(t *testing.T) {
	cfg := survivableConfig()
	c := newTestController(cfg)
	c.Start(1)

	obstacleSpeed, rocketSpeed := c.ObstacleSpeed(), c.Rocket().Speed
	for i := 0; i < 120; i++ {
		c.Tick(frame)
		if c.ObstacleSpeed() < obstacleSpeed || c.Rocket().Speed < rocketSpeed {
			t.Fatalf("tick %d: speeds must never decrease", i)
		}
		obstacleSpeed, rocketSpeed = c.ObstacleSpeed(), c.Rocket().Speed
	}

	if math.Abs(c.ObstacleSpeed()-(cfg.Obstacles.StartSpeed+2*cfg.Obstacles.SpeedRamp)) > 1e-6 {
		t.Errorf("obstacle speed after 2s = %v", c.ObstacleSpeed())
	}
	if math.Abs(c.Rocket().Speed-(cfg.Rocket.StartSpeed+2*cfg.Rocket.SpeedRamp)) > 1e-6 {
		t.Errorf("rocket speed after 2s = %v", c.Rocket().Speed)
	}

	config.ApplyPreset(&cfg, config.DifficultyFixed)
	c = newTestController(cfg)
	c.Start(1)
	for i := 0; i < 120; i++ {
		c.Tick(frame)
	}
	if c.ObstacleSpeed() != cfg.Obstacles.StartSpeed {
		t.Errorf("fixed preset should not ramp, got %v", c.ObstacleSpeed())
	}
}

func TestControllerDegenerateDelta(t *testing.T) {
	c := newTestController(survivableConfig())
	c.Start(1)

	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1), 1e9} {
		c.Tick(dt)
	}

	if c.Elapsed() > 0.2+1e-9 {
		t.Errorf("elapsed should grow by at most max_delta per tick, got %v", c.Elapsed())
	}
	r := c.Rocket()
	if math.IsNaN(r.X) || math.IsNaN(r.Rotation) || math.IsNaN(c.ObstacleSpeed()) {
		t.Errorf("NaN leaked into state: %+v speed=%v", r, c.ObstacleSpeed())
	}
	if c.Score() != 5 {
		t.Errorf("every running tick scores, got %d", c.Score())
	}
}

func TestControllerTurnEvents(t *testing.T) {
	c := newTestController(survivableConfig())
	c.Start(1)

	c.ToggleDrift()
	c.ToggleDrift()
	if c.Rocket().Direction != 1 {
		t.Errorf("two toggles should cancel out, direction=%v", c.Rocket().Direction)
	}

	events := c.DrainEvents()
	if len(events) != 2 || events[0] != EventTurn {
		t.Errorf("expected two turn events, got %v", events)
	}
	if c.DrainEvents() != nil {
		t.Error("DrainEvents should clear the queue")
	}
}

func TestControllerDeterminism(t *testing.T) {
	run := func() *Controller {
		c := newTestController(config.DefaultRocketConfig())
		c.Start(1234)
		for i := 0; i < 2000 && !c.IsGameOver(); i++ {
			if i%50 == 0 {
				c.ToggleDrift()
			}
			c.Tick(frame)
		}
		return c
	}

	a, b := run(), run()
	if a.Score() != b.Score() || a.IsGameOver() != b.IsGameOver() {
		t.Errorf("runs diverged: score %d/%d, over %v/%v", a.Score(), b.Score(), a.IsGameOver(), b.IsGameOver())
	}
	if a.Rocket() != b.Rocket() {
		t.Error("rocket state diverged")
	}
	if len(a.Obstacles()) != len(b.Obstacles()) {
		t.Fatal("obstacle counts diverged")
	}
	for i := range a.Obstacles() {
		if a.Obstacles()[i] != b.Obstacles()[i] {
			t.Errorf("obstacle %d diverged", i)
		}
	}
}
