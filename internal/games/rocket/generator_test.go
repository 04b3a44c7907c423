package rocket

import (
	"math"
	"testing"

	"github.com/vovakirdan/unrocketry/internal/config"
)

// scrollAndCull mimics the controller: move everything down and drop what
// fell off the bottom.
func scrollAndCull(obs []Obstacle, dy float64) []Obstacle {
	kept := obs[:0]
	for _, o := range obs {
		o.Box.Y -= dy
		if o.Box.Top() >= 0 {
			kept = append(kept, o)
		}
	}
	return kept
}

// collectPairs runs the generator for n ticks and returns every pair it made.
func collectPairs(g *Generator, n int, dy float64) [][2]Obstacle {
	var pairs [][2]Obstacle
	var obs []Obstacle
	for i := 0; i < n; i++ {
		obs = scrollAndCull(obs, dy)
		before := len(obs)
		obs = g.Fill(obs, i, testFieldW, testFieldH)
		if len(obs) > before {
			pairs = append(pairs, [2]Obstacle{obs[before], obs[before+1]})
		}
	}
	return pairs
}

func TestGeneratorGapBounds(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	g := NewGenerator(cfg, 99)

	pairs := collectPairs(g, 5000, 5)
	if len(pairs) < 20 {
		t.Fatalf("expected many pairs, got %d", len(pairs))
	}

	gMin := cfg.Rocket.Width * 1.3
	for _, p := range pairs {
		gap := Gap(p[0], p[1])
		if gap < gMin-1e-9 || gap > gMin+30+1e-9 {
			t.Errorf("pair %d: gap %v outside [%v, %v]", p[0].Pair, gap, gMin, gMin+30)
		}
		if p[0].Box.Y != p[1].Box.Y {
			t.Errorf("pair %d: halves at different heights", p[0].Pair)
		}
		if p[0].Side != SideLeft || p[1].Side != SideRight {
			t.Errorf("pair %d: unexpected sides %v, %v", p[0].Pair, p[0].Side, p[1].Side)
		}
		if p[0].Box.X != 0 || math.Abs(p[1].Box.Right()-testFieldW) > 1e-9 {
			t.Errorf("pair %d: halves should touch the side walls", p[0].Pair)
		}
	}
}

func TestGeneratorSplitRatios(t *testing.T) {
	g := NewGenerator(config.DefaultRocketConfig(), 3)

	seen := map[float64]int{}
	for _, p := range collectPairs(g, 5000, 5) {
		rest := p[0].Box.W + p[1].Box.W
		ratio := math.Round(p[0].Box.W/rest*10) / 10
		if ratio != 0.4 && ratio != 0.6 {
			t.Fatalf("pair %d: unexpected split %v", p[0].Pair, p[0].Box.W/rest)
		}
		seen[ratio]++
	}

	if seen[0.4] == 0 || seen[0.6] == 0 {
		t.Errorf("expected both splits to appear, got %v", seen)
	}
}

func TestGeneratorSpacing(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	cfg.Obstacles.MinCount = cfg.Obstacles.MaxCount
	g := NewGenerator(cfg, 11)

	var obs []Obstacle
	for i := 0; i < 4; i++ {
		before := len(obs)
		obs = g.Fill(obs, 0, testFieldW, testFieldH)
		if len(obs)-before != 2 {
			t.Fatalf("call %d: expected exactly one pair, got %d obstacles", i, len(obs)-before)
		}
	}

	if obs[0].Box.Y != testFieldH {
		t.Errorf("first pair should spawn at the top edge, got y=%v", obs[0].Box.Y)
	}
	for i := 2; i < len(obs); i += 2 {
		d := obs[i].Box.Y - obs[i-2].Box.Y
		if d < cfg.Obstacles.MinSpacing || d > cfg.Obstacles.MaxSpacing {
			t.Errorf("spacing %v outside [%v, %v]", d, cfg.Obstacles.MinSpacing, cfg.Obstacles.MaxSpacing)
		}
	}

	// The list is full now
	if got := g.Fill(obs, 0, testFieldW, testFieldH); len(got) != len(obs) {
		t.Errorf("Fill should respect max_count, grew to %d", len(got))
	}
}

func TestGeneratorCapacity(t *testing.T) {
	g := NewGenerator(config.DefaultRocketConfig(), 1)

	tests := []struct {
		name   string
		fieldH float64
		want   int
	}{
		{"small field keeps max_count", testFieldH, 8},
		{"tall field grows", 2000, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Capacity(tt.fieldH); got != tt.want {
				t.Errorf("Capacity(%v) = %d, want %d", tt.fieldH, got, tt.want)
			}
		})
	}
}

func TestGeneratorSpacingOnTallField(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	g := NewGenerator(cfg, 5)
	const fieldH = 2000.0

	var obs []Obstacle
	for step := 0; step < 3000; step++ {
		obs = scrollAndCull(obs, 10)
		before := len(obs)
		obs = g.Fill(obs, 0, testFieldW, fieldH)
		if len(obs) == before || before == 0 {
			continue
		}
		d := obs[len(obs)-1].Box.Y - obs[before-1].Box.Y
		if d > cfg.Obstacles.MaxSpacing {
			t.Fatalf("step %d: pair spacing %v exceeds max %v", step, d, cfg.Obstacles.MaxSpacing)
		}
	}
}

func TestGeneratorWaitsForNewestPair(t *testing.T) {
	g := NewGenerator(config.DefaultRocketConfig(), 1)

	obs := g.Fill(nil, 0, testFieldW, testFieldH)
	if len(obs) != 2 {
		t.Fatalf("empty list should get a pair, got %d", len(obs))
	}

	// Newest pair still above the window
	if got := g.Fill(obs, 0, testFieldW, testFieldH); len(got) != 2 {
		t.Errorf("no pair expected until the newest one has entered, got %d", len(got))
	}

	obs = scrollAndCull(obs, obs[0].Box.H)
	if got := g.Fill(obs, 0, testFieldW, testFieldH); len(got) != 4 {
		t.Errorf("pair expected once the newest one has entered, got %d", len(got))
	}
}

func TestGeneratorNarrowField(t *testing.T) {
	g := NewGenerator(config.DefaultRocketConfig(), 5)

	obs := g.Fill(nil, 0, 30, testFieldH)
	if Gap(obs[0], obs[1]) != 30 {
		t.Errorf("gap should take the whole field, got %v", Gap(obs[0], obs[1]))
	}
	if obs[0].Box.W != 0 || obs[1].Box.W != 0 {
		t.Errorf("halves should be empty, got %v and %v", obs[0].Box.W, obs[1].Box.W)
	}
}

func TestGeneratorTier(t *testing.T) {
	g := NewGenerator(config.DefaultRocketConfig(), 0)

	tests := []struct {
		score int
		want  int
	}{
		{0, 0},
		{599, 0},
		{600, 1},
		{1800, 3},
		{100000, 5},
		{-10, 0},
	}

	for _, tc := range tests {
		if got := g.Tier(tc.score); got != tc.want {
			t.Errorf("Tier(%d) = %d, expected %d", tc.score, got, tc.want)
		}
	}

	obs := g.Fill(nil, 1200, testFieldW, testFieldH)
	if obs[0].Tier != 2 || obs[1].Tier != 2 {
		t.Errorf("pair should carry tier 2, got %d/%d", obs[0].Tier, obs[1].Tier)
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	a := collectPairs(NewGenerator(config.DefaultRocketConfig(), 42), 2000, 5)
	b := collectPairs(NewGenerator(config.DefaultRocketConfig(), 42), 2000, 5)

	if len(a) != len(b) {
		t.Fatalf("pair counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pair %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
