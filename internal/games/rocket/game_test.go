package rocket

import (
	"strings"
	"testing"

	"github.com/vovakirdan/unrocketry/internal/config"
	"github.com/vovakirdan/unrocketry/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestFieldSize(t *testing.T) {
	field := config.DefaultRocketConfig().Field

	w, h := FieldSize(field, 80, 24)
	if w != 800 || h != 480 {
		t.Errorf("80x24 terminal should map to 800x480, got %vx%v", w, h)
	}

	field.Width, field.Height = 600, 900
	w, h = FieldSize(field, 80, 24)
	if w != 600 || h != 900 {
		t.Errorf("configured field should win, got %vx%v", w, h)
	}

	field = config.DefaultRocketConfig().Field
	w, h = FieldSize(field, 0, -3)
	if w <= 0 || h <= 0 {
		t.Errorf("degenerate terminal should still give a field, got %vx%v", w, h)
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testRuntime(12345)

	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%40 == 0 {
			inputs[i].Set(core.ActionTurn)
		}
	}

	play := func() core.GameState {
		g := New(config.DefaultRocketConfig())
		g.Reset(cfg)
		var state core.GameState
		for _, in := range inputs {
			state = g.Step(frame, in).State
			if state.GameOver {
				break
			}
		}
		return state
	}

	s1, s2 := play(), play()
	if s1 != s2 {
		t.Errorf("Determinism failed: %+v vs %+v", s1, s2)
	}
}

func TestGameTurnRaisesCue(t *testing.T) {
	g := New(config.DefaultRocketConfig())
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.Set(core.ActionTurn)
	res := g.Step(frame, in)

	if len(res.Cues) != 1 || res.Cues[0] != core.CueTurn {
		t.Errorf("expected a turn cue, got %v", res.Cues)
	}
	if g.Controller().Rocket().Direction != -1 {
		t.Error("turn should flip drift")
	}

	// Each tap raises its own cue
	in = core.NewInputFrame()
	in.Set(core.ActionTurn)
	in.Set(core.ActionTurn)
	res = g.Step(frame, in)
	if len(res.Cues) != 2 {
		t.Errorf("expected two cues, got %v", res.Cues)
	}
}

func TestGamePause(t *testing.T) {
	g := New(config.DefaultRocketConfig())
	g.Reset(testRuntime(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(frame, pause)
	if !g.State().Paused {
		t.Fatal("pause should pause")
	}

	score := g.State().Score
	turn := core.NewInputFrame()
	turn.Set(core.ActionTurn)
	for i := 0; i < 30; i++ {
		g.Step(frame, turn)
	}
	if g.State().Score != score {
		t.Error("paused game should not advance")
	}
	if g.Controller().Rocket().Direction != 1 {
		t.Error("paused game should ignore turns")
	}

	g.Step(frame, pause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameOverCueAndState(t *testing.T) {
	g := New(config.DefaultRocketConfig())
	g.Reset(testRuntime(1))
	g.Step(frame, core.NewInputFrame())

	blockRocket(g.Controller())
	res := g.Step(frame, core.NewInputFrame())

	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if len(res.Cues) != 1 || res.Cues[0] != core.CueGameOver {
		t.Errorf("expected a game over cue, got %v", res.Cues)
	}
	if res.State.Score != 2 {
		t.Errorf("final score should be 2, got %d", res.State.Score)
	}

	res = g.Step(frame, core.NewInputFrame())
	if len(res.Cues) != 0 || res.State.Score != 2 {
		t.Errorf("steps after game over should be inert, got %+v", res)
	}
}

func TestGameReset(t *testing.T) {
	g := New(config.DefaultRocketConfig())
	g.Reset(testRuntime(1))
	for i := 0; i < 50; i++ {
		g.Step(frame, core.NewInputFrame())
	}
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(frame, pause)

	g.Reset(testRuntime(2))

	if g.State() != (core.GameState{}) {
		t.Errorf("Reset should clear state, got %+v", g.State())
	}
	if g.ticks != 0 {
		t.Errorf("Reset should clear tick count, got %d", g.ticks)
	}
}

func TestGameRender(t *testing.T) {
	g := New(config.DefaultRocketConfig())
	g.Reset(testRuntime(1))
	for i := 0; i < 60; i++ {
		g.Step(frame, core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(screen.Row(0), "Score:") {
		t.Errorf("HUD missing from top row: %q", screen.Row(0))
	}
	if !strings.ContainsRune(out, NoseChar) {
		t.Error("rocket nose not drawn")
	}
	if !strings.ContainsRune(out, RocketChar) {
		t.Error("rocket body not drawn")
	}
	if !strings.ContainsRune(out, ObstacleChar) {
		t.Error("obstacles not drawn")
	}

	blockRocket(g.Controller())
	g.Step(frame, core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box not drawn")
	}
}

func TestRenderObstacleColorFollowsTier(t *testing.T) {
	g := New(config.DefaultRocketConfig())
	g.Reset(testRuntime(1))

	c := g.Controller()
	c.obstacles = append(c.obstacles[:0], Obstacle{
		Box:  core.Box{X: 0, Y: 240, W: 200, H: 20},
		Tier: 3,
	})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	cell := screen.GetCell(5, 11)
	if cell.Rune != ObstacleChar || cell.Color != core.TierColor(3) {
		t.Errorf("expected tier-3 obstacle at (5, 11), got %q color %v", cell.Rune, cell.Color)
	}
}
