// Package rocket implements the Unrocketry game: a rocket climbs a scrolling
// corridor and the player flips its drift to slip through obstacle gaps.
package rocket

import (
	"github.com/vovakirdan/unrocketry/internal/config"
	"github.com/vovakirdan/unrocketry/internal/core"
)

// Game adapts a Controller to the terminal shell.
type Game struct {
	cfg     config.RocketConfig
	ctrl    *Controller
	runtime core.RuntimeConfig
	paused  bool
	ticks   int
}

// New creates a game with the given tuning. Call Reset before stepping it.
func New(cfg config.RocketConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rocket"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Unrocketry Rocket!"
}

// FieldSize returns the world size for a terminal of the given size.
// Configured dimensions win over the terminal-derived ones.
func FieldSize(field config.FieldConfig, screenW, screenH int) (w, h float64) {
	w = field.Width
	if w <= 0 {
		w = float64(max(screenW, 1)) * field.UnitsPerCol
	}
	h = field.Height
	if h <= 0 {
		h = float64(max(screenH, 1)) * field.UnitsPerRow
	}
	return w, h
}

// Reset starts a fresh run sized for the current terminal.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.paused = false
	g.ticks = 0

	w, h := FieldSize(g.cfg.Field, rc.ScreenW, rc.ScreenH)
	if g.ctrl == nil {
		g.ctrl = NewController(g.cfg, w, h)
	} else {
		g.ctrl.Resize(w, h)
	}
	g.ctrl.Reset(rc.Seed)
}

// Step advances the game by dt seconds with the input collected since the
// previous step.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.ctrl.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// An even number of taps within one frame cancels out
	for range in.Count(core.ActionTurn) {
		g.ctrl.ToggleDrift()
	}

	g.ctrl.Tick(dt)
	g.ticks++

	return core.StepResult{State: g.State(), Cues: cuesFor(g.ctrl.DrainEvents())}
}

func cuesFor(events []Event) []core.Cue {
	if len(events) == 0 {
		return nil
	}
	cues := make([]core.Cue, 0, len(events))
	for _, e := range events {
		switch e {
		case EventTurn:
			cues = append(cues, core.CueTurn)
		case EventGameOver:
			cues = append(cues, core.CueGameOver)
		}
	}
	return cues
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	score := g.ctrl.Score()
	if g.ctrl.IsGameOver() {
		score = g.ctrl.FinalScore()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.ctrl.IsGameOver(),
		Paused:   g.paused,
	}
}

// Controller exposes the underlying simulation.
func (g *Game) Controller() *Controller {
	return g.ctrl
}
