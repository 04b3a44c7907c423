package rocket

import (
	"fmt"
	"math"

	"github.com/vovakirdan/unrocketry/internal/core"
)

// Visual characters for rendering
const (
	RocketChar    = '█'
	NoseChar      = '▲'
	ObstacleChar  = '▓'
	StarChar      = '·'
	BrightStar    = '*'
	FlameChar     = '▒'
	SmokeChar     = '░'
	SmokeFadeChar = '.'
)

// viewport maps world units onto screen cells. Row 0 is the top of the field.
type viewport struct {
	sx, sy float64 // Cells per world unit
	rows   int
}

func newViewport(fieldW, fieldH float64, cols, rows int) viewport {
	return viewport{
		sx:   float64(cols) / math.Max(fieldW, 1),
		sy:   float64(rows) / math.Max(fieldH, 1),
		rows: rows,
	}
}

// cell returns the screen cell containing the world point.
func (v viewport) cell(p core.Vec) (x, y int) {
	return int(math.Floor(p.X * v.sx)), v.rows - 1 - int(math.Floor(p.Y*v.sy))
}

// center returns the world position of a cell's centre.
func (v viewport) center(x, y int) core.Vec {
	return core.Vec{
		X: (float64(x) + 0.5) / v.sx,
		Y: (float64(v.rows-y) - 0.5) / v.sy,
	}
}

// span returns the cells a world box may touch.
func (v viewport) span(b core.Box) core.Rect {
	x0, y1 := v.cell(core.Vec{X: b.X, Y: b.Y})
	x1, y0 := v.cell(core.Vec{X: b.Right(), Y: b.Top()})
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	c := g.ctrl
	fw, fh := c.Field()
	vp := newViewport(fw, fh, dst.Width(), dst.Height())

	for _, s := range c.Stars() {
		x, y := vp.cell(core.Vec{X: s.X, Y: s.Y})
		if s.Bright {
			dst.SetColor(x, y, BrightStar, core.ColorWhite)
		} else {
			dst.SetColor(x, y, StarChar, core.ColorDarkGray)
		}
	}

	for _, p := range c.Particles() {
		drawParticle(dst, vp, p)
	}

	for _, o := range c.Obstacles() {
		drawBox(dst, vp, o.Box, ObstacleChar, core.TierColor(o.Tier))
	}

	r := c.Rocket()
	drawRocket(dst, vp, &r)

	g.drawHUD(dst)

	switch {
	case c.IsGameOver():
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  B menu", c.FinalScore()))
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawBox fills every cell whose centre lies inside the box.
func drawBox(dst *core.Screen, vp viewport, b core.Box, ch rune, color core.Color) {
	span := vp.span(b)
	for y := span.Y; y < span.Bottom(); y++ {
		for x := span.X; x < span.Right(); x++ {
			p := vp.center(x, y)
			if p.X >= b.X && p.X < b.Right() && p.Y >= b.Y && p.Y < b.Top() {
				dst.SetColor(x, y, ch, color)
			}
		}
	}
}

// drawRocket rasterizes the hull. The cell nearest the nose gets an arrow,
// and the rocket always covers at least one cell.
func drawRocket(dst *core.Screen, vp viewport, r *Rocket) {
	hull := r.Hull()
	span := vp.span(hull.Bounds())
	drawn := false
	for y := span.Y; y < span.Bottom(); y++ {
		for x := span.X; x < span.Right(); x++ {
			if hull.Contains(vp.center(x, y)) {
				dst.SetColor(x, y, RocketChar, core.ColorBrightWhite)
				drawn = true
			}
		}
	}

	nose := core.Vec{X: 0, Y: r.Height / 2}.Rotate(r.Rotation).Add(core.Vec{X: r.X, Y: r.Y})
	nx, ny := vp.cell(nose)
	if !drawn {
		nx, ny = vp.cell(core.Vec{X: r.X, Y: r.Y})
	}
	dst.SetColor(nx, ny, NoseChar, core.ColorBrightCyan)
}

func drawParticle(dst *core.Screen, vp viewport, p Particle) {
	x, y := vp.cell(p.Pos)
	fade := p.Fade()
	switch p.Kind {
	case ParticleFlame:
		color := core.ColorBrightYellow
		if fade > 0.5 {
			color = core.ColorOrange
		}
		if fade > 0.8 {
			color = core.ColorRed
		}
		dst.SetColor(x, y, FlameChar, color)
	case ParticleSmoke:
		ch := SmokeChar
		if fade > 0.6 {
			ch = SmokeFadeChar
		}
		dst.SetColor(x, y, ch, core.ColorGray)
	}
}

// drawHUD writes score, speed and tier on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	c := g.ctrl
	score := c.Score()
	if c.IsGameOver() {
		score = c.FinalScore()
	}
	hud := fmt.Sprintf(" Score: %d  Speed: %.0f  Tier: %d ", score, c.ObstacleSpeed(), c.Tier()+1)
	dst.DrawTextColor(1, 0, hud, core.TierColor(c.Tier()))
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
