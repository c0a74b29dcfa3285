package swarm

import (
	"fmt"
	"math"

	"github.com/vovakirdan/swarm-arcade/internal/core"
)

// Palette.
var (
	PaintPlayer     = Solid(core.ColorBlue)
	PaintEnemy      = Solid(core.ColorRed)
	PaintNormal     = Solid(core.ColorYellow)
	PaintSpecial    = Solid(core.ColorMagenta)
	PaintTrail      = Paint{Color: core.ColorMagenta, Alpha: 0.5}
	PaintIndicator  = Solid(core.ColorGray)
	PaintText       = Solid(core.ColorWhite)
	PaintOverlayDim = Paint{Color: core.ColorDefault, Alpha: 0.75}
)

// HUD layout in arena units.
var (
	normalIndicatorPos  = core.V(10, 10)
	specialIndicatorPos = core.V(10, 50)
	scorePos            = core.V(10, 100)
)

const indicatorRadius = 20

var (
	fontHUD      = Font{Size: 24}
	fontTitle    = Font{Size: 48}
	fontSubtitle = Font{Size: 36}
)

// Render draws one frame: player, enemies, projectiles with trails,
// cooldown indicators and score. A finished session also gets the
// game over overlay.
func (s *Session) Render(c Canvas, now int64) {
	c.Clear()
	c.DrawCircle(s.Player.Pos, s.Player.Radius, PaintPlayer)

	for _, e := range s.Enemies.All() {
		c.DrawCircle(e.Pos, e.Radius, PaintEnemy)
	}

	for _, p := range s.Projectiles {
		paint := PaintNormal
		if p.Special {
			paint = PaintSpecial
			if end, ok := p.TrailEnd(); ok {
				c.DrawTrail(p.Pos, end, p.Radius*2, PaintTrail)
			}
		}
		c.DrawCircle(p.Pos, p.Radius, paint)
	}

	drawCooldown(c, normalIndicatorPos, s.Normal.Progress(now), PaintNormal)
	drawCooldown(c, specialIndicatorPos, s.Special.Progress(now), PaintSpecial)
	c.DrawText(fmt.Sprintf("Score: %d", s.Score), scorePos, fontHUD, PaintText, AlignLeft)

	if s.GameOver {
		s.renderGameOver(c)
	}
}

// drawCooldown draws a gray disc with a colored slice growing clockwise
// from twelve o'clock as the weapon recovers.
func drawCooldown(c Canvas, pos core.Vec2, progress float64, paint Paint) {
	c.DrawCircle(pos, indicatorRadius, PaintIndicator)
	c.FillArc(pos, indicatorRadius, -math.Pi/2, 2*math.Pi*progress, paint)
}

func (s *Session) renderGameOver(c Canvas) {
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	c.FillRect(0, 0, w, h, PaintOverlayDim)
	c.DrawText("Game Over", core.V(w/2, h/2-100), fontTitle, PaintText, AlignCenter)
	c.DrawText(fmt.Sprintf("Final Score: %d", s.Score), core.V(w/2, h/2-20), fontSubtitle, PaintText, AlignCenter)
	c.DrawText("Click or press R to restart", core.V(w/2, h/2+50), fontHUD, PaintText, AlignCenter)
}
