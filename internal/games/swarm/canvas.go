package swarm

import (
	"math"

	"github.com/vovakirdan/swarm-arcade/internal/core"
)

// Paint is a color with opacity. Alpha 1 is opaque.
type Paint struct {
	Color core.Color
	Alpha float64
}

// Solid returns an opaque paint.
func Solid(c core.Color) Paint {
	return Paint{Color: c, Alpha: 1}
}

// Translucent reports whether the paint lets what is underneath show through.
func (p Paint) Translucent() bool {
	return p.Alpha < 1
}

// Font describes text size in arena units.
type Font struct {
	Size float64
}

// Align is horizontal text alignment relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas is the set of drawing primitives the game renders with.
// Coordinates are arena units; implementations map them onto a device.
type Canvas interface {
	Clear()
	DrawCircle(center core.Vec2, radius float64, paint Paint)
	DrawTrail(from, to core.Vec2, width float64, paint Paint)
	DrawText(text string, pos core.Vec2, font Font, paint Paint, align Align)
	FillRect(x, y, w, h float64, paint Paint)
	// FillArc fills a pie slice starting at angle start (radians,
	// clockwise on screen since y grows downward) and spanning sweep.
	FillArc(center core.Vec2, radius, start, sweep float64, paint Paint)
}

// Glyphs used by ScreenCanvas.
const (
	GlyphSolid = '█'
	GlyphShade = '░'
	GlyphDot   = '●'
)

// ScreenCanvas rasterizes arena drawing onto a character Screen.
// The arena is stretched to fill the screen.
type ScreenCanvas struct {
	dst        *core.Screen
	arenaW     float64
	arenaH     float64
	sx, sy     float64 // cells per arena unit
	background core.Color
}

// NewScreenCanvas creates a canvas mapping a w x h arena onto dst.
func NewScreenCanvas(dst *core.Screen, w, h float64) *ScreenCanvas {
	c := &ScreenCanvas{arenaW: w, arenaH: h}
	c.SetTarget(dst)
	return c
}

// SetTarget switches the destination screen, recomputing the scale.
func (c *ScreenCanvas) SetTarget(dst *core.Screen) {
	c.dst = dst
	c.sx = float64(dst.Width()) / c.arenaW
	c.sy = float64(dst.Height()) / c.arenaH
}

// ToCell converts an arena point to the screen cell containing it.
func (c *ScreenCanvas) ToCell(p core.Vec2) core.Point {
	return core.Point{
		X: int(math.Floor(p.X * c.sx)),
		Y: int(math.Floor(p.Y * c.sy)),
	}
}

// ToArena converts a screen cell to the arena point at its center.
func (c *ScreenCanvas) ToArena(cell core.Point) core.Vec2 {
	return core.V((float64(cell.X)+0.5)/c.sx, (float64(cell.Y)+0.5)/c.sy)
}

// Clear blanks the whole screen.
func (c *ScreenCanvas) Clear() {
	c.dst.Clear()
}

// DrawCircle fills every cell whose center lies inside the circle.
// A circle smaller than a cell still marks the cell under its center.
func (c *ScreenCanvas) DrawCircle(center core.Vec2, radius float64, paint Paint) {
	glyph := glyphFor(paint)
	drawn := c.eachCellIn(center, radius, func(cell core.Point, _ core.Vec2) {
		c.plot(cell, glyph, paint)
	})
	if !drawn {
		if !paint.Translucent() {
			glyph = GlyphDot
		}
		c.plot(c.ToCell(center), glyph, paint)
	}
}

// DrawTrail draws a one-cell line. Width has no effect on a character grid.
func (c *ScreenCanvas) DrawTrail(from, to core.Vec2, _ float64, paint Paint) {
	a, b := c.ToCell(from), c.ToCell(to)
	c.dst.DrawLine(a.X, a.Y, b.X, b.Y, glyphFor(paint), paint.Color)
}

// DrawText writes text on the row containing pos. Font size is ignored.
func (c *ScreenCanvas) DrawText(text string, pos core.Vec2, _ Font, paint Paint, align Align) {
	cell := c.ToCell(pos)
	n := len([]rune(text))
	switch align {
	case AlignCenter:
		cell.X -= n / 2
	case AlignRight:
		cell.X -= n
	}
	c.dst.DrawTextColored(cell.X, cell.Y, text, paint.Color)
}

// FillRect fills a rectangle. Translucent fills shade what is already there.
func (c *ScreenCanvas) FillRect(x, y, w, h float64, paint Paint) {
	tl := c.ToCell(core.V(x, y))
	br := c.ToCell(core.V(x+w, y+h))
	for cy := max(tl.Y, 0); cy < min(br.Y, c.dst.Height()); cy++ {
		for cx := max(tl.X, 0); cx < min(br.X, c.dst.Width()); cx++ {
			if paint.Translucent() {
				cell := c.dst.GetCell(cx, cy)
				c.dst.Tint(cx, cy, cell.Color.Dim())
				continue
			}
			c.dst.SetColored(cx, cy, GlyphSolid, paint.Color)
		}
	}
}

// FillArc fills the cells of a pie slice.
func (c *ScreenCanvas) FillArc(center core.Vec2, radius, start, sweep float64, paint Paint) {
	if sweep <= 0 {
		return
	}
	glyph := glyphFor(paint)
	full := sweep >= 2*math.Pi
	c.eachCellIn(center, radius, func(cell core.Point, p core.Vec2) {
		if full || angleWithin(p.Sub(center).Angle(), start, sweep) {
			c.plot(cell, glyph, paint)
		}
	})
}

// eachCellIn calls fn for every on-screen cell whose center is inside the
// circle. Reports whether any cell matched.
func (c *ScreenCanvas) eachCellIn(center core.Vec2, radius float64, fn func(core.Point, core.Vec2)) bool {
	tl := c.ToCell(core.V(center.X-radius, center.Y-radius))
	br := c.ToCell(core.V(center.X+radius, center.Y+radius))
	matched := false
	for cy := max(tl.Y, 0); cy <= min(br.Y, c.dst.Height()-1); cy++ {
		for cx := max(tl.X, 0); cx <= min(br.X, c.dst.Width()-1); cx++ {
			cell := core.Point{X: cx, Y: cy}
			p := c.ToArena(cell)
			if p.Dist(center) <= radius {
				fn(cell, p)
				matched = true
			}
		}
	}
	return matched
}

func (c *ScreenCanvas) plot(cell core.Point, glyph rune, paint Paint) {
	c.dst.SetColored(cell.X, cell.Y, glyph, paint.Color)
}

func glyphFor(p Paint) rune {
	if p.Translucent() {
		return GlyphShade
	}
	return GlyphSolid
}

// angleWithin reports whether angle a lies in the arc [start, start+sweep].
func angleWithin(a, start, sweep float64) bool {
	d := math.Mod(a-start, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d <= sweep
}
