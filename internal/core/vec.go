package core

import "math"

// Vec2 is a point or direction in continuous arena space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Len()
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// Direction returns the unit vector pointing from v toward target.
// ok is false when the two points coincide and the direction is undefined.
func (v Vec2) Direction(target Vec2) (dir Vec2, ok bool) {
	d := target.Sub(v)
	n := d.Len()
	if n == 0 || !isFinite(n) {
		return Vec2{}, false
	}
	return d.Scale(1 / n), true
}

// StepToward moves v by speed along the direction to target.
// Coincident points produce no movement.
func (v Vec2) StepToward(target Vec2, speed float64) Vec2 {
	dir, ok := v.Direction(target)
	if !ok {
		return v
	}
	return v.Add(dir.Scale(speed))
}

// Angle returns the angle of v in radians, as math.Atan2(y, x).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
