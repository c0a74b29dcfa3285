package swarm

import (
	"github.com/vovakirdan/swarm-arcade/internal/config"
	"github.com/vovakirdan/swarm-arcade/internal/core"
)

// Player is the pointer-controlled circle the swarm hunts.
type Player struct {
	Pos    core.Vec2
	Radius float64
}

// MoveTo places the player directly at p. There is no physics.
// Non-finite coordinates are ignored.
func (p *Player) MoveTo(pos core.Vec2) {
	if !pos.IsFinite() {
		return
	}
	p.Pos = pos
}

// EnemyID is a stable handle into an EnemySet. Zero is never assigned.
type EnemyID uint64

// Enemy is a circle that homes in on the player at a fixed speed.
type Enemy struct {
	ID     EnemyID
	Pos    core.Vec2
	Radius float64
	Speed  float64
}

// Move steps the enemy toward target. Coincident points leave it in place.
func (e *Enemy) Move(target core.Vec2) {
	e.Pos = e.Pos.StepToward(target, e.Speed)
}

// Projectile is a homing bullet bound to one enemy at creation time.
// It is never re-targeted: when the target dies the projectile keeps
// flying along its last heading until it leaves the arena.
type Projectile struct {
	Pos     core.Vec2
	Radius  float64
	Speed   float64
	Target  EnemyID
	Heading core.Vec2 // unit vector of the last known direction to Target

	Special     bool
	HitCount    int
	MaxHits     int
	TrailLength float64
}

// newProjectile creates a projectile at origin aimed at target.
func newProjectile(origin core.Vec2, target *Enemy, kind config.ProjectileKind, special bool) *Projectile {
	heading, _ := origin.Direction(target.Pos)
	return &Projectile{
		Pos:         origin,
		Radius:      kind.Radius,
		Speed:       kind.Speed,
		Target:      target.ID,
		Heading:     heading,
		Special:     special,
		MaxHits:     kind.MaxHits,
		TrailLength: kind.TrailLength,
	}
}

// Move advances the projectile one tick.
// While the target is alive it homes on the target's current position.
// Once the target is gone it continues along the frozen heading.
// Returns false when the projectile has no target and no heading,
// meaning it can never move again and should be discarded.
func (p *Projectile) Move(enemies *EnemySet) bool {
	if target, ok := enemies.Get(p.Target); ok {
		if dir, ok := p.Pos.Direction(target.Pos); ok {
			p.Heading = dir
			p.Pos = p.Pos.Add(dir.Scale(p.Speed))
		}
		return true
	}
	if p.Heading.IsZero() {
		return false
	}
	p.Pos = p.Pos.Add(p.Heading.Scale(p.Speed))
	return true
}

// Exhausted reports whether the projectile has used all of its hits.
// A normal shot is spent by its first hit whatever MaxHits says.
func (p *Projectile) Exhausted() bool {
	if !p.Special {
		return p.HitCount > 0
	}
	return p.HitCount >= p.MaxHits
}

// OutOfBounds reports whether the projectile center lies outside the
// w x h arena on either axis. The edges themselves are in bounds.
func (p *Projectile) OutOfBounds(w, h float64) bool {
	return p.Pos.X < 0 || p.Pos.X > w || p.Pos.Y < 0 || p.Pos.Y > h
}

// TrailEnd returns the far end of the trail drawn behind the projectile,
// or false when it has no trail.
func (p *Projectile) TrailEnd() (core.Vec2, bool) {
	if p.TrailLength <= 0 || p.Heading.IsZero() {
		return core.Vec2{}, false
	}
	return p.Pos.Sub(p.Heading.Scale(p.TrailLength)), true
}

// overlaps reports whether two circles intersect. Touching circles do not.
func overlaps(a core.Vec2, ra float64, b core.Vec2, rb float64) bool {
	return a.Dist(b) < ra+rb
}
