package swarm

import (
	"math"

	"github.com/vovakirdan/swarm-arcade/internal/core"
)

// Plan is the input a Pilot wants applied before a tick.
type Plan struct {
	Pointer *core.Vec2
	Fire    bool
	Special bool
}

// Pilot drives a session without a human, for headless runs and demos.
type Pilot interface {
	Plan(s *Session, tick uint64) Plan
}

// StrafePilot circles the arena center and shoots whenever it can.
// It fires the special once enough enemies crowd the player.
type StrafePilot struct {
	Radius       float64 // orbit radius around the arena center
	AngularSpeed float64 // radians per tick
	CrowdSize    int     // enemies within CrowdRange that trigger a special
	CrowdRange   float64
}

// DefaultPilot returns a StrafePilot tuned for the default arena.
func DefaultPilot() *StrafePilot {
	return &StrafePilot{
		Radius:       150,
		AngularSpeed: 0.03,
		CrowdSize:    3,
		CrowdRange:   150,
	}
}

// Plan implements Pilot.
func (sp *StrafePilot) Plan(s *Session, tick uint64) Plan {
	cfg := s.Config()
	theta := float64(tick) * sp.AngularSpeed
	pos := core.V(
		cfg.Arena.Width/2+sp.Radius*math.Cos(theta),
		cfg.Arena.Height/2+sp.Radius*math.Sin(theta),
	)

	crowd := 0
	for _, e := range s.Enemies.All() {
		if e.Pos.Dist(s.Player.Pos) <= sp.CrowdRange {
			crowd++
		}
	}

	return Plan{
		Pointer: &pos,
		Fire:    true,
		Special: crowd >= sp.CrowdSize,
	}
}
