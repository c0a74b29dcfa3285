package swarm

import "math"

// Snapshot contains the simulation state for replay checks and debugging.
// Positions are stored as IEEE-754 bit patterns so equal snapshots hash
// equally and no precision is lost.
type Snapshot struct {
	Tick     uint64
	Phase    int
	Score    int
	PlayerX  uint64
	PlayerY  uint64
	Kills    int
	Shots    int
	Specials int

	// Each enemy is 3 values: ID, X bits, Y bits
	EnemyCount int
	EnemyData  []uint64

	// Each projectile is 6 values: Target, X bits, Y bits, Special, HitCount, MaxHits
	ProjectileCount int
	ProjectileData  []uint64
}

// Snapshot returns the current loop state as a Snapshot.
func (l *Loop) Snapshot() Snapshot {
	s := l.session
	stats := s.Stats()

	enemies := s.Enemies.All()
	enemyData := make([]uint64, 0, len(enemies)*3)
	for _, e := range enemies {
		enemyData = append(enemyData, uint64(e.ID), math.Float64bits(e.Pos.X), math.Float64bits(e.Pos.Y))
	}

	projData := make([]uint64, 0, len(s.Projectiles)*6)
	for _, p := range s.Projectiles {
		special := uint64(0)
		if p.Special {
			special = 1
		}
		projData = append(projData,
			uint64(p.Target),
			math.Float64bits(p.Pos.X),
			math.Float64bits(p.Pos.Y),
			special,
			uint64(p.HitCount), //#nosec G115 -- hit count is never negative
			uint64(p.MaxHits),  //#nosec G115 -- validated positive
		)
	}

	return Snapshot{
		Tick:            l.tick,
		Phase:           int(l.phase),
		Score:           s.Score,
		PlayerX:         math.Float64bits(s.Player.Pos.X),
		PlayerY:         math.Float64bits(s.Player.Pos.Y),
		Kills:           stats.Kills,
		Shots:           stats.ShotsFired,
		Specials:        stats.SpecialsFired,
		EnemyCount:      len(enemies),
		EnemyData:       enemyData,
		ProjectileCount: len(s.Projectiles),
		ProjectileData:  projData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + snap.PlayerX
	h = h*31 + snap.PlayerY
	h = h*31 + uint64(snap.Kills)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shots)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Specials)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + v
	}
	for _, v := range snap.ProjectileData {
		h = h*31 + v
	}
	return h
}
