package swarm

import (
	"github.com/vovakirdan/swarm-arcade/internal/config"
	"github.com/vovakirdan/swarm-arcade/internal/core"
)

// Spawner places new enemies uniformly in the arena, away from the player.
type Spawner struct {
	rng    core.RandomSource
	cfg    config.SwarmEnemy
	width  float64
	height float64
}

// NewSpawner creates a spawner for a w x h arena.
func NewSpawner(rng core.RandomSource, cfg config.SwarmEnemy, w, h float64) *Spawner {
	return &Spawner{rng: rng, cfg: cfg, width: w, height: h}
}

// Position samples a spawn point at least ExclusionRadius from player.
// Candidates inside the exclusion zone are rejected and resampled up to
// MaxSpawnAttempts times; after that the arena corner farthest from the
// player is used, so the call always terminates.
func (sp *Spawner) Position(player core.Vec2) core.Vec2 {
	for i := 0; i < sp.cfg.MaxSpawnAttempts; i++ {
		p := core.V(sp.rng.Float64()*sp.width, sp.rng.Float64()*sp.height)
		if p.Dist(player) >= sp.cfg.ExclusionRadius {
			return p
		}
	}
	return sp.farthestCorner(player)
}

func (sp *Spawner) farthestCorner(player core.Vec2) core.Vec2 {
	corners := [4]core.Vec2{
		core.V(0, 0),
		core.V(sp.width, 0),
		core.V(0, sp.height),
		core.V(sp.width, sp.height),
	}
	best := corners[0]
	for _, c := range corners[1:] {
		if c.Dist(player) > best.Dist(player) {
			best = c
		}
	}
	return best
}

// Spawn adds one enemy to set.
func (sp *Spawner) Spawn(set *EnemySet, player core.Vec2) *Enemy {
	return set.Spawn(sp.Position(player), sp.cfg.Radius, sp.cfg.Speed)
}

// MaybeSpawn spawns one enemy with probability SpawnChance.
// Exactly one random draw is made for the roll itself.
func (sp *Spawner) MaybeSpawn(set *EnemySet, player core.Vec2) (*Enemy, bool) {
	if sp.rng.Float64() >= sp.cfg.SpawnChance {
		return nil, false
	}
	return sp.Spawn(set, player), true
}
