package swarm

import (
	"github.com/vovakirdan/swarm-arcade/internal/config"
	"github.com/vovakirdan/swarm-arcade/internal/core"
)

// Session holds the complete mutable state of one game.
// It is single-threaded: callers must not use it from more than one
// goroutine at a time. Loop provides the serialized entry points.
type Session struct {
	cfg config.SwarmConfig

	Player      Player
	Enemies     *EnemySet
	Projectiles []*Projectile
	Score       int
	GameOver    bool

	Normal  Cooldown
	Special Cooldown

	spawner *Spawner
	stats   core.RunStats
}

// TickReport describes what happened during one Step.
type TickReport struct {
	Kills     int
	PlayerHit bool
	Spawned   bool
}

// NewSession creates a session in its initial state.
func NewSession(cfg config.SwarmConfig, rng core.RandomSource) *Session {
	s := &Session{
		cfg:     cfg,
		Enemies: NewEnemySet(),
		spawner: NewSpawner(rng, cfg.Enemy, cfg.Arena.Width, cfg.Arena.Height),
	}
	s.Normal.Duration = cfg.Projectile.Normal.CooldownMs
	s.Special.Duration = cfg.Projectile.Special.CooldownMs
	s.Init()
	return s
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.SwarmConfig {
	return s.cfg
}

// Init resets every piece of state and spawns the initial enemies.
// The player starts at the arena center.
func (s *Session) Init() {
	s.Player = Player{
		Pos:    core.V(s.cfg.Arena.Width/2, s.cfg.Arena.Height/2),
		Radius: s.cfg.Player.Radius,
	}
	s.Enemies.Reset()
	s.Projectiles = nil
	s.Score = 0
	s.GameOver = false
	s.Normal.Reset()
	s.Special.Reset()
	s.stats = core.RunStats{}

	for i := 0; i < s.cfg.Enemy.InitialCount; i++ {
		s.spawner.Spawn(s.Enemies, s.Player.Pos)
	}
}

// MovePlayer places the player at pos, clamped to the arena.
func (s *Session) MovePlayer(pos core.Vec2) {
	pos.X = core.ClampF(pos.X, 0, s.cfg.Arena.Width)
	pos.Y = core.ClampF(pos.Y, 0, s.cfg.Arena.Height)
	s.Player.MoveTo(pos)
}

// Fire launches a projectile at the enemy nearest the player.
// It is a no-op while the weapon cools down, and a no-op that leaves the
// cooldown untouched when there is nothing to shoot at.
func (s *Session) Fire(special bool, now int64) (*Projectile, bool) {
	cd, kind := &s.Normal, s.cfg.Projectile.Normal
	if special {
		cd, kind = &s.Special, s.cfg.Projectile.Special
	}
	if !cd.Ready(now) {
		return nil, false
	}
	target, ok := s.Enemies.Nearest(s.Player.Pos)
	if !ok {
		return nil, false
	}

	p := newProjectile(s.Player.Pos, target, kind, special)
	s.Projectiles = append(s.Projectiles, p)
	cd.Consume(now)

	if special {
		s.stats.SpecialsFired++
	} else {
		s.stats.ShotsFired++
	}
	return p, true
}

// Step advances the simulation by one tick:
// enemies move and are checked against the player, projectiles move and
// resolve hits, then a new enemy may spawn.
//
// A player collision does not cut the tick short. The whole tick runs and
// GameOver is set at the end. Step on a finished session does nothing.
func (s *Session) Step() TickReport {
	var report TickReport
	if s.GameOver {
		return report
	}

	report.PlayerHit = s.moveEnemies()
	report.Kills = s.resolveProjectiles()
	_, report.Spawned = s.spawner.MaybeSpawn(s.Enemies, s.Player.Pos)

	s.stats.Ticks++
	s.stats.Kills += report.Kills
	if report.PlayerHit {
		s.GameOver = true
	}
	return report
}

// Stats returns the run summary so far.
func (s *Session) Stats() core.RunStats {
	st := s.stats
	st.Score = s.Score
	return st
}
