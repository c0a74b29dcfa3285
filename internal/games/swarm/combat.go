package swarm

// moveEnemies homes every enemy on the player and reports whether any of
// them touches the player. Every enemy moves even after a hit is found.
func (s *Session) moveEnemies() bool {
	hit := false
	for _, e := range s.Enemies.All() {
		e.Move(s.Player.Pos)
		if overlaps(s.Player.Pos, s.Player.Radius, e.Pos, e.Radius) {
			hit = true
		}
	}
	return hit
}

// resolveProjectiles moves each projectile in firing order and tests it
// against the live enemies, which earlier projectiles in the same tick
// may already have thinned out. Every enemy hit is destroyed and scores.
// A projectile stops checking once it has used all of its hits; until then
// it can destroy several enemies in one tick.
//
// A projectile survives the tick only if it still has hits left and is
// inside the arena. Returns the number of enemies destroyed.
func (s *Session) resolveProjectiles() int {
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	points := s.cfg.Scoring.PointsPerKill
	kills := 0

	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if !p.Move(s.Enemies) {
			continue
		}

		kills += s.Enemies.Filter(func(e *Enemy) bool {
			if p.Exhausted() || !overlaps(p.Pos, p.Radius, e.Pos, e.Radius) {
				return true
			}
			p.HitCount++
			s.Score += points
			return false
		})

		if !p.Exhausted() && !p.OutOfBounds(w, h) {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(s.Projectiles); i++ {
		s.Projectiles[i] = nil
	}
	s.Projectiles = kept
	return kills
}
