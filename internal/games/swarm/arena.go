package swarm

import "github.com/vovakirdan/swarm-arcade/internal/core"

// EnemySet owns the live enemies in spawn order.
// Enemies are addressed by EnemyID handles so projectiles can detect
// that their target died without holding a pointer to it.
type EnemySet struct {
	items  []*Enemy
	byID   map[EnemyID]*Enemy
	nextID EnemyID
}

// NewEnemySet creates an empty set.
func NewEnemySet() *EnemySet {
	s := &EnemySet{}
	s.Reset()
	return s
}

// Reset removes every enemy and restarts handle numbering.
func (s *EnemySet) Reset() {
	s.items = s.items[:0]
	s.byID = make(map[EnemyID]*Enemy)
	s.nextID = 0
}

// Spawn adds an enemy and returns it with a fresh ID.
func (s *EnemySet) Spawn(pos core.Vec2, radius, speed float64) *Enemy {
	s.nextID++
	e := &Enemy{ID: s.nextID, Pos: pos, Radius: radius, Speed: speed}
	s.items = append(s.items, e)
	s.byID[e.ID] = e
	return e
}

// Get resolves a handle. ok is false once the enemy has been removed.
func (s *EnemySet) Get(id EnemyID) (*Enemy, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// Len returns the number of live enemies.
func (s *EnemySet) Len() int {
	return len(s.items)
}

// All returns the live enemies in spawn order.
// The slice is only valid until the next mutation.
func (s *EnemySet) All() []*Enemy {
	return s.items
}

// Filter keeps the enemies for which keep returns true, preserving order.
// keep is called exactly once per enemy in order, so it may carry state
// across calls. Returns the number removed.
func (s *EnemySet) Filter(keep func(*Enemy) bool) int {
	kept := s.items[:0]
	removed := 0
	for _, e := range s.items {
		if keep(e) {
			kept = append(kept, e)
			continue
		}
		delete(s.byID, e.ID)
		removed++
	}
	// Drop references held past the new length.
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
	return removed
}

// Nearest returns the enemy closest to p. Ties go to the earliest spawned.
func (s *EnemySet) Nearest(p core.Vec2) (*Enemy, bool) {
	var best *Enemy
	bestDist := 0.0
	for _, e := range s.items {
		d := p.Dist(e.Pos)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, best != nil
}
