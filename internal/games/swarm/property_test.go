package swarm

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/swarm-arcade/internal/config"
	"github.com/vovakirdan/swarm-arcade/internal/core"
)

// TestSessionInvariants plays random inputs and checks the invariants that
// must hold after every tick.
func TestSessionInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		ticks := rapid.IntRange(1, 400).Draw(t, "ticks")

		s := NewSession(config.DefaultSwarmConfig(), core.NewRand(seed))
		var now int64

		for i := 0; i < ticks && !s.GameOver; i++ {
			if rapid.Bool().Draw(t, "move") {
				s.MovePlayer(core.V(
					rapid.Float64Range(0, 800).Draw(t, "x"),
					rapid.Float64Range(0, 600).Draw(t, "y"),
				))
			}
			if rapid.Bool().Draw(t, "fire") {
				s.Fire(false, now)
			}
			if rapid.IntRange(0, 20).Draw(t, "special") == 0 {
				s.Fire(true, now)
			}

			scoreBefore := s.Score
			enemiesBefore := s.Enemies.Len()
			report := s.Step()
			now += 16

			if s.Score-scoreBefore != 10*report.Kills {
				t.Fatalf("tick %d: score moved by %d for %d kills", i, s.Score-scoreBefore, report.Kills)
			}
			spawned := 0
			if report.Spawned {
				spawned = 1
			}
			if s.Enemies.Len() != enemiesBefore-report.Kills+spawned {
				t.Fatalf("tick %d: enemy count %d, expected %d", i, s.Enemies.Len(), enemiesBefore-report.Kills+spawned)
			}
			if !s.Player.Pos.IsFinite() {
				t.Fatalf("tick %d: player position not finite: %+v", i, s.Player.Pos)
			}
			for _, e := range s.Enemies.All() {
				if !e.Pos.IsFinite() {
					t.Fatalf("tick %d: enemy %d position not finite", i, e.ID)
				}
			}
			for _, p := range s.Projectiles {
				if !p.Pos.IsFinite() {
					t.Fatalf("tick %d: projectile position not finite", i)
				}
				if p.Exhausted() {
					t.Fatalf("tick %d: exhausted projectile retained", i)
				}
				if p.OutOfBounds(800, 600) {
					t.Fatalf("tick %d: out of bounds projectile retained", i)
				}
			}
		}

		st := s.Stats()
		if st.Score != 10*st.Kills {
			t.Fatalf("final score %d does not match %d kills", st.Score, st.Kills)
		}
	})
}

// TestNormalFireGating checks that two normal shots closer than the
// cooldown never both fire.
func TestNormalFireGating(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		first := rapid.Int64Range(0, 1_000_000).Draw(t, "first")
		gap := rapid.Int64Range(0, 5000).Draw(t, "gap")

		s := newQuietSession()
		spawnAt(s, 700, 300)

		_, ok1 := s.Fire(false, first)
		_, ok2 := s.Fire(false, first+gap)

		if !ok1 {
			t.Fatal("first shot should always fire")
		}
		if ok2 != (gap >= 2500) {
			t.Fatalf("gap %dms: second shot ok=%v", gap, ok2)
		}
		if len(s.Projectiles) != 1+boolToInt(ok2) {
			t.Fatalf("projectile count %d", len(s.Projectiles))
		}
	})
}

// TestFireNeverWithoutEnemies checks that an empty arena never produces
// projectiles, whatever the timing.
func TestFireNeverWithoutEnemies(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := newQuietSession()
		n := rapid.IntRange(1, 20).Draw(t, "shots")
		for i := 0; i < n; i++ {
			special := rapid.Bool().Draw(t, "special")
			now := rapid.Int64Range(0, 1_000_000).Draw(t, "now")
			if _, ok := s.Fire(special, now); ok {
				t.Fatal("fire produced a projectile with no enemies")
			}
		}
		if len(s.Projectiles) != 0 {
			t.Fatalf("%d projectiles in an empty arena", len(s.Projectiles))
		}
	})
}

// TestSpecialHitsAreCapped checks that one special shot destroys exactly
// min(maxHits, enemies in reach) enemies.
func TestSpecialHitsAreCapped(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "enemies")

		s := newQuietSession()
		for i := 0; i < n; i++ {
			dx := rapid.Float64Range(-10, 10).Draw(t, "dx")
			dy := rapid.Float64Range(-10, 10).Draw(t, "dy")
			spawnAt(s, 400+dx, 300+dy)
		}

		p, ok := s.Fire(true, 0)
		if !ok {
			t.Fatal("special should fire")
		}
		s.resolveProjectiles()

		// Every enemy sits within 10*sqrt2 of the player and the projectile
		// moves at most 8, so all of them are in reach (radius sum 30).
		want := min(5, n)
		if p.HitCount != want {
			t.Fatalf("hitCount %d, expected %d", p.HitCount, want)
		}
		if s.Score != 10*want {
			t.Fatalf("score %d, expected %d", s.Score, 10*want)
		}
		if retained := len(s.Projectiles) == 1; retained != (want < 5) {
			t.Fatalf("retained=%v with %d hits", retained, want)
		}
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
