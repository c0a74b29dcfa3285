package swarm

import (
	"testing"

	"github.com/vovakirdan/swarm-arcade/internal/config"
	"github.com/vovakirdan/swarm-arcade/internal/core"
)

// seqRand replays fixed values, then repeats the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return v
}

// quietConfig is the default config with no initial enemies and no
// random spawns, so tests place every enemy themselves.
func quietConfig() config.SwarmConfig {
	cfg := config.DefaultSwarmConfig()
	cfg.Enemy.InitialCount = 0
	cfg.Enemy.SpawnChance = 0
	return cfg
}

func newQuietSession() *Session {
	return NewSession(quietConfig(), core.NewRand(1))
}

func spawnAt(s *Session, x, y float64) *Enemy {
	cfg := s.Config()
	return s.Enemies.Spawn(core.V(x, y), cfg.Enemy.Radius, cfg.Enemy.Speed)
}

func TestInitialState(t *testing.T) {
	s := NewSession(config.DefaultSwarmConfig(), core.NewRand(42))

	if s.Enemies.Len() != 5 {
		t.Errorf("expected 5 initial enemies, got %d", s.Enemies.Len())
	}
	if len(s.Projectiles) != 0 {
		t.Errorf("expected no projectiles, got %d", len(s.Projectiles))
	}
	if s.Score != 0 || s.GameOver {
		t.Errorf("expected score 0 and running, got score=%d gameOver=%v", s.Score, s.GameOver)
	}
	if s.Player.Pos != core.V(400, 300) {
		t.Errorf("player should start at arena center, got %+v", s.Player.Pos)
	}
	for _, e := range s.Enemies.All() {
		if d := e.Pos.Dist(s.Player.Pos); d < 100 {
			t.Errorf("enemy %d spawned %.1f from player, inside exclusion radius", e.ID, d)
		}
	}
}

func TestFireTargetsNearestEnemy(t *testing.T) {
	s := newQuietSession()
	spawnAt(s, 400+200, 300)
	near := spawnAt(s, 400, 300-50)

	p, ok := s.Fire(false, 0)
	if !ok {
		t.Fatal("fire should succeed with enemies present")
	}
	if p.Target != near.ID {
		t.Errorf("projectile targets enemy %d, expected nearest %d", p.Target, near.ID)
	}
	if p.Pos != s.Player.Pos {
		t.Errorf("projectile should start at the player, got %+v", p.Pos)
	}
}

func TestFireTieGoesToFirstSpawned(t *testing.T) {
	s := newQuietSession()
	first := spawnAt(s, 500, 300)
	spawnAt(s, 300, 300)

	p, _ := s.Fire(false, 0)
	if p.Target != first.ID {
		t.Errorf("tie should go to first spawned enemy %d, got %d", first.ID, p.Target)
	}
}

func TestFireWithoutEnemies(t *testing.T) {
	s := newQuietSession()

	if _, ok := s.Fire(false, 0); ok {
		t.Fatal("fire with no enemies should be a no-op")
	}
	if len(s.Projectiles) != 0 {
		t.Fatalf("no projectile expected, got %d", len(s.Projectiles))
	}

	// The failed attempt must not have started the cooldown.
	spawnAt(s, 600, 300)
	if _, ok := s.Fire(false, 10); !ok {
		t.Error("cooldown should not be consumed by a shot with no target")
	}
}

func TestFireCooldown(t *testing.T) {
	tests := []struct {
		name    string
		special bool
		retry   int64
		wantOK  bool
	}{
		{"normal within cooldown", false, 1000 + 2499, false},
		{"normal after cooldown", false, 1000 + 2500, true},
		{"special within cooldown", true, 1000 + 119999, false},
		{"special after cooldown", true, 1000 + 120000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newQuietSession()
			spawnAt(s, 600, 300)

			if _, ok := s.Fire(tt.special, 1000); !ok {
				t.Fatal("first shot should fire")
			}
			if _, ok := s.Fire(tt.special, tt.retry); ok != tt.wantOK {
				t.Errorf("second shot ok=%v, expected %v", ok, tt.wantOK)
			}
		})
	}
}

func TestWeaponsReadyAtSessionStart(t *testing.T) {
	s := newQuietSession()
	spawnAt(s, 600, 300)

	// A clock that starts at zero must not make the first shots wait.
	if _, ok := s.Fire(false, 0); !ok {
		t.Error("normal fire should be available at start")
	}
	if _, ok := s.Fire(true, 0); !ok {
		t.Error("special fire should be available at start")
	}
}

func TestCooldownsIndependent(t *testing.T) {
	s := newQuietSession()
	spawnAt(s, 600, 300)

	s.Fire(false, 0)
	if _, ok := s.Fire(true, 100); !ok {
		t.Error("special cooldown should not be affected by a normal shot")
	}
}

func TestNormalProjectileStopsAfterOneHit(t *testing.T) {
	s := newQuietSession()
	target := spawnAt(s, 412, 300)
	spawnAt(s, 414, 300)

	if _, ok := s.Fire(false, 0); !ok {
		t.Fatal("fire failed")
	}
	kills := s.resolveProjectiles()

	if kills != 1 || s.Score != 10 {
		t.Errorf("expected 1 kill and score 10, got %d kills score %d", kills, s.Score)
	}
	if _, alive := s.Enemies.Get(target.ID); alive {
		t.Error("target should be destroyed")
	}
	if s.Enemies.Len() != 1 {
		t.Errorf("second enemy should survive, %d left", s.Enemies.Len())
	}
	if len(s.Projectiles) != 0 {
		t.Errorf("normal projectile should be removed after its hit, %d left", len(s.Projectiles))
	}
}

func TestNormalProjectileIgnoresMaxHits(t *testing.T) {
	cfg := quietConfig()
	cfg.Projectile.Normal.MaxHits = 3
	s := NewSession(cfg, core.NewRand(1))
	spawnAt(s, 412, 300)
	spawnAt(s, 414, 300)

	if _, ok := s.Fire(false, 0); !ok {
		t.Fatal("fire failed")
	}
	kills := s.resolveProjectiles()

	if kills != 1 {
		t.Errorf("a normal shot should destroy one enemy, got %d", kills)
	}
	if len(s.Projectiles) != 0 {
		t.Errorf("normal projectile should be removed after its hit, %d left", len(s.Projectiles))
	}
}

func TestSpecialProjectileHitsThreeInOneTick(t *testing.T) {
	s := newQuietSession()
	spawnAt(s, 420, 300)
	spawnAt(s, 408, 320)
	spawnAt(s, 400, 310)

	p, ok := s.Fire(true, 0)
	if !ok {
		t.Fatal("fire failed")
	}
	s.resolveProjectiles()

	if p.HitCount != 3 {
		t.Errorf("hitCount = %d, expected 3", p.HitCount)
	}
	if s.Score != 30 {
		t.Errorf("score = %d, expected 30", s.Score)
	}
	if s.Enemies.Len() != 0 {
		t.Errorf("all three enemies should be destroyed, %d left", s.Enemies.Len())
	}
	if len(s.Projectiles) != 1 {
		t.Errorf("special projectile with hits left should be retained, got %d", len(s.Projectiles))
	}
}

func TestSpecialProjectileCapsAtMaxHits(t *testing.T) {
	s := newQuietSession()
	offsets := [][2]float64{{5, 0}, {-5, 0}, {0, 5}, {0, -5}, {4, 4}, {-4, -4}, {4, -4}}
	for _, o := range offsets {
		spawnAt(s, 400+o[0], 300+o[1])
	}

	p, _ := s.Fire(true, 0)
	s.resolveProjectiles()

	if p.HitCount != 5 {
		t.Errorf("hitCount = %d, expected 5", p.HitCount)
	}
	if s.Score != 50 {
		t.Errorf("score = %d, expected 50", s.Score)
	}
	if s.Enemies.Len() != 2 {
		t.Errorf("expected 2 survivors, got %d", s.Enemies.Len())
	}
	// Survivors are the last two spawned.
	for _, e := range s.Enemies.All() {
		if e.ID < 6 {
			t.Errorf("enemy %d should have been hit before later ones", e.ID)
		}
	}
	if len(s.Projectiles) != 0 {
		t.Error("exhausted special projectile should be removed")
	}
}

func TestLaterProjectileSeesThinnedEnemies(t *testing.T) {
	s := newQuietSession()
	spawnAt(s, 412, 300)

	s.Fire(false, 0)
	s.Fire(false, 5000)
	if len(s.Projectiles) != 2 {
		t.Fatalf("expected 2 projectiles, got %d", len(s.Projectiles))
	}

	s.resolveProjectiles()

	if s.Score != 10 {
		t.Errorf("one enemy can only score once, got %d", s.Score)
	}
	if len(s.Projectiles) != 1 {
		t.Fatalf("second projectile should survive with a dead target, got %d", len(s.Projectiles))
	}
	if s.Projectiles[0].HitCount != 0 {
		t.Error("second projectile should not have hit anything")
	}
}

func TestStaleTargetKeepsHeading(t *testing.T) {
	s := newQuietSession()
	target := spawnAt(s, 600, 300)

	p, _ := s.Fire(false, 0)
	s.Enemies.Filter(func(e *Enemy) bool { return e.ID != target.ID })

	s.resolveProjectiles()
	if p.Pos != core.V(405, 300) {
		t.Errorf("projectile should continue along its heading, got %+v", p.Pos)
	}
	if len(s.Projectiles) != 1 {
		t.Error("projectile with a stale target should be retained while in bounds")
	}
}

func TestProjectileFollowsLiveTarget(t *testing.T) {
	s := newQuietSession()
	target := spawnAt(s, 600, 300)

	p, _ := s.Fire(false, 0)
	target.Pos = core.V(400, 500)

	s.resolveProjectiles()
	if p.Pos != core.V(400, 305) {
		t.Errorf("projectile should home on the target's current position, got %+v", p.Pos)
	}
	if p.Heading != core.V(0, 1) {
		t.Errorf("heading should follow the target, got %+v", p.Heading)
	}
}

func TestOutOfBoundsProjectileDropped(t *testing.T) {
	s := newQuietSession()
	s.MovePlayer(core.V(798, 300))
	target := spawnAt(s, 900, 300) // spawned outside the arena on purpose

	s.Fire(false, 0)
	s.resolveProjectiles()

	if len(s.Projectiles) != 0 {
		t.Errorf("projectile at x=803 should be dropped, %d left", len(s.Projectiles))
	}
	if _, alive := s.Enemies.Get(target.ID); !alive {
		t.Error("target should not have been hit")
	}
}

func TestProjectileWithoutHeadingOrTargetDropped(t *testing.T) {
	s := newQuietSession()
	s.Projectiles = append(s.Projectiles, &Projectile{Pos: core.V(100, 100), Radius: 5, Speed: 5, Target: 99, MaxHits: 1})

	s.resolveProjectiles()
	if len(s.Projectiles) != 0 {
		t.Error("projectile that can never move should be discarded")
	}
}

func TestCoincidentPositionsDoNotProduceNaN(t *testing.T) {
	s := newQuietSession()
	e := spawnAt(s, 400, 300)

	s.Step()

	if !s.Player.Pos.IsFinite() || !e.Pos.IsFinite() {
		t.Fatalf("NaN after coincident step: player=%+v enemy=%+v", s.Player.Pos, e.Pos)
	}
	if e.Pos != core.V(400, 300) {
		t.Errorf("enemy on top of the player should not move, got %+v", e.Pos)
	}
	if !s.GameOver {
		t.Error("coincident enemy should end the game")
	}
}

func TestGameOverCompletesTick(t *testing.T) {
	s := newQuietSession()
	spawnAt(s, 200, 300) // out of reach, projectile target
	spawnAt(s, 425, 300) // touches the player after moving 2

	// Aim at the far enemy and park a second shot right on it.
	s.Projectiles = append(s.Projectiles, &Projectile{
		Pos: core.V(205, 300), Radius: 5, Speed: 5, Target: 1, Heading: core.V(-1, 0), MaxHits: 1,
	})

	report := s.Step()
	if !report.PlayerHit || !s.GameOver {
		t.Fatal("player collision should end the game")
	}
	if report.Kills != 1 || s.Score != 10 {
		t.Errorf("projectile pass should still run on the losing tick, kills=%d score=%d", report.Kills, s.Score)
	}

	// Frozen afterwards.
	before := s.Enemies.All()[0].Pos
	s.Step()
	if s.Enemies.All()[0].Pos != before {
		t.Error("a finished session must not advance")
	}
}

func TestTouchingIsNotCollision(t *testing.T) {
	s := newQuietSession()
	// Exactly player.radius + enemy.radius apart after moving 2.
	spawnAt(s, 400+32, 300)

	s.Step()
	if s.GameOver {
		t.Error("circles that only touch should not collide")
	}
}

func TestEnemiesHomeOnPlayer(t *testing.T) {
	s := newQuietSession()
	e := spawnAt(s, 400, 100)

	s.Step()
	if e.Pos != core.V(400, 102) {
		t.Errorf("enemy should move 2 units toward the player, got %+v", e.Pos)
	}
}

func TestInitAfterGameOverResets(t *testing.T) {
	s := NewSession(config.DefaultSwarmConfig(), core.NewRand(7))
	spawnAt(s, 400, 300)
	s.Fire(false, 0)
	s.Score = 120
	s.Step()
	if !s.GameOver {
		t.Fatal("expected game over")
	}

	s.Init()

	if s.Score != 0 || s.GameOver {
		t.Errorf("Init should reset score and game over, got %d %v", s.Score, s.GameOver)
	}
	if s.Enemies.Len() != 5 || len(s.Projectiles) != 0 {
		t.Errorf("Init should leave 5 enemies and 0 projectiles, got %d and %d",
			s.Enemies.Len(), len(s.Projectiles))
	}
	if s.Stats() != (core.RunStats{}) {
		t.Errorf("Init should clear stats, got %+v", s.Stats())
	}
	if !s.Normal.Ready(0) || !s.Special.Ready(0) {
		t.Error("Init should make both weapons ready")
	}
}

func TestStatsTrackShotsAndKills(t *testing.T) {
	s := newQuietSession()
	spawnAt(s, 412, 300)
	spawnAt(s, 700, 300)

	s.Fire(false, 0)
	s.Fire(true, 0)
	s.Step()

	st := s.Stats()
	if st.ShotsFired != 1 || st.SpecialsFired != 1 {
		t.Errorf("shots = %d specials = %d, expected 1 and 1", st.ShotsFired, st.SpecialsFired)
	}
	if st.Kills < 1 || st.Score != st.Kills*10 {
		t.Errorf("score should be 10 per kill: %+v", st)
	}
	if st.Ticks != 1 {
		t.Errorf("ticks = %d, expected 1", st.Ticks)
	}
}

func TestMovePlayerClampsToArena(t *testing.T) {
	s := newQuietSession()
	s.MovePlayer(core.V(-50, 900))
	if s.Player.Pos != core.V(0, 600) {
		t.Errorf("player should be clamped to the arena, got %+v", s.Player.Pos)
	}
}
