package swarm

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/swarm-arcade/internal/core"
	"github.com/vovakirdan/swarm-arcade/internal/registry"
)

func newTestGame(t *testing.T, seed int64) (*Game, *core.ManualClock) {
	t.Helper()
	t.Setenv("HOME", t.TempDir()) // keep user configs out of the test

	clock := core.NewManualClock(0)
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
		Clock:    clock,
	})
	return g, clock
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("swarm") {
		t.Fatal("swarm should be registered")
	}
	g, err := registry.Create("swarm")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "swarm" || g.Title() != "Swarm" {
		t.Errorf("unexpected identity %q / %q", g.ID(), g.Title())
	}
	if _, ok := g.(registry.StatsReporter); !ok {
		t.Error("swarm should report run stats")
	}
	if _, ok := g.(registry.Resizer); !ok {
		t.Error("swarm should follow resizes without restarting")
	}
}

func TestGameReset(t *testing.T) {
	g, _ := newTestGame(t, 42)

	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("unexpected initial state %+v", state)
	}
	if g.Loop().Phase() != PhaseRunning {
		t.Errorf("Reset should start a session, phase=%s", g.Loop().Phase())
	}
	if g.Loop().Session().Enemies.Len() != 5 {
		t.Errorf("expected 5 enemies, got %d", g.Loop().Session().Enemies.Len())
	}
}

func TestGamePointerMovesPlayer(t *testing.T) {
	g, _ := newTestGame(t, 1)

	in := core.NewInputFrame()
	in.SetPointer(10, 5)
	g.Step(in)

	if got := g.Loop().Session().Player.Pos; got != core.V(105, 137.5) {
		t.Errorf("pointer cell (10,5) should map to arena (105,137.5), got %+v", got)
	}
}

func TestGameKeyboardNudge(t *testing.T) {
	g, _ := newTestGame(t, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionUp)
	g.Step(in)

	if got := g.Loop().Session().Player.Pos; got != core.V(420, 280) {
		t.Errorf("expected nudge to (420,280), got %+v", got)
	}
}

func TestGameFireActions(t *testing.T) {
	g, clock := newTestGame(t, 5)

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	in.Set(core.ActionSpecial)
	g.Step(in)

	st := g.Stats()
	if st.ShotsFired != 1 || st.SpecialsFired != 1 {
		t.Errorf("expected one shot of each kind, got %+v", st)
	}

	// Still cooling down.
	clock.Advance(time.Second)
	g.Step(in)
	if st := g.Stats(); st.ShotsFired != 1 || st.SpecialsFired != 1 {
		t.Errorf("shots during cooldown should be ignored, got %+v", st)
	}
}

func TestGamePause(t *testing.T) {
	g, _ := newTestGame(t, 1)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	ticks := g.Loop().Ticks()
	g.Step(core.NewInputFrame())
	if g.Loop().Ticks() != ticks {
		t.Error("paused game should not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameClickRestartsAfterGameOver(t *testing.T) {
	g, _ := newTestGame(t, 3)
	spawnAt(g.Loop().Session(), 400, 300)

	g.Step(core.NewInputFrame())
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	click := core.NewInputFrame()
	click.Set(core.ActionFire)
	g.Step(click)

	if g.State().GameOver {
		t.Error("click should restart after game over")
	}
	if g.Stats().ShotsFired != 0 {
		t.Error("the restarting click must not also fire")
	}
}

func TestGameRender(t *testing.T) {
	g, _ := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !strings.Contains(screen.Row(4), "Score: 0") {
		t.Errorf("score line missing, row 4 = %q", screen.Row(4))
	}
	if screen.GetCell(40, 12).Color != core.ColorBlue {
		t.Error("player should be drawn at the screen center")
	}
}

func TestGameRenderPaused(t *testing.T) {
	g, _ := newTestGame(t, 1)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused banner missing")
	}
}

func TestGameResizeKeepsSession(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(core.NewInputFrame())
	ticks := g.Loop().Ticks()

	g.Resize(160, 48)

	if g.Loop().Ticks() != ticks {
		t.Error("resize should not restart the session")
	}
	in := core.NewInputFrame()
	in.SetPointer(80, 24)
	g.Step(in)
	if got := g.Loop().Session().Player.Pos; got != core.V(402.5, 306.25) {
		t.Errorf("pointer should use the new scale, got %+v", got)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 == 0:
			inputs[i].Set(core.ActionFire)
		case i%7 < 3:
			inputs[i].Set(core.ActionLeft)
		default:
			inputs[i].Set(core.ActionDown)
		}
	}

	run := func() Snapshot {
		g, clock := newTestGame(t, 777)
		for _, in := range inputs {
			clock.Advance(16 * time.Millisecond)
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Loop().Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
}
