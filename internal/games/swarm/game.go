// Package swarm implements Swarm: a point dodging homing enemies while it
// fires targeted projectiles, with a slow-recharging multi-hit special shot.
//
// The simulation is pure: Session and Loop read time from a core.Clock,
// randomness from a core.RandomSource and draw through a Canvas.
// Game adapts a Loop to the arcade registry.
package swarm

import (
	"github.com/vovakirdan/swarm-arcade/internal/config"
	"github.com/vovakirdan/swarm-arcade/internal/core"
	"github.com/vovakirdan/swarm-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// LoadConfig loads the Swarm configuration from the configured search path,
// falling back to defaults when the file is unusable.
func LoadConfig() (config.SwarmConfig, error) {
	cfg, err := config.LoadSwarm(configPath)
	if err != nil {
		return config.DefaultSwarmConfig(), err
	}
	return cfg, nil
}

// Game implements registry.Game for Swarm.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.SwarmConfig
	loop    *Loop
	canvas  *ScreenCanvas
	paused  bool
}

// New creates a new Swarm game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("swarm", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "swarm"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Swarm"
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Config errors fall back to defaults; the CLI reports them up front.
	g.cfg, _ = LoadConfig()

	g.loop = NewLoop(g.cfg,
		WithClock(runtime.ClockOrSystem()),
		WithRand(core.NewRand(runtime.Seed)),
	)
	g.loop.Start()
	g.paused = false
	g.canvas = NewScreenCanvas(core.NewScreen(runtime.ScreenW, runtime.ScreenH), g.cfg.Arena.Width, g.cfg.Arena.Height)
}

// Resize rescales the arena onto a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	if g.canvas != nil {
		g.canvas.SetTarget(core.NewScreen(w, h))
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.loop.Phase() == PhaseGameOver {
		if in.Has(core.ActionRestart) || in.Has(core.ActionFire) {
			g.loop.OnRestart()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyMovement(in)

	if in.Has(core.ActionSpecial) {
		g.loop.OnFire(true)
	}
	if in.Has(core.ActionFire) {
		g.loop.OnFire(false)
	}

	g.loop.Tick()
	return core.StepResult{State: g.State()}
}

// applyMovement moves the player to the pointer cell, or nudges it with
// the direction keys when the terminal does not report the mouse.
func (g *Game) applyMovement(in core.InputFrame) {
	pos := g.loop.Session().Player.Pos
	if in.Pointer != nil {
		pos = g.canvas.ToArena(*in.Pointer)
	}

	step := g.cfg.Controls.KeyboardStep
	if in.Has(core.ActionLeft) {
		pos.X -= step
	}
	if in.Has(core.ActionRight) {
		pos.X += step
	}
	if in.Has(core.ActionUp) {
		pos.Y -= step
	}
	if in.Has(core.ActionDown) {
		pos.Y += step
	}
	g.loop.OnPointerMove(pos)
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	g.canvas.SetTarget(dst)
	g.loop.Render(g.canvas)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED - press P to resume ")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.loop.Session()
	return core.GameState{
		Score:    s.Score,
		GameOver: g.loop.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Stats returns the run summary for the current session.
func (g *Game) Stats() core.RunStats {
	return g.loop.Session().Stats()
}

// Loop exposes the underlying loop for tests and headless drivers.
func (g *Game) Loop() *Loop {
	return g.loop
}
