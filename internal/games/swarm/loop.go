package swarm

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swarm-arcade/internal/config"
	"github.com/vovakirdan/swarm-arcade/internal/core"
)

// ErrNotRunning is returned by Run when the loop was never started.
var ErrNotRunning = errors.New("swarm: loop not started")

// Phase is the loop's lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Command is an input event posted to a running loop from another goroutine.
type Command interface {
	apply(l *Loop)
}

// PointerMove moves the player to an arena position.
type PointerMove struct{ Pos core.Vec2 }

// Fire requests a shot.
type Fire struct{ Special bool }

// Restart starts a new session after game over.
type Restart struct{}

func (c PointerMove) apply(l *Loop) { l.OnPointerMove(c.Pos) }
func (c Fire) apply(l *Loop)        { l.OnFire(c.Special) }
func (Restart) apply(l *Loop)       { l.OnRestart() }

// Loop drives a Session through Idle -> Running -> GameOver -> Running.
//
// The On* methods and Tick must be called from one goroutine. When the
// loop is driven by Run, other goroutines deliver input through Post and
// Run applies it between ticks.
type Loop struct {
	session *Session
	phase   Phase
	tick    uint64

	clock          core.Clock
	tickClock      core.SettableClock // set from tick timestamps in Run; nil means untouched
	rng            core.RandomSource
	canvas         Canvas
	logger         *log.Logger
	pilot          Pilot
	stopOnGameOver bool
	onGameOver     func(core.RunStats)

	inbox chan Command
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock sets the time source used for cooldowns. Default: SystemClock.
func WithClock(c core.Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// FollowTicks makes c the loop clock and has Run move it to each tick's
// timestamp before simulating that tick. Paired with a simulated tick
// source this gives deterministic cooldowns at any speed.
func FollowTicks(c core.SettableClock) Option {
	return func(l *Loop) {
		l.clock = c
		l.tickClock = c
	}
}

// WithRand sets the random source used for spawning.
func WithRand(r core.RandomSource) Option {
	return func(l *Loop) { l.rng = r }
}

// WithCanvas renders every tick onto c.
func WithCanvas(c Canvas) Option {
	return func(l *Loop) { l.canvas = c }
}

// WithLogger logs lifecycle transitions to logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// WithPilot lets p supply input before every tick.
func WithPilot(p Pilot) Option {
	return func(l *Loop) { l.pilot = p }
}

// StopOnGameOver makes Run return as soon as the session ends.
func StopOnGameOver() Option {
	return func(l *Loop) { l.stopOnGameOver = true }
}

// OnGameOver registers a callback invoked once per finished session.
func OnGameOver(fn func(core.RunStats)) Option {
	return func(l *Loop) { l.onGameOver = fn }
}

// NewLoop creates an idle loop. Call Start to begin the first session.
func NewLoop(cfg config.SwarmConfig, opts ...Option) *Loop {
	l := &Loop{
		inbox: make(chan Command, 64),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.clock == nil {
		l.clock = core.NewSystemClock()
	}
	if l.rng == nil {
		l.rng = core.NewRand(0)
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	l.session = NewSession(cfg, l.rng)
	return l
}

// Session exposes the current session state for rendering and inspection.
func (l *Loop) Session() *Session {
	return l.session
}

// Phase returns the current lifecycle state.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Ticks returns the number of ticks simulated in the current session.
func (l *Loop) Ticks() uint64 {
	return l.tick
}

// Now returns the loop clock reading in milliseconds.
func (l *Loop) Now() int64 {
	return l.clock.NowMillis()
}

// Start begins a fresh session from any phase.
func (l *Loop) Start() {
	l.session.Init()
	l.tick = 0
	l.phase = PhaseRunning
	l.logger.Debug("session started", "enemies", l.session.Enemies.Len())
}

// OnPointerMove moves the player. Ignored unless running.
func (l *Loop) OnPointerMove(pos core.Vec2) {
	if l.phase != PhaseRunning {
		return
	}
	l.session.MovePlayer(pos)
}

// OnFire attempts a shot. Reports whether a projectile was created.
func (l *Loop) OnFire(special bool) bool {
	if l.phase != PhaseRunning {
		return false
	}
	_, ok := l.session.Fire(special, l.clock.NowMillis())
	return ok
}

// OnRestart starts a new session after game over.
// Reports whether a restart happened.
func (l *Loop) OnRestart() bool {
	if l.phase != PhaseGameOver {
		return false
	}
	l.logger.Info("restart", "previous_score", l.session.Score)
	l.Start()
	return true
}

// Tick runs one simulation step and renders it when a canvas is attached.
// It does nothing unless the loop is running.
func (l *Loop) Tick() TickReport {
	if l.phase != PhaseRunning {
		return TickReport{}
	}

	if l.pilot != nil {
		l.applyPlan(l.pilot.Plan(l.session, l.tick))
	}

	report := l.session.Step()
	l.tick++

	if l.canvas != nil {
		l.Render(l.canvas)
	}

	if l.session.GameOver {
		l.phase = PhaseGameOver
		stats := l.session.Stats()
		l.logger.Info("game over", "score", stats.Score, "kills", stats.Kills, "tick", l.tick)
		if l.onGameOver != nil {
			l.onGameOver(stats)
		}
	}
	return report
}

// Render draws the current session onto c.
func (l *Loop) Render(c Canvas) {
	l.session.Render(c, l.clock.NowMillis())
}

func (l *Loop) applyPlan(p Plan) {
	if p.Pointer != nil {
		l.OnPointerMove(*p.Pointer)
	}
	if p.Special {
		l.OnFire(true)
	}
	if p.Fire {
		l.OnFire(false)
	}
}

// Post queues a command for Run. It never blocks and reports false when
// the queue is full and the command was dropped.
func (l *Loop) Post(cmd Command) bool {
	select {
	case l.inbox <- cmd:
		return true
	default:
		return false
	}
}

// Run ticks the loop on every tick from src until ctx is cancelled, src is
// exhausted, or, with StopOnGameOver, the session ends. Queued commands are
// applied between ticks. Run stops src before returning.
func (l *Loop) Run(ctx context.Context, src core.TickSource) error {
	defer src.Stop()

	if l.phase == PhaseIdle {
		return ErrNotRunning
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-l.inbox:
			cmd.apply(l)
		case at, ok := <-src.Ticks():
			if !ok {
				return nil
			}
			if l.tickClock != nil {
				l.tickClock.Set(at.UnixMilli())
			}
			l.drain()
			l.Tick()
			if l.stopOnGameOver && l.phase == PhaseGameOver {
				return nil
			}
		}
	}
}

// drain applies every queued command so input posted before a tick is
// visible to that tick.
func (l *Loop) drain() {
	for {
		select {
		case cmd := <-l.inbox:
			cmd.apply(l)
		default:
			return
		}
	}
}
