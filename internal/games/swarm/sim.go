package swarm

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/swarm-arcade/internal/config"
	"github.com/vovakirdan/swarm-arcade/internal/core"
)

// SimOptions configures headless autopilot runs.
type SimOptions struct {
	MaxTicks int  // tick budget per run
	TickRate int  // nominal rate used to advance the simulated clock
	Workers  int  // concurrent runs; <= 0 means one per seed
	Realtime bool // pace ticks on the wall clock; runs are no longer reproducible
	Pilot    func() Pilot
	Logger   *log.Logger
}

// SimResult is the outcome of one headless run.
type SimResult struct {
	Seed     int64
	Stats    core.RunStats
	GameOver bool
	Elapsed  time.Duration // simulated time, or wall time for realtime runs
}

// Simulate plays one session under the autopilot until game over or the
// tick budget runs out. Time is simulated unless opts.Realtime is set.
func Simulate(ctx context.Context, cfg config.SwarmConfig, seed int64, opts SimOptions) (SimResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	pilot := Pilot(DefaultPilot())
	if opts.Pilot != nil {
		pilot = opts.Pilot()
	}

	loopOpts := []Option{
		WithRand(core.NewRand(seed)),
		WithPilot(pilot),
		WithLogger(logger.With("seed", seed)),
		StopOnGameOver(),
	}
	var (
		clock core.Clock
		src   core.TickSource
	)
	if opts.Realtime {
		clock = core.NewSystemClock()
		src = core.NewIntervalSource(opts.TickRate, opts.MaxTicks)
		loopOpts = append(loopOpts, WithClock(clock))
	} else {
		manual := core.NewManualClock(0)
		clock = manual
		src = core.NewSimulatedSource(0, opts.TickRate, opts.MaxTicks)
		loopOpts = append(loopOpts, FollowTicks(manual))
	}

	loop := NewLoop(cfg, loopOpts...)
	loop.Start()

	if err := loop.Run(ctx, src); err != nil {
		return SimResult{Seed: seed}, err
	}

	return SimResult{
		Seed:     seed,
		Stats:    loop.Session().Stats(),
		GameOver: loop.Phase() == PhaseGameOver,
		Elapsed:  time.Duration(clock.NowMillis()) * time.Millisecond,
	}, nil
}

// SimulateBatch runs one session per seed concurrently. Results keep the
// order of seeds. The first error cancels the remaining runs.
func SimulateBatch(ctx context.Context, cfg config.SwarmConfig, seeds []int64, opts SimOptions) ([]SimResult, error) {
	results := make([]SimResult, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, seed := range seeds {
		g.Go(func() error {
			res, err := Simulate(ctx, cfg, seed, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
