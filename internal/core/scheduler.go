package core

import (
	"sync"
	"time"
)

// TickSource drives a fixed-step simulation loop.
// Ticks are delivered on the channel; Stop releases the source and is safe
// to call more than once. A closed channel means the source is exhausted.
type TickSource interface {
	Ticks() <-chan time.Time
	Stop()
}

// TickInterval returns the wall-clock duration of one tick at the given rate.
func TickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// TickOffset returns the time elapsed after n ticks at the given rate.
// Unlike n*TickInterval it does not accumulate the per-tick rounding.
func TickOffset(n, tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Duration(n) * time.Second / time.Duration(tickRate)
}

// IntervalSource emits ticks at a real-time rate. A positive total closes
// the channel after that many ticks; otherwise it runs until Stop.
type IntervalSource struct {
	ch   chan time.Time
	done chan struct{}
	once sync.Once
}

// NewIntervalSource starts a wall-clock tick source at tickRate Hz.
func NewIntervalSource(tickRate, total int) *IntervalSource {
	s := &IntervalSource{
		ch:   make(chan time.Time),
		done: make(chan struct{}),
	}
	ticker := time.NewTicker(TickInterval(tickRate))
	go func() {
		defer ticker.Stop()
		defer close(s.ch)
		for i := 0; total <= 0 || i < total; i++ {
			select {
			case <-s.done:
				return
			default:
			}

			var at time.Time
			select {
			case at = <-ticker.C:
			case <-s.done:
				return
			}
			select {
			case s.ch <- at:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Ticks returns the tick channel.
func (s *IntervalSource) Ticks() <-chan time.Time {
	return s.ch
}

// Stop halts the ticker and closes the channel.
func (s *IntervalSource) Stop() {
	s.once.Do(func() { close(s.done) })
}

// ManualSource emits ticks only when Fire is called.
// The channel is buffered so Fire never blocks a test goroutine.
type ManualSource struct {
	ch   chan time.Time
	once sync.Once
}

// NewManualSource creates a manual tick source holding up to buffer pending ticks.
func NewManualSource(buffer int) *ManualSource {
	if buffer < 1 {
		buffer = 1
	}
	return &ManualSource{ch: make(chan time.Time, buffer)}
}

// Ticks returns the tick channel.
func (s *ManualSource) Ticks() <-chan time.Time {
	return s.ch
}

// Fire queues n ticks.
func (s *ManualSource) Fire(n int) {
	for i := 0; i < n; i++ {
		s.ch <- time.Time{}
	}
}

// Stop closes the tick channel.
func (s *ManualSource) Stop() {
	s.once.Do(func() { close(s.ch) })
}

// SimulatedSource emits a fixed number of ticks as fast as they are consumed.
// Tick i carries the timestamp start + i/tickRate seconds, rounded down to
// the millisecond without accumulating the rounding, so a consumer that sets
// its clock from the tick sees evenly spaced time regardless of wall time.
// The channel closes after the last tick.
type SimulatedSource struct {
	ch   chan time.Time
	done chan struct{}
	once sync.Once
}

// NewSimulatedSource starts producing total ticks at the given nominal rate,
// the first one interval after startMillis.
func NewSimulatedSource(startMillis int64, tickRate int, total int) *SimulatedSource {
	s := &SimulatedSource{
		ch:   make(chan time.Time),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.ch)
		for i := 1; i <= total; i++ {
			select {
			case s.ch <- time.UnixMilli(startMillis + TickOffset(i, tickRate).Milliseconds()):
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Ticks returns the tick channel.
func (s *SimulatedSource) Ticks() <-chan time.Time {
	return s.ch
}

// Stop abandons any remaining ticks.
func (s *SimulatedSource) Stop() {
	s.once.Do(func() { close(s.done) })
}
