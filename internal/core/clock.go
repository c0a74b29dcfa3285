package core

import (
	"sync"
	"time"
)

// Clock reports monotonic time in milliseconds.
// Games read it for cooldowns instead of calling time.Now directly.
type Clock interface {
	NowMillis() int64
}

// SystemClock is a Clock backed by the process monotonic clock.
// Time zero is the moment the clock was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis returns milliseconds elapsed since the clock was created.
func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// SettableClock is a Clock that can be moved to an absolute time.
type SettableClock interface {
	Clock
	Set(millis int64)
}

// ManualClock is a Clock that only moves when told to.
// Used by tests and by headless simulation.
type ManualClock struct {
	mu  sync.RWMutex
	now int64
}

// NewManualClock creates a manual clock at the given millisecond.
func NewManualClock(startMillis int64) *ManualClock {
	return &ManualClock{now: startMillis}
}

// NowMillis returns the current manual time.
func (c *ManualClock) NowMillis() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set moves the clock to an absolute millisecond.
func (c *ManualClock) Set(millis int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = millis
}

// Advance moves the clock forward by d, truncated to milliseconds.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d.Milliseconds()
}
