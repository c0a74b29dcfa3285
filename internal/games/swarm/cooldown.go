package swarm

// Cooldown gates a weapon by elapsed milliseconds since its last use.
// A cooldown that has never been consumed is always ready, whatever the
// clock reads, so both weapons are available when a session starts.
type Cooldown struct {
	Duration int64 // milliseconds

	last  int64
	armed bool
}

// Ready reports whether the weapon may fire at now.
func (c *Cooldown) Ready(now int64) bool {
	return !c.armed || now-c.last >= c.Duration
}

// Consume records a shot at now.
func (c *Cooldown) Consume(now int64) {
	c.last = now
	c.armed = true
}

// Reset makes the weapon immediately available again.
func (c *Cooldown) Reset() {
	c.last = 0
	c.armed = false
}

// Remaining returns the milliseconds left before the weapon is ready.
func (c *Cooldown) Remaining(now int64) int64 {
	if c.Ready(now) {
		return 0
	}
	return c.Duration - (now - c.last)
}

// Progress returns how far the cooldown has recovered, in [0,1].
// A ready weapon reports 1.
func (c *Cooldown) Progress(now int64) float64 {
	if c.Duration <= 0 {
		return 1
	}
	p := 1 - float64(c.Remaining(now))/float64(c.Duration)
	return min(max(p, 0), 1)
}
