package core

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	if got := TickInterval(60); got != time.Second/60 {
		t.Errorf("TickInterval(60) = %v", got)
	}
	if got := TickInterval(0); got != time.Second/60 {
		t.Errorf("TickInterval(0) should fall back to 60 Hz, got %v", got)
	}
}

func TestTickOffset(t *testing.T) {
	tests := []struct {
		name     string
		n, rate  int
		expected time.Duration
	}{
		{"zero ticks", 0, 60, 0},
		{"one tick at 60Hz", 1, 60, time.Second / 60},
		{"one second at 60Hz", 60, 60, time.Second},
		{"five minutes at 60Hz", 60 * 60 * 5, 60, 5 * time.Minute},
		{"invalid rate falls back", 60, 0, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TickOffset(tt.n, tt.rate); got != tt.expected {
				t.Errorf("TickOffset(%d, %d) = %v, expected %v", tt.n, tt.rate, got, tt.expected)
			}
		})
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(100)
	if c.NowMillis() != 100 {
		t.Fatalf("NowMillis() = %d, expected 100", c.NowMillis())
	}

	c.Advance(2500 * time.Millisecond)
	if c.NowMillis() != 2600 {
		t.Errorf("after Advance, NowMillis() = %d, expected 2600", c.NowMillis())
	}

	c.Set(5)
	if c.NowMillis() != 5 {
		t.Errorf("after Set, NowMillis() = %d, expected 5", c.NowMillis())
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.NowMillis()
	b := c.NowMillis()
	if a < 0 || b < a {
		t.Errorf("SystemClock went backwards: %d then %d", a, b)
	}
}

func TestManualSource(t *testing.T) {
	src := NewManualSource(4)
	src.Fire(3)

	for i := 0; i < 3; i++ {
		select {
		case <-src.Ticks():
		default:
			t.Fatalf("expected tick %d to be queued", i)
		}
	}

	src.Stop()
	src.Stop() // idempotent
	if _, ok := <-src.Ticks(); ok {
		t.Error("Ticks channel should be closed after Stop")
	}
}

func TestIntervalSourceTotal(t *testing.T) {
	src := NewIntervalSource(1000, 3)
	defer src.Stop()

	count := 0
	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-src.Ticks():
			if !ok {
				if count != 3 {
					t.Errorf("received %d ticks, expected 3", count)
				}
				return
			}
			count++
		case <-timeout:
			t.Fatalf("source did not close, %d ticks so far", count)
		}
	}
}

func TestIntervalSourceStop(t *testing.T) {
	src := NewIntervalSource(1000, 0)
	<-src.Ticks()

	src.Stop()
	src.Stop() // idempotent

	select {
	case _, ok := <-src.Ticks():
		if ok {
			// One tick may already have been in flight.
			if _, ok := <-src.Ticks(); ok {
				t.Error("Ticks channel should close after Stop")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Ticks channel not closed after Stop")
	}
}

func TestSimulatedSourceTimestamps(t *testing.T) {
	src := NewSimulatedSource(1000, 50, 5) // 20ms per tick

	count := 0
	for tick := range src.Ticks() {
		count++
		if want := int64(1000 + count*20); tick.UnixMilli() != want {
			t.Errorf("tick %d: timestamp = %d, expected %d", count, tick.UnixMilli(), want)
		}
	}
	if count != 5 {
		t.Errorf("received %d ticks, expected 5", count)
	}
}

func TestSimulatedSourceNoDrift(t *testing.T) {
	src := NewSimulatedSource(0, 60, 60)

	var last time.Time
	prev := int64(0)
	for tick := range src.Ticks() {
		step := tick.UnixMilli() - prev
		if step != 16 && step != 17 {
			t.Fatalf("tick step = %dms, expected 16 or 17", step)
		}
		prev = tick.UnixMilli()
		last = tick
	}
	if last.UnixMilli() != 1000 {
		t.Errorf("60 ticks at 60Hz reached %dms, expected 1000", last.UnixMilli())
	}
}

func TestSimulatedSourceStop(t *testing.T) {
	src := NewSimulatedSource(0, 60, 1000)

	<-src.Ticks()
	src.Stop()
	src.Stop() // idempotent

	// Drain: the producer exits and closes the channel.
	count := 1
	for range src.Ticks() {
		count++
	}
	if count >= 1000 {
		t.Error("Stop should abandon remaining ticks")
	}
}
