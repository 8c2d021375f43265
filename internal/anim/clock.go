package anim

import "time"

// Clock is a repeating countdown that gates how often a character's frame may
// advance. It fires at most once per Advance call: periods missed during a
// long frame are dropped, not queued.
type Clock struct {
	period  time.Duration
	elapsed time.Duration
}

// NewClock creates a clock with the given period. A non-positive period makes
// the clock due on every advance.
func NewClock(period time.Duration) Clock {
	return Clock{period: period}
}

// Advance moves the clock forward and reports whether a period boundary was
// crossed during this call.
func (c *Clock) Advance(elapsed time.Duration) bool {
	if c.period <= 0 {
		return true
	}
	if elapsed < 0 {
		elapsed = 0
	}

	c.elapsed += elapsed
	if c.elapsed < c.period {
		return false
	}
	c.elapsed %= c.period
	return true
}
