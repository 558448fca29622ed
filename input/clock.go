package input

import "time"

// Clock is the monotonic time source of a Cache.
// Now must never return a smaller value than a previous call.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock measures time elapsed since its creation.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a clock that starts at zero now.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a Clock that only moves when told to.
// It drives scripted replays and tests.
type ManualClock struct {
	now time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Set moves the clock to t. Times before the current one are ignored.
func (c *ManualClock) Set(t time.Duration) {
	if t > c.now {
		c.now = t
	}
}
