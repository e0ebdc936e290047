package pager

import "time"

// Clock is the monotonic timebase that drives the animation loop and the
// input suppression window. Now returns the time elapsed since an arbitrary
// fixed origin.
type Clock interface {
	Now() time.Duration
}

// realClock reports wall time elapsed since it was created, using the
// monotonic reading carried by time.Time.
type realClock struct {
	origin time.Time
}

func newRealClock() *realClock {
	return &realClock{origin: time.Now()}
}

func (c *realClock) Now() time.Duration {
	return time.Since(c.origin)
}

// ManualClock is a Clock that only moves when told to. Use it to step the
// controller frame by frame in tests and scripted runs.
type ManualClock struct {
	now time.Duration
}

// NewManualClock creates a ManualClock reading start.
func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Set moves the clock to t. Moving backwards is ignored so readings stay
// monotonic.
func (c *ManualClock) Set(t time.Duration) {
	if t > c.now {
		c.now = t
	}
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}
