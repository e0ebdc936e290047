package pager

import "time"

// inputGate is the post-transition suppression window. While suppressed,
// every navigation request is dropped. The release "timer" is a deadline on
// the controller's Clock, checked by poll each frame and before each request,
// so nothing outside the game goroutine ever touches it.
type inputGate struct {
	delay      time.Duration
	suppressed bool
	pending    bool          // a release is scheduled
	releaseAt  time.Duration // valid when pending
}

func newInputGate(delay time.Duration) inputGate {
	return inputGate{delay: delay}
}

// open accepts input and cancels any pending release.
func (g *inputGate) open() {
	g.suppressed = false
	g.pending = false
}

// suppress rejects input and schedules a single release at now+delay. A
// pending release is replaced, never queued.
func (g *inputGate) suppress(now time.Duration) {
	g.suppressed = true
	g.pending = true
	g.releaseAt = now + g.delay
}

// poll fires the pending release if its deadline has passed.
func (g *inputGate) poll(now time.Duration) {
	if g.pending && now >= g.releaseAt {
		g.open()
	}
}

// blocked polls and reports whether input is currently suppressed.
func (g *inputGate) blocked(now time.Duration) bool {
	g.poll(now)
	return g.suppressed
}
