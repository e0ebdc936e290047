package pager

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Lerp linearly interpolates between a and b. Lerp(a, b, 0) == a and
// Lerp(a, b, 1) == b exactly.
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// tickResult tells the controller what a frame did to the transition state.
type tickResult uint8

const (
	tickIdle     tickResult = iota // nothing to do
	tickStarted                    // first frame of a run; clock started
	tickMoved                      // offset advanced; apply it
	tickComplete                   // offset reached the target; fire completion
)

// animator advances TransitionState toward its target each frame. It keeps
// no state of its own beyond its settings.
type animator struct {
	duration time.Duration
	easeFn   ease.TweenFunc
}

// progress returns the eased fraction of the run completed at elapsed.
// The result is pinned to exactly 1 once the duration has passed, whatever
// the easing function returns there.
func (a animator) progress(elapsed time.Duration) float64 {
	if a.duration <= 0 || elapsed >= a.duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(a.easeFn(float32(elapsed), 0, 1, float32(a.duration)))
}

// tick runs one frame of the loop at time now.
func (a animator) tick(st *TransitionState, now time.Duration) tickResult {
	if st.CurrentOffset == st.TargetOffset {
		if st.Sliding {
			// Left sliding until the caller has fired completion and calls
			// settle, so requests made from completion callbacks are dropped.
			return tickComplete
		}
		a.settle(st)
		return tickIdle
	}

	if st.SourceOffset == st.CurrentOffset {
		st.StartTime = now
		st.CurrentOffset++
		st.Sliding = true
		return tickStarted
	}

	t := a.progress(now - st.StartTime)
	st.CurrentOffset = Lerp(st.SourceOffset, st.TargetOffset, t)
	return tickMoved
}

// settle ends a run: the offset rests at the target and the next request
// starts a fresh run from there.
func (a animator) settle(st *TransitionState) {
	st.Sliding = false
	st.SourceOffset = st.TargetOffset
}
