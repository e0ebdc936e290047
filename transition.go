package pager

import "time"

// TransitionState is a snapshot of the controller's screen state.
type TransitionState struct {
	Current  int // active (or becoming active) screen, 1-based
	Previous int // screen left by the last accepted transition; 0 if none

	SourceOffset  float64 // offset the current run started from
	CurrentOffset float64 // offset applied on the last frame
	TargetOffset  float64 // offset the current run ends at

	Sliding   bool          // a run is in progress or waiting for its first frame
	StartTime time.Duration // Clock reading of the run's first frame; valid while Sliding
}

// transitionEngine owns the screen-index state machine. It decides whether a
// request is accepted and where the run should end; the animation step moves
// the offset there.
type transitionEngine struct {
	state        TransitionState
	count        int
	screenHeight float64
}

func newTransitionEngine(count, initial int, screenHeight float64) transitionEngine {
	rest := screenHeight * float64(initial-1)
	return transitionEngine{
		state: TransitionState{
			Current:       initial,
			SourceOffset:  rest,
			CurrentOffset: rest,
			TargetOffset:  rest,
		},
		count:        count,
		screenHeight: screenHeight,
	}
}

// offsetOf returns the resting offset of screen n.
func (e *transitionEngine) offsetOf(n int) float64 {
	return e.screenHeight * float64(n-1)
}

// requestScreen starts a transition to target. It returns false and changes
// nothing if a transition is sliding, target is already current, or target
// is outside [1, count].
//
// Source and current offsets are left alone; the next animation tick sees
// source == current and starts the clock for the new run.
func (e *transitionEngine) requestScreen(target int) bool {
	st := &e.state
	if st.Sliding {
		return false
	}
	if target == st.Current || target < 1 || target > e.count {
		return false
	}
	st.Previous = st.Current
	st.Current = target
	st.TargetOffset = e.offsetOf(target)
	st.Sliding = true
	return true
}

func (e *transitionEngine) requestNext() bool {
	return e.requestScreen(e.state.Current + 1)
}

func (e *transitionEngine) requestPrevious() bool {
	return e.requestScreen(e.state.Current - 1)
}

// resize changes the per-screen height. At rest, all offsets snap to the
// current screen under the new height and true is returned. Mid-run the
// in-flight target is kept and false is returned; the caller re-snaps once
// the run completes.
func (e *transitionEngine) resize(screenHeight float64) bool {
	e.screenHeight = screenHeight
	if e.state.Sliding {
		return false
	}
	e.snap()
	return true
}

// snap puts every offset at the current screen's resting position.
func (e *transitionEngine) snap() {
	rest := e.offsetOf(e.state.Current)
	e.state.SourceOffset = rest
	e.state.CurrentOffset = rest
	e.state.TargetOffset = rest
}
