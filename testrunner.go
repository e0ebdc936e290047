package pager

import (
	"encoding/json"
	"fmt"
	"time"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Screen int     `json:"screen,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"swipe":  true,
	"wheel":  true,
	"nav":    true,
	"wait":   true,
	"expect": true,
}

// TestRunner sequences injected input across frames for automated testing
// of a Controller. Attach it with Controller.SetTestRunner; each Update
// advances it by one frame.
//
// Actions: "swipe" (x, fromY, toY, frames), "wheel" (dy), "nav" (screen),
// "wait" (frames) and "expect" (screen, label). A failed expect is recorded
// and the script keeps running; see Err.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	queue     *InputQueue
	attached  bool
	failures  []string
	// FrameTime, when non-zero and the controller uses a ManualClock,
	// advances that clock by this much on every step.
	FrameTime time.Duration
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Controller via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps, queue: NewInputQueue()}, nil
}

// SetTestRunner attaches a TestRunner to the controller. The runner's step
// method is called from Update before input sources are polled.
func (c *Controller) SetTestRunner(runner *TestRunner) {
	c.runner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns an error describing every failed expect step, or nil.
func (r *TestRunner) Err() error {
	if len(r.failures) == 0 {
		return nil
	}
	return fmt.Errorf("test script: %d expectation(s) failed: %v", len(r.failures), r.failures)
}

// step advances the test runner by one frame. Called from Controller.Update.
func (r *TestRunner) step(c *Controller) {
	if !r.attached {
		c.Attach(r.queue)
		r.attached = true
	}
	if r.FrameTime > 0 {
		if mc, ok := c.clock.(*ManualClock); ok {
			mc.Advance(r.FrameTime)
		}
	}
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if r.queue.Pending() > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "swipe":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		r.queue.PushSwipe(st.X, st.FromY, st.X, st.ToY, frames)
	case "wheel":
		r.queue.PushWheel(st.DY)
	case "nav":
		r.queue.PushNav(st.Screen)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		if got := c.Current(); got != st.Screen {
			label := st.Label
			if label == "" {
				label = fmt.Sprintf("step %d", r.cursor-1)
			}
			r.failures = append(r.failures, fmt.Sprintf("%s: screen = %d, want %d", label, got, st.Screen))
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.queue.Pending() == 0 {
		r.done = true
	}
}
