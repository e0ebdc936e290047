package pager

import "math"

// Swipe classifies a touch movement relative to its anchor point.
type Swipe uint8

const (
	SwipeNone     Swipe = iota // below threshold, or no gesture in progress
	SwipeNext                  // finger moved up past the threshold
	SwipePrevious              // finger moved down past the threshold
	SwipeLeft                  // mostly horizontal, finger moved left
	SwipeRight                 // mostly horizontal, finger moved right
)

func (s Swipe) String() string {
	switch s {
	case SwipeNext:
		return "next"
	case SwipePrevious:
		return "previous"
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	default:
		return "none"
	}
}

// gestureRecognizer turns a stream of touch samples from a single touch
// point into swipes. Multi-touch is not tracked; the input source decides
// which touch is the active one.
type gestureRecognizer struct {
	distance float64
	anchor   Vec2
	anchored bool
}

func newGestureRecognizer(distance float64) gestureRecognizer {
	return gestureRecognizer{distance: distance}
}

// begin records the down point.
func (g *gestureRecognizer) begin(x, y float64) {
	g.anchor = Vec2{X: x, Y: y}
	g.anchored = true
}

// observe records a sample without classifying it. It only sets the anchor
// when no gesture is in progress.
func (g *gestureRecognizer) observe(x, y float64) {
	if !g.anchored {
		g.begin(x, y)
	}
}

// move classifies the displacement from the anchor to (x, y). A vertical
// swipe past the threshold advances the anchor to (x, y), so a single long
// touch can page more than once. Horizontal swipes are reported but leave
// the anchor in place.
func (g *gestureRecognizer) move(x, y float64) Swipe {
	if !g.anchored {
		g.begin(x, y)
	}

	dx := g.anchor.X - x
	dy := g.anchor.Y - y

	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return SwipeLeft
		}
		return SwipeRight
	}

	switch {
	case dy > g.distance:
		g.anchor = Vec2{X: x, Y: y}
		return SwipeNext
	case dy < -g.distance:
		g.anchor = Vec2{X: x, Y: y}
		return SwipePrevious
	}
	return SwipeNone
}

// end clears the anchor on touch end or cancel.
func (g *gestureRecognizer) end() {
	g.anchor = Vec2{}
	g.anchored = false
}
