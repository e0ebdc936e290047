package pager

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const defaultTapDeadZone = 4.0 // pixels

// NavHitTester maps a screen position to the nav button under it.
// EbitenSurface implements it.
type NavHitTester interface {
	NavAt(x, y float64) (screen int, ok bool)
}

// pointerState tracks one pointer (the mouse or the active touch) between
// polls.
type pointerState struct {
	down           bool
	startX, startY float64
	lastX, lastY   float64
	moved          bool // travelled past the tap dead zone since going down
}

// EbitenInput is an InputSource that polls Ebitengine for wheel, touch and
// mouse input. Attach it to a Controller; Controller.Update polls it.
//
// Only one touch is followed: the first one to go down while no touch is
// tracked. Other touches are ignored until it lifts. A press and release
// that stays within the dead zone over a nav button activates that button.
type EbitenInput struct {
	// MouseAsTouch makes left-button drags emit touch events, so swipes can
	// be tried on desktop.
	MouseAsTouch bool

	subs     registry[InputEvent]
	nav      NavHitTester
	deadZone float64

	mouse    pointerState
	touch    pointerState
	primary  ebiten.TouchID
	tracking bool
	touchBuf []ebiten.TouchID

	width, height float64
	resized       bool
}

// NewEbitenInput creates an Ebitengine-backed input source. nav may be nil
// when there are no nav buttons.
func NewEbitenInput(nav NavHitTester) *EbitenInput {
	return &EbitenInput{nav: nav, deadZone: defaultTapDeadZone}
}

// Subscribe implements InputSource.
func (in *EbitenInput) Subscribe(fn func(InputEvent)) CallbackHandle {
	return in.subs.add(fn)
}

// SetTapDeadZone sets how far a pointer may move and still count as a tap.
func (in *EbitenInput) SetTapDeadZone(pixels float64) {
	in.deadZone = pixels
}

// Resize reports the current viewport size. When it differs from the last
// call, InputResize is emitted on the next Poll. Call it from
// ebiten.Game.Layout.
func (in *EbitenInput) Resize(width, height float64) {
	if width == in.width && height == in.height {
		return
	}
	in.width, in.height = width, height
	in.resized = true
}

// Poll implements Poller.
func (in *EbitenInput) Poll() {
	if in.resized {
		in.resized = false
		in.subs.emit(InputEvent{Type: InputResize, Width: in.width, Height: in.height})
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		// Ebitengine reports wheel-up as positive; the controller wants
		// positive to mean "scroll down".
		in.subs.emit(InputEvent{Type: InputWheel, DeltaY: -wy})
	}
	in.pollTouch()
	in.pollMouse()
}

func (in *EbitenInput) pollTouch() {
	if in.tracking {
		in.touchBuf = ebiten.AppendTouchIDs(in.touchBuf[:0])
		still := false
		for _, id := range in.touchBuf {
			if id == in.primary {
				still = true
				break
			}
		}
		if still {
			x, y := ebiten.TouchPosition(in.primary)
			in.processPointer(&in.touch, float64(x), float64(y), true, true)
			return
		}
		in.processPointer(&in.touch, in.touch.lastX, in.touch.lastY, false, true)
		in.tracking = false
	}

	in.touchBuf = inpututil.AppendJustPressedTouchIDs(in.touchBuf[:0])
	if len(in.touchBuf) == 0 {
		return
	}
	in.primary = in.touchBuf[0]
	in.tracking = true
	x, y := ebiten.TouchPosition(in.primary)
	in.processPointer(&in.touch, float64(x), float64(y), true, true)
}

func (in *EbitenInput) pollMouse() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.processPointer(&in.mouse, float64(mx), float64(my), pressed, in.MouseAsTouch)
}

// processPointer runs the press/move/release state machine for one pointer.
// Touch events are emitted only when emitTouch is set; taps on nav buttons
// are always reported.
func (in *EbitenInput) processPointer(ps *pointerState, x, y float64, pressed, emitTouch bool) {
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.moved = false
		if emitTouch {
			in.subs.emit(InputEvent{Type: InputTouchStart, X: x, Y: y})
		}

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		if !ps.moved {
			dx, dy := x-ps.startX, y-ps.startY
			if math.Sqrt(dx*dx+dy*dy) > in.deadZone {
				ps.moved = true
			}
		}
		ps.lastX, ps.lastY = x, y
		if emitTouch {
			in.subs.emit(InputEvent{Type: InputTouchMove, X: x, Y: y})
		}

	case !pressed && ps.down:
		ps.down = false
		if emitTouch {
			in.subs.emit(InputEvent{Type: InputTouchEnd, X: x, Y: y})
		}
		if !ps.moved && in.nav != nil {
			if screen, ok := in.nav.NavAt(x, y); ok {
				in.subs.emit(InputEvent{Type: InputNavActivate, Screen: screen, X: x, Y: y})
			}
		}
	}
}
