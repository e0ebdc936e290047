package pager

// InputEventType identifies a kind of input event.
type InputEventType uint8

const (
	InputResize      InputEventType = iota // viewport size changed
	InputWheel                             // wheel scrolled; DeltaY > 0 means down
	InputTouchStart                        // touch went down at (X, Y)
	InputTouchMove                         // touch moved to (X, Y)
	InputTouchEnd                          // touch lifted
	InputTouchCancel                       // touch was interrupted
	InputNavActivate                       // a nav button for Screen was activated
)

func (t InputEventType) String() string {
	switch t {
	case InputResize:
		return "resize"
	case InputWheel:
		return "wheel"
	case InputTouchStart:
		return "touchstart"
	case InputTouchMove:
		return "touchmove"
	case InputTouchEnd:
		return "touchend"
	case InputTouchCancel:
		return "touchcancel"
	case InputNavActivate:
		return "nav"
	default:
		return "unknown"
	}
}

// InputEvent is a single input notification delivered to subscribers.
type InputEvent struct {
	Type InputEventType
	// X and Y are screen coordinates (touch events).
	X, Y float64
	// DeltaY is the signed vertical wheel delta (InputWheel).
	DeltaY float64
	// Width and Height are the new viewport size (InputResize).
	Width, Height float64
	// Screen is the 1-based screen a nav button points at (InputNavActivate).
	Screen int
}

// InputSource delivers input events to subscribers. Sources call subscribers
// synchronously on the goroutine that drives the controller.
type InputSource interface {
	Subscribe(fn func(InputEvent)) CallbackHandle
}

// Poller is implemented by sources that gather input once per frame.
// Controller.Update calls Poll on every attached source that implements it.
type Poller interface {
	Poll()
}

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

// registry is an ordered callback list whose entries can be removed through
// the CallbackHandle returned by add.
type registry[T any] struct {
	handlers []handler[T]
	nextID   uint32
}

func (r *registry[T]) add(fn func(T)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.handlers = append(r.handlers, handler[T]{id: id, fn: fn})
	return CallbackHandle{id: id, remove: r.remove}
}

// remove deletes the entry from the slice to avoid nil iteration waste.
func (r *registry[T]) remove(id uint32) {
	for i := range r.handlers {
		if r.handlers[i].id == id {
			copy(r.handlers[i:], r.handlers[i+1:])
			r.handlers[len(r.handlers)-1] = handler[T]{}
			r.handlers = r.handlers[:len(r.handlers)-1]
			return
		}
	}
}

func (r *registry[T]) emit(v T) {
	for _, h := range r.handlers {
		h.fn(v)
	}
}

// CallbackHandle allows removing a registered callback. The zero value is a
// valid handle whose Remove does nothing.
type CallbackHandle struct {
	id     uint32
	remove func(id uint32)
}

// Remove unregisters the callback so it no longer fires. Calling Remove more
// than once is harmless.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}

// --- Queue-backed source ---

// InputQueue is an InputSource fed by the caller. Queued events are delivered
// one per Poll, so a sequence of injected events spreads across frames the
// way real input does. Emit bypasses the queue and delivers immediately.
type InputQueue struct {
	subs  registry[InputEvent]
	queue []InputEvent
}

// NewInputQueue creates an empty InputQueue.
func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Subscribe implements InputSource.
func (q *InputQueue) Subscribe(fn func(InputEvent)) CallbackHandle {
	return q.subs.add(fn)
}

// Emit delivers ev to subscribers right away.
func (q *InputQueue) Emit(ev InputEvent) {
	q.subs.emit(ev)
}

// Push queues ev for delivery on a later Poll.
func (q *InputQueue) Push(ev InputEvent) {
	q.queue = append(q.queue, ev)
}

// Pending returns the number of queued events.
func (q *InputQueue) Pending() int {
	return len(q.queue)
}

// Poll delivers the oldest queued event, if any.
func (q *InputQueue) Poll() {
	if len(q.queue) == 0 {
		return
	}
	ev := q.queue[0]
	copy(q.queue, q.queue[1:])
	q.queue = q.queue[:len(q.queue)-1]
	q.subs.emit(ev)
}

// PushWheel queues a wheel event.
func (q *InputQueue) PushWheel(dy float64) {
	q.Push(InputEvent{Type: InputWheel, DeltaY: dy})
}

// PushNav queues a nav activation for screen.
func (q *InputQueue) PushNav(screen int) {
	q.Push(InputEvent{Type: InputNavActivate, Screen: screen})
}

// PushResize queues a viewport resize.
func (q *InputQueue) PushResize(w, h float64) {
	q.Push(InputEvent{Type: InputResize, Width: w, Height: h})
}

// PushSwipe queues a full touch sequence: start at (fromX, fromY), moves
// linearly interpolated over frames-2 intermediate frames, a final move to
// (toX, toY) and a touch end. The sequence consumes frames+1 polls. Minimum
// frames is 2.
func (q *InputQueue) PushSwipe(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	q.Push(InputEvent{Type: InputTouchStart, X: fromX, Y: fromY})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		q.Push(InputEvent{
			Type: InputTouchMove,
			X:    fromX + (toX-fromX)*t,
			Y:    fromY + (toY-fromY)*t,
		})
	}
	q.Push(InputEvent{Type: InputTouchMove, X: toX, Y: toY})
	q.Push(InputEvent{Type: InputTouchEnd, X: toX, Y: toY})
}
