package pager

import (
	"reflect"
	"testing"
)

func TestInputQueueDeliversOnePerPoll(t *testing.T) {
	q := NewInputQueue()
	var got []InputEventType
	q.Subscribe(func(ev InputEvent) { got = append(got, ev.Type) })

	q.PushWheel(1)
	q.PushNav(2)
	q.PushResize(640, 480)
	if q.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", q.Pending())
	}

	q.Poll()
	if len(got) != 1 || q.Pending() != 2 {
		t.Fatalf("after one Poll: delivered %v, pending %d", got, q.Pending())
	}
	q.Poll()
	q.Poll()
	q.Poll() // empty queue is a no-op
	want := []InputEventType{InputWheel, InputNavActivate, InputResize}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("delivered %v, want %v", got, want)
	}
}

func TestInputQueueEmitBypassesQueue(t *testing.T) {
	q := NewInputQueue()
	n := 0
	q.Subscribe(func(InputEvent) { n++ })
	q.PushWheel(1)
	q.Emit(InputEvent{Type: InputWheel, DeltaY: -1})
	if n != 1 || q.Pending() != 1 {
		t.Errorf("delivered %d, pending %d, want 1 and 1", n, q.Pending())
	}
}

func TestPushSwipe(t *testing.T) {
	tests := []struct {
		name   string
		frames int
		want   int
	}{
		{"two frames", 2, 3},
		{"clamped", 1, 3},
		{"five frames", 5, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewInputQueue()
			q.PushSwipe(10, 500, 10, 300, tt.frames)
			if q.Pending() != tt.want {
				t.Fatalf("Pending = %d, want %d", q.Pending(), tt.want)
			}
			first, last := q.queue[0], q.queue[len(q.queue)-1]
			if first.Type != InputTouchStart || first.Y != 500 {
				t.Errorf("first = %+v, want touch start at 500", first)
			}
			if last.Type != InputTouchEnd || last.Y != 300 {
				t.Errorf("last = %+v, want touch end at 300", last)
			}
			final := q.queue[len(q.queue)-2]
			if final.Type != InputTouchMove || final.Y != 300 {
				t.Errorf("final move = %+v, want move to 300", final)
			}
		})
	}
}

func TestPushSwipeInterpolates(t *testing.T) {
	q := NewInputQueue()
	q.PushSwipe(0, 400, 0, 100, 3)
	var ys []float64
	for _, ev := range q.queue {
		ys = append(ys, ev.Y)
	}
	want := []float64{400, 250, 100, 100}
	if !reflect.DeepEqual(ys, want) {
		t.Errorf("ys = %v, want %v", ys, want)
	}
}

func TestRegistryRemove(t *testing.T) {
	var r registry[int]
	var got []string
	h1 := r.add(func(v int) { got = append(got, "a") })
	r.add(func(v int) { got = append(got, "b") })
	h3 := r.add(func(v int) { got = append(got, "c") })

	h1.Remove()
	h1.Remove()
	r.emit(0)
	if !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("after removing first: %v", got)
	}

	got = nil
	h3.Remove()
	r.emit(0)
	if !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("after removing last: %v", got)
	}
}

func TestZeroCallbackHandle(t *testing.T) {
	var h CallbackHandle
	h.Remove()
}

func TestInputEventTypeString(t *testing.T) {
	tests := map[InputEventType]string{
		InputResize:         "resize",
		InputWheel:          "wheel",
		InputTouchStart:     "touchstart",
		InputTouchMove:      "touchmove",
		InputTouchEnd:       "touchend",
		InputTouchCancel:    "touchcancel",
		InputNavActivate:    "nav",
		InputEventType(200): "unknown",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}
