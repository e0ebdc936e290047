package ecs

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phanxgames/pager"
	"github.com/yohamta/donburi"
)

type stubSurface struct{}

func (stubSurface) ScreenCount() int              { return 3 }
func (stubSurface) ViewportHeight() float64       { return 600 }
func (stubSurface) SetContainerHeight(px float64) {}
func (stubSurface) SetChildHeight(px float64)     {}
func (stubSurface) ApplyOffset(px float64)        {}
func (stubSurface) SetActiveNav(screen int)       {}
func (stubSurface) SetActiveSection(screen int)   {}

func newController(t *testing.T) (*pager.Controller, *pager.ManualClock) {
	t.Helper()
	clk := pager.NewManualClock(0)
	ctrl, err := pager.New(stubSurface{}, pager.Config{
		Clock:  clk,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatal(err)
	}
	return ctrl, clk
}

func runTransition(ctrl *pager.Controller, clk *pager.ManualClock) {
	ctrl.Update()
	for i := 0; i < 100 && ctrl.Sliding(); i++ {
		clk.Advance(16 * time.Millisecond)
		ctrl.Update()
	}
}

func TestBridgeForwardsTransitions(t *testing.T) {
	world := donburi.NewWorld()
	ctrl, clk := newController(t)
	bridge := NewBridge(world, ctrl)
	defer bridge.Close()

	var received []TransitionMessage
	TransitionEventType.Subscribe(world, func(w donburi.World, msg TransitionMessage) {
		received = append(received, msg)
	})

	ctrl.Next()
	runTransition(ctrl, clk)

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before ProcessEvents", len(received))
	}
	TransitionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	start, end := received[0], received[1]
	if start.Phase != PhaseStart || start.From != 1 || start.To != 2 || start.ToOffset != 600 {
		t.Errorf("start = %+v", start)
	}
	if end.Phase != PhaseEnd || end.From != 1 || end.To != 2 {
		t.Errorf("end = %+v", end)
	}
	if end.At <= start.At {
		t.Errorf("end.At = %v not after start.At = %v", end.At, start.At)
	}
}

func TestBridgeClose(t *testing.T) {
	world := donburi.NewWorld()
	ctrl, clk := newController(t)
	bridge := NewBridge(world, ctrl)

	count := 0
	TransitionEventType.Subscribe(world, func(w donburi.World, msg TransitionMessage) {
		count++
	})

	bridge.Close()
	ctrl.Next()
	runTransition(ctrl, clk)
	TransitionEventType.ProcessEvents(world)

	if count != 0 {
		t.Errorf("closed bridge forwarded %d events", count)
	}
}
