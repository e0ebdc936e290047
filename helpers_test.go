package pager

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

const frameTime = 16 * time.Millisecond

// fakeSurface records everything the controller pushes to it.
type fakeSurface struct {
	count           int
	height          float64
	childHeight     float64
	containerHeight float64
	offset          float64
	offsets         []float64
	nav             int
	section         int
}

func newFakeSurface(count int, height float64) *fakeSurface {
	return &fakeSurface{count: count, height: height}
}

func (s *fakeSurface) ScreenCount() int              { return s.count }
func (s *fakeSurface) ViewportHeight() float64       { return s.height }
func (s *fakeSurface) SetContainerHeight(px float64) { s.containerHeight = px }
func (s *fakeSurface) SetChildHeight(px float64)     { s.childHeight = px }
func (s *fakeSurface) SetActiveNav(screen int)       { s.nav = screen }
func (s *fakeSurface) SetActiveSection(screen int)   { s.section = screen }
func (s *fakeSurface) ApplyOffset(px float64) {
	s.offset = px
	s.offsets = append(s.offsets, px)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestController builds a controller on a fake surface with a manual
// clock and linear easing.
func newTestController(t *testing.T, count int, height float64, cfg Config) (*Controller, *fakeSurface, *ManualClock) {
	t.Helper()
	clk := NewManualClock(0)
	cfg.Clock = clk
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}
	s := newFakeSurface(count, height)
	c, err := New(s, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, s, clk
}

// step advances the clock by d and runs one frame.
func step(c *Controller, clk *ManualClock, d time.Duration) {
	clk.Advance(d)
	c.Update()
}

// runToRest steps frames until the controller stops sliding.
func runToRest(t *testing.T, c *Controller, clk *ManualClock) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if !c.Sliding() {
			return
		}
		step(c, clk, frameTime)
	}
	t.Fatal("transition did not complete")
}

// waitOutSuppression steps frames until navigation is accepted again.
func waitOutSuppression(t *testing.T, c *Controller, clk *ManualClock) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if !c.Suppressed() {
			return
		}
		step(c, clk, frameTime)
	}
	t.Fatal("suppression did not end")
}
