package pager

import (
	"log/slog"
	"time"
)

// Surface is the presentation collaborator. The controller measures it once
// at construction and on every resize, and pushes offsets and active markers
// to it. It never draws anything itself.
type Surface interface {
	// ScreenCount returns N, the number of screens. Read once by New.
	ScreenCount() int
	// ViewportHeight returns the current height of one screen in pixels.
	ViewportHeight() float64
	// SetContainerHeight sizes the container holding all N screens.
	SetContainerHeight(px float64)
	// SetChildHeight sizes each screen.
	SetChildHeight(px float64)
	// ApplyOffset translates the container up by px.
	ApplyOffset(px float64)
	// SetActiveNav marks the nav button for screen as active and clears the
	// marker from every other button.
	SetActiveNav(screen int)
	// SetActiveSection marks screen as active and clears every other screen.
	SetActiveSection(screen int)
}

// TransitionEvent describes a transition for observers.
type TransitionEvent struct {
	From, To             int           // screens, 1-based
	FromOffset, ToOffset float64       // offsets at the start and end of the run
	At                   time.Duration // Clock reading when the event fired
}

type attachedSource struct {
	src    InputSource
	handle CallbackHandle
}

// Controller is the paging controller. It owns the transition state and
// composes the transition engine, the animation step, the gesture recognizer
// and the input gate.
//
// A Controller is not safe for concurrent use. Call every method from the
// goroutine that calls Update (the Ebitengine game goroutine when using Run).
type Controller struct {
	surface Surface
	cfg     Config
	clock   Clock
	log     *slog.Logger

	engine  transitionEngine
	anim    animator
	gate    inputGate
	gesture gestureRecognizer

	sources []attachedSource
	onStart registry[TransitionEvent]
	onEnd   registry[TransitionEvent]

	// resnap is set when a resize lands mid-run; the resting offset is
	// recomputed when that run completes.
	resnap bool

	runner *TestRunner
	debug  bool
	stats  debugStats
}

// New creates a Controller for surface. The surface is measured immediately:
// child and container heights are applied, the offset is set to the initial
// screen's resting position, and nav and section markers are synced.
func New(surface Surface, cfg Config) (*Controller, error) {
	if surface == nil {
		return nil, configErr("surface", ErrNilSurface)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	n := surface.ScreenCount()
	if n < 1 {
		return nil, configErr("surface", ErrNoScreens)
	}
	if cfg.InitialScreen > n {
		return nil, configErr("initial_screen", ErrInitialScreen)
	}

	h := max(surface.ViewportHeight(), 0)
	c := &Controller{
		surface: surface,
		cfg:     cfg,
		clock:   cfg.Clock,
		log:     cfg.Logger,
		engine:  newTransitionEngine(n, cfg.InitialScreen, h),
		anim:    animator{duration: cfg.ScrollDuration, easeFn: cfg.Ease},
		gate:    newInputGate(cfg.SuppressDelay),
		gesture: newGestureRecognizer(cfg.SwipeDistance),
	}

	c.applyHeights(h)
	surface.ApplyOffset(c.engine.state.CurrentOffset)
	c.syncMarkers()
	return c, nil
}

// --- Navigation ---

// GoTo requests a transition to screen n. It returns false, changing
// nothing, when n is out of range or already current, when a transition is
// in progress, or inside the post-transition suppression window.
func (c *Controller) GoTo(n int) bool {
	return c.request(n)
}

// Next requests the screen after the current one.
func (c *Controller) Next() bool {
	return c.request(c.engine.state.Current + 1)
}

// Previous requests the screen before the current one.
func (c *Controller) Previous() bool {
	return c.request(c.engine.state.Current - 1)
}

func (c *Controller) request(target int) bool {
	now := c.clock.Now()
	if c.gate.blocked(now) {
		c.debugRejected(target, "suppressed")
		return false
	}

	st := &c.engine.state
	from, fromOffset := st.Current, st.CurrentOffset
	var reason string
	if c.debug {
		// requestScreen leaves no trace when it refuses.
		reason = c.rejectReason(target)
	}
	if !c.engine.requestScreen(target) {
		c.debugRejected(target, reason)
		return false
	}

	ev := TransitionEvent{
		From: from, To: target,
		FromOffset: fromOffset, ToOffset: st.TargetOffset,
		At: now,
	}
	c.debugAccepted(ev)
	c.onStart.emit(ev)
	return true
}

// --- Frame loop ---

// Update runs one frame: the attached test runner steps, pollable input
// sources are polled, the suppression window is checked and the animation
// advances. Call it once per frame from the game loop.
func (c *Controller) Update() {
	if c.runner != nil {
		c.runner.step(c)
	}
	for _, s := range c.sources {
		if p, ok := s.src.(Poller); ok {
			p.Poll()
		}
	}
	now := c.clock.Now()
	c.gate.poll(now)
	c.tick(now)
}

// tick advances the animation one frame at time now.
func (c *Controller) tick(now time.Duration) {
	st := &c.engine.state
	switch c.anim.tick(st, now) {
	case tickStarted:
		c.debugFrame()
	case tickMoved:
		c.debugFrame()
		c.surface.ApplyOffset(st.CurrentOffset)
	case tickComplete:
		c.complete(now)
	}
}

// complete fires the end-of-run notifications exactly once per accepted
// transition, then settles the state.
func (c *Controller) complete(now time.Duration) {
	st := &c.engine.state
	c.surface.ApplyOffset(st.CurrentOffset)

	if c.cfg.OnScreenDisable != nil {
		c.cfg.OnScreenDisable(st.Previous)
	}
	if c.cfg.OnScreenEnable != nil {
		c.cfg.OnScreenEnable(st.Current)
	}

	ev := TransitionEvent{
		From: st.Previous, To: st.Current,
		FromOffset: st.SourceOffset, ToOffset: st.TargetOffset,
		At: now,
	}
	c.onEnd.emit(ev)
	c.syncMarkers()
	c.gate.suppress(now)
	c.anim.settle(st)
	c.debugComplete(ev)

	if c.resnap {
		c.resnap = false
		c.engine.snap()
		c.surface.ApplyOffset(st.CurrentOffset)
	}
}

// --- Input ---

// Attach subscribes the controller to src. If src implements Poller it is
// polled at the start of every Update.
func (c *Controller) Attach(src InputSource) {
	h := src.Subscribe(c.HandleInput)
	c.sources = append(c.sources, attachedSource{src: src, handle: h})
}

// Close unsubscribes from every attached input source. The controller keeps
// its state and can still be driven directly.
func (c *Controller) Close() {
	for _, s := range c.sources {
		s.handle.Remove()
	}
	c.sources = nil
}

// HandleInput reacts to a single input event. Attached sources call it;
// callers with their own event plumbing can call it directly.
func (c *Controller) HandleInput(ev InputEvent) {
	switch ev.Type {
	case InputResize:
		c.relayout()
	case InputWheel:
		if ev.DeltaY > 0 {
			c.Next()
		} else if ev.DeltaY < 0 {
			c.Previous()
		}
	case InputTouchStart:
		c.gesture.begin(ev.X, ev.Y)
	case InputTouchMove:
		if c.gate.blocked(c.clock.Now()) {
			c.gesture.observe(ev.X, ev.Y)
			return
		}
		switch c.gesture.move(ev.X, ev.Y) {
		case SwipeNext:
			c.Next()
		case SwipePrevious:
			c.Previous()
		}
	case InputTouchEnd, InputTouchCancel:
		c.gesture.end()
	case InputNavActivate:
		c.GoTo(ev.Screen)
	}
}

// relayout re-measures the surface and re-applies heights. At rest the
// offset snaps to the current screen; mid-run the snap waits for completion.
func (c *Controller) relayout() {
	h := max(c.surface.ViewportHeight(), 0)
	c.applyHeights(h)
	if c.engine.resize(h) {
		c.surface.ApplyOffset(c.engine.state.CurrentOffset)
	} else {
		c.resnap = true
	}
}

func (c *Controller) applyHeights(h float64) {
	c.surface.SetChildHeight(h)
	c.surface.SetContainerHeight(h * float64(c.engine.count))
}

func (c *Controller) syncMarkers() {
	c.surface.SetActiveNav(c.engine.state.Current)
	c.surface.SetActiveSection(c.engine.state.Current)
}

// --- Observers ---

// OnTransitionStart registers fn to be called when a request is accepted.
func (c *Controller) OnTransitionStart(fn func(TransitionEvent)) CallbackHandle {
	return c.onStart.add(fn)
}

// OnTransitionEnd registers fn to be called when a transition completes,
// after Config.OnScreenDisable and Config.OnScreenEnable.
func (c *Controller) OnTransitionEnd(fn func(TransitionEvent)) CallbackHandle {
	return c.onEnd.add(fn)
}

// --- Accessors ---

// Current returns the active (or becoming active) screen.
func (c *Controller) Current() int { return c.engine.state.Current }

// PreviousScreen returns the screen left by the last accepted transition, or 0.
func (c *Controller) PreviousScreen() int { return c.engine.state.Previous }

// Sliding reports whether a transition is in progress.
func (c *Controller) Sliding() bool { return c.engine.state.Sliding }

// Offset returns the offset most recently computed by the animation.
func (c *Controller) Offset() float64 { return c.engine.state.CurrentOffset }

// ScreenCount returns N.
func (c *Controller) ScreenCount() int { return c.engine.count }

// ScreenHeight returns the per-screen height from the last measurement.
func (c *Controller) ScreenHeight() float64 { return c.engine.screenHeight }

// State returns a copy of the transition state.
func (c *Controller) State() TransitionState { return c.engine.state }

// Suppressed reports whether navigation is currently being ignored after a
// transition.
func (c *Controller) Suppressed() bool { return c.gate.blocked(c.clock.Now()) }
