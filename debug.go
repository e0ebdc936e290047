package pager

import (
	"log/slog"
	"time"
)

// debugStats holds per-run metrics. Only populated when debug mode is on.
type debugStats struct {
	frames    int           // frames from first tick to completion
	startedAt time.Duration // Clock reading when the request was accepted
	accepted  int           // requests accepted since debug mode was enabled
	rejected  int           // requests dropped since debug mode was enabled
}

// SetDebugMode enables or disables debug logging. When enabled, accepted and
// rejected navigation requests and per-transition timing are logged at debug
// level through Config.Logger.
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
	c.stats = debugStats{}
}

// rejectReason explains why requestScreen would refuse target.
func (c *Controller) rejectReason(target int) string {
	st := &c.engine.state
	switch {
	case st.Sliding:
		return "sliding"
	case target == st.Current:
		return "already current"
	case target < 1 || target > c.engine.count:
		return "out of range"
	default:
		return "unknown"
	}
}

func (c *Controller) debugRejected(target int, reason string) {
	if !c.debug {
		return
	}
	c.stats.rejected++
	c.log.Debug("navigation dropped",
		slog.Int("target", target),
		slog.Int("current", c.engine.state.Current),
		slog.String("reason", reason),
		slog.Int("rejected", c.stats.rejected))
}

func (c *Controller) debugAccepted(ev TransitionEvent) {
	if !c.debug {
		return
	}
	c.stats.accepted++
	c.stats.frames = 0
	c.stats.startedAt = ev.At
	c.log.Debug("transition accepted",
		slog.Int("from", ev.From),
		slog.Int("to", ev.To),
		slog.Float64("from_offset", ev.FromOffset),
		slog.Float64("to_offset", ev.ToOffset))
}

func (c *Controller) debugFrame() {
	if c.debug {
		c.stats.frames++
	}
}

func (c *Controller) debugComplete(ev TransitionEvent) {
	if !c.debug {
		return
	}
	c.log.Debug("transition complete",
		slog.Int("from", ev.From),
		slog.Int("to", ev.To),
		slog.Int("frames", c.stats.frames),
		slog.Duration("elapsed", ev.At-c.stats.startedAt),
		slog.Int("accepted", c.stats.accepted))
}
