package core

import "time"

// FrameGate admits at most one tick per interval.
// Timestamps should come from time.Now so comparisons use the monotonic clock.
type FrameGate struct {
	interval time.Duration
	last     time.Time
	started  bool
}

// NewFrameGate creates a gate for the given tick rate (ticks per second).
// Non-positive rates fall back to 60.
func NewFrameGate(tickRate int) *FrameGate {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameGate{interval: time.Second / time.Duration(tickRate)}
}

// Interval returns the target frame interval.
func (g *FrameGate) Interval() time.Duration {
	return g.interval
}

// Ready reports whether a tick should run at now. The first call always
// admits a tick. A rejected call is a no-op and does not move the gate.
func (g *FrameGate) Ready(now time.Time) bool {
	if !g.started {
		g.started = true
		g.last = now
		return true
	}
	if now.Sub(g.last) < g.interval {
		return false
	}
	g.last = now
	return true
}

// Reset forgets the last admitted tick.
func (g *FrameGate) Reset() {
	g.started = false
}
