package engine

import (
	"math"
	"time"
)

// ClockState is the per-frame time snapshot every component reads
// Elapsed is non-decreasing, Delta is in [0, maxDelta]
type ClockState struct {
	Elapsed float64 // seconds since stage start
	Delta   float64 // seconds since previous frame, clamped
	Frame   uint64
}

// ElapsedDuration returns Elapsed rounded to the nearest nanosecond, so
// accumulated float steps landing a hair under a deadline still reach it
func (c ClockState) ElapsedDuration() time.Duration {
	return time.Duration(math.Round(c.Elapsed * float64(time.Second)))
}

// FrameClock produces ClockState snapshots, either from a TimeProvider (Tick)
// or from caller-supplied deltas (Step) for headless playback
type FrameClock struct {
	tp       TimeProvider
	maxDelta float64

	started bool
	start   time.Time
	last    time.Time

	state ClockState
}

// NewFrameClock creates a clock, maxDelta <= 0 disables delta clamping
func NewFrameClock(tp TimeProvider, maxDelta time.Duration) *FrameClock {
	if tp == nil {
		tp = SystemTime{}
	}
	return &FrameClock{
		tp:       tp,
		maxDelta: maxDelta.Seconds(),
	}
}

// Reset marks the current provider time as stage start
func (c *FrameClock) Reset() {
	now := c.tp.Now()
	c.started = true
	c.start = now
	c.last = now
	c.state = ClockState{}
}

// Tick samples the time provider and advances one frame
func (c *FrameClock) Tick() ClockState {
	now := c.tp.Now()
	if !c.started {
		c.started = true
		c.start = now
		c.last = now
	}

	raw := now.Sub(c.last).Seconds()
	if now.After(c.last) {
		c.last = now
	}

	elapsed := now.Sub(c.start).Seconds()
	if elapsed < c.state.Elapsed {
		elapsed = c.state.Elapsed
	}

	c.state = ClockState{
		Elapsed: elapsed,
		Delta:   SanitizeDelta(raw, c.maxDelta),
		Frame:   c.state.Frame + 1,
	}
	return c.state
}

// Step advances by dt seconds without consulting the provider
// Negative or NaN dt is treated as a zero-length frame
func (c *FrameClock) Step(dt float64) ClockState {
	c.started = true
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	c.state = ClockState{
		Elapsed: c.state.Elapsed + dt,
		Delta:   SanitizeDelta(dt, c.maxDelta),
		Frame:   c.state.Frame + 1,
	}
	return c.state
}

// State returns the most recent snapshot
func (c *FrameClock) State() ClockState {
	return c.state
}

// SanitizeDelta maps degenerate deltas to 0 and clamps stalls to maxDelta
func SanitizeDelta(dt, maxDelta float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if maxDelta > 0 && dt > maxDelta {
		return maxDelta
	}
	return dt
}
