package engine

import (
	"math"
	"sync/atomic"
	"time"
)

// TimeProvider is the frame clock's source of "now"
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads time.Now, whose monotonic reading keeps frame deltas
// immune to wall-clock jumps
type SystemTime struct{}

func (SystemTime) Now() time.Time { return time.Now() }

// ManualTime is a frame-driven time source for headless stages and tests
// It holds a fixed origin plus an atomic nanosecond offset, so readers on the
// render goroutine never contend with the driver
type ManualTime struct {
	origin time.Time
	offset atomic.Int64
}

func NewManualTime(origin time.Time) *ManualTime {
	return &ManualTime{origin: origin}
}

func (m *ManualTime) Now() time.Time {
	return m.origin.Add(time.Duration(m.offset.Load()))
}

// Advance moves time forward by d, negative d moves it back
func (m *ManualTime) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}

// AdvanceSeconds advances by a frame delta in seconds, rounded to the nanosecond
func (m *ManualTime) AdvanceSeconds(s float64) {
	m.Advance(time.Duration(math.Round(s * float64(time.Second))))
}

// Jump places the source at t, which may precede the current reading
func (m *ManualTime) Jump(t time.Time) {
	m.offset.Store(int64(t.Sub(m.origin)))
}
