package engine

import (
	"sync"
	"time"
)

// Timer is a cancellable scheduled callback
type Timer interface {
	// Stop cancels future firings, returns false if already stopped or fired (one-shot)
	Stop() bool
}

// Scheduler runs callbacks after a delay or periodically
// Callbacks must only push events; they never mutate stage state
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
	Every(d time.Duration, f func()) Timer
}

// Advancer is implemented by schedulers driven by frame time instead of wall time
type Advancer interface {
	Advance(now time.Duration)
}

// --- Real time ---

// RealScheduler fires callbacks on runtime timers in their own goroutines
type RealScheduler struct{}

func NewRealScheduler() *RealScheduler {
	return &RealScheduler{}
}

func (s *RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Every starts a ticker goroutine, Stop blocks until the goroutine has exited
func (s *RealScheduler) Every(d time.Duration, f func()) Timer {
	t := &tickerTimer{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	t.wg.Add(1)
	go t.run(f)
	return t
}

type tickerTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

func (t *tickerTimer) run(f func()) {
	defer t.wg.Done()
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			f()
		}
	}
}

func (t *tickerTimer) Stop() bool {
	stopped := false
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
		stopped = true
	})
	t.wg.Wait()
	return stopped
}

// --- Frame time ---

// FrameScheduler fires callbacks synchronously from Advance, using stage elapsed
// time as its clock. Used for deterministic headless playback and tests.
type FrameScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     uint64
	entries []*frameTimer
}

func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

type frameTimer struct {
	s        *FrameScheduler
	deadline time.Duration
	period   time.Duration // 0 = one-shot
	seq      uint64
	f        func()
	stopped  bool
}

func (s *FrameScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return s.add(d, 0, f)
}

func (s *FrameScheduler) Every(d time.Duration, f func()) Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	return s.add(d, d, f)
}

func (s *FrameScheduler) add(d, period time.Duration, f func()) *frameTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &frameTimer{
		s:        s,
		deadline: s.now + d,
		period:   period,
		seq:      s.seq,
		f:        f,
	}
	s.entries = append(s.entries, t)
	return t
}

// Advance moves scheduler time to now and fires every due callback in deadline order
// Periodic timers fire once per elapsed period, so a long frame catches up
func (s *FrameScheduler) Advance(now time.Duration) {
	for {
		s.mu.Lock()
		if now > s.now {
			s.now = now
		}
		next := s.nextDueLocked()
		if next == nil {
			s.mu.Unlock()
			return
		}
		f := next.f
		if next.period > 0 {
			next.deadline += next.period
		} else {
			next.stopped = true
			s.removeLocked(next)
		}
		s.mu.Unlock()

		f()
	}
}

// Pending returns the number of live timers
func (s *FrameScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *FrameScheduler) nextDueLocked() *frameTimer {
	var best *frameTimer
	for _, t := range s.entries {
		if t.stopped || t.deadline > s.now {
			continue
		}
		if best == nil || t.deadline < best.deadline || (t.deadline == best.deadline && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *FrameScheduler) removeLocked(t *frameTimer) {
	for i, e := range s.entries {
		if e == t {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (t *frameTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	t.s.removeLocked(t)
	return true
}
