package stage

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/aether-stage/engine"
)

// Option configures a Stage at construction
type Option func(*Stage)

// WithLogger sets the logger, nil keeps the no-op logger
func WithLogger(log *zap.Logger) Option {
	return func(s *Stage) {
		if log != nil {
			s.log = log
		}
	}
}

// WithScheduler replaces the wall-clock scheduler
// A scheduler implementing engine.Advancer is advanced with frame time before each update
func WithScheduler(sched engine.Scheduler) Option {
	return func(s *Stage) {
		if sched != nil {
			s.sched = sched
		}
	}
}

// WithTimeProvider sets the time source used by Update
func WithTimeProvider(tp engine.TimeProvider) Option {
	return func(s *Stage) {
		if tp != nil {
			s.tp = tp
		}
	}
}

// WithBootCompleteHook runs fn on the render goroutine on the frame boot ends
func WithBootCompleteHook(fn func(Frame)) Option {
	return func(s *Stage) {
		s.onBootComplete = fn
	}
}
