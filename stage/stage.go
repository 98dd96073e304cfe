// Package stage composes the clock, pulses, particles, camera, grid, panels and
// markers into one per-frame update
//
// Threading model:
//   - Update, Step and Frame accessors run on a single render goroutine
//   - Timers and input setters may run on any goroutine; they only push events
//   - Events are drained once at the start of each frame, so boot and selection
//     state has exactly one writer
package stage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/aether-stage/camera"
	"github.com/lixenwraith/aether-stage/engine"
	"github.com/lixenwraith/aether-stage/grid"
	"github.com/lixenwraith/aether-stage/marker"
	"github.com/lixenwraith/aether-stage/panel"
	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/particle"
	"github.com/lixenwraith/aether-stage/vmath"
)

var (
	ErrClosed      = errors.New("stage closed")
	ErrMounted     = errors.New("stage already mounted")
	ErrPanelIndex  = errors.New("panel index out of range")
	ErrMarkerIndex = errors.New("marker index out of range")
)

// Stage is the animation orchestrator
type Stage struct {
	cfg       Config
	sessionID string
	log       *zap.Logger

	sched engine.Scheduler
	tp    engine.TimeProvider
	clock *engine.FrameClock
	queue *engine.EventQueue
	drain []engine.Event

	// Written only while draining events
	phase    engine.BootPhase
	progress float64
	active   int
	hovered  int

	sparks  *particle.Field
	photons *particle.Field
	choreo  *camera.Choreographer
	orbit   *camera.Orbit
	layout  *panel.Layout
	grid    *grid.Layer
	markers *marker.Set

	frame          Frame
	onBootComplete func(Frame)

	mu            sync.Mutex
	mounted       bool
	bootTimer     engine.Timer
	progressTimer engine.Timer
	stopCtx       func() bool

	closed    atomic.Bool
	closeOnce sync.Once
}

// New builds a stage in the booting phase, timers start on Mount
func New(cfg Config, opts ...Option) (*Stage, error) {
	cfg = cfg.withDefaults()
	if err := cfg.check(); err != nil {
		return nil, fmt.Errorf("stage config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sparks, err := particle.NewField(particle.SparkConfig(), uint64(seed), particle.NewJitter(cfg.Jitter, seed))
	if err != nil {
		return nil, fmt.Errorf("spark field: %w", err)
	}
	photons, err := particle.NewField(particle.PhotonConfig(), uint64(seed)+1, nil)
	if err != nil {
		return nil, fmt.Errorf("photon field: %w", err)
	}

	s := &Stage{
		cfg:       cfg,
		sessionID: uuid.NewString(),
		log:       zap.NewNop(),
		sched:     engine.NewRealScheduler(),
		tp:        engine.SystemTime{},
		queue:     engine.NewEventQueue(),
		drain:     make([]engine.Event, 0, engine.EventQueueCapacity),
		phase:     engine.PhaseBooting,
		active:    parameter.DefaultActivePanel,
		hovered:   -1,
		sparks:    sparks,
		photons:   photons,
		choreo:    camera.NewChoreographer(cfg.BootDuration),
		layout:    panel.NewLayout(cfg.PanelCount),
		grid:      grid.NewLayer(),
		markers:   marker.NewSet(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.active >= cfg.PanelCount {
		s.active = 0
	}
	s.log = s.log.Named("stage").With(zap.String("session", s.sessionID))
	s.clock = engine.NewFrameClock(s.tp, cfg.MaxDelta)
	s.frame = s.compose(s.clock.State(), engine.SamplePulses(0), camera.StartPose(), CameraFlyIn)

	return s, nil
}

// Mount starts the clock and both boot timers
// Cancelling ctx closes the stage
func (s *Stage) Mount(ctx context.Context) error {
	if s.closed.Load() {
		return ErrClosed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mounted {
		return ErrMounted
	}
	s.mounted = true

	s.clock.Reset()
	s.bootTimer = s.sched.AfterFunc(s.cfg.BootDuration, func() {
		s.queue.Push(engine.Event{Type: engine.EventBootComplete, Timestamp: s.tp.Now()})
	})
	s.progressTimer = s.sched.Every(s.cfg.ProgressInterval, func() {
		s.queue.Push(engine.Event{Type: engine.EventBootProgress, X: s.cfg.ProgressStep, Timestamp: s.tp.Now()})
	})
	s.stopCtx = context.AfterFunc(ctx, func() { s.Close() })

	s.log.Info("stage mounted",
		zap.Duration("boot_duration", s.cfg.BootDuration),
		zap.Int("panels", s.cfg.PanelCount),
		zap.String("jitter", string(s.cfg.Jitter)),
	)
	return nil
}

// Close cancels both timers, safe to call more than once and from any goroutine
func (s *Stage) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)

		s.mu.Lock()
		boot, progress, stopCtx := s.bootTimer, s.progressTimer, s.stopCtx
		s.bootTimer, s.progressTimer, s.stopCtx = nil, nil, nil
		s.mu.Unlock()

		if boot != nil {
			boot.Stop()
		}
		if progress != nil {
			progress.Stop()
		}
		if stopCtx != nil {
			stopCtx()
		}
		s.log.Info("stage closed")
	})
	return nil
}

// Update advances one frame from the time provider
func (s *Stage) Update() *Frame {
	return s.advance(s.clock.Tick())
}

// Step advances one frame by dt seconds, for headless and deterministic playback
func (s *Stage) Step(dt float64) *Frame {
	return s.advance(s.clock.Step(dt))
}

// Frame returns the most recent frame
func (s *Stage) Frame() *Frame {
	return &s.frame
}

func (s *Stage) advance(cs engine.ClockState) *Frame {
	if adv, ok := s.sched.(engine.Advancer); ok && !s.closed.Load() {
		adv.Advance(cs.ElapsedDuration())
	}

	bootEnded := false
	s.drain = s.queue.ConsumeInto(s.drain[:0])
	for i := range s.drain {
		if s.apply(s.drain[i], cs) {
			bootEnded = true
		}
	}

	p := engine.SamplePulses(cs.Elapsed)
	dt := cs.Delta

	// Sparks only fall during boot; photons flow in both phases
	booting := s.phase.IsBooting()
	if booting {
		s.sparks.Advance(dt)
	}
	s.sparks.SetVisible(booting)
	s.sparks.SetOpacity(particle.SparkOpacity(p))
	s.photons.Advance(dt)
	s.photons.SetOpacity(particle.PhotonOpacity(s.phase, p))

	mode := CameraFlyIn
	pose, flying := s.choreo.Update(s.phase, cs.Elapsed)
	if !flying {
		mode = CameraOrbit
		pose = s.orbitOrHandoff().Update()
	}

	s.frame = s.compose(cs, p, pose, mode)

	if bootEnded && s.onBootComplete != nil {
		s.onBootComplete(s.frame)
	}
	return &s.frame
}

// compose updates grid, panels and markers from the shared snapshot and assembles the frame
func (s *Stage) compose(cs engine.ClockState, p engine.Pulses, pose camera.Pose, mode CameraMode) Frame {
	gridState := s.grid.Update(s.phase, p, cs.Delta)
	s.layout.Update(s.phase, s.active, p, cs.Delta)
	s.markers.Update(s.active, s.hovered, p, cs.Delta)

	return Frame{
		Number:        cs.Frame,
		Clock:         cs,
		Phase:         s.phase,
		BootProgress:  s.progress,
		Pulses:        p,
		Camera:        CameraState{Pose: pose, FOV: parameter.CameraFOV, Mode: mode},
		Lighting:      LightingFor(s.phase),
		ActivePanel:   s.active,
		HoveredMarker: s.hovered,
		Panels:        s.layout.Panels(),
		Sparks:        s.sparks.Snapshot(),
		Photons:       s.photons.Snapshot(),
		Grid:          gridState,
		Markers:       s.markers.Markers(),
	}
}

// apply is the single writer of boot and selection state, reports whether boot ended
func (s *Stage) apply(ev engine.Event, cs engine.ClockState) bool {
	switch ev.Type {
	case engine.EventBootComplete:
		if !s.phase.IsBooting() {
			return false
		}
		s.phase = engine.PhaseSteady
		s.orbitOrHandoff()
		s.log.Info("boot complete",
			zap.Float64("elapsed", cs.Elapsed),
			zap.Uint64("frame", cs.Frame),
			zap.Float64("progress", s.progress),
		)
		return true

	case engine.EventBootProgress:
		s.progress = vmath.Clamp01(s.progress + ev.X)
		if s.progress >= 1 {
			s.stopProgress()
		}

	case engine.EventSelectPanel:
		if ev.Index < 0 || ev.Index >= s.cfg.PanelCount {
			s.log.Debug("panel selection rejected", zap.Int("index", ev.Index))
			return false
		}
		if ev.Index != s.active {
			s.log.Debug("panel selected", zap.Int("index", ev.Index), zap.Int("previous", s.active))
		}
		s.active = ev.Index

	case engine.EventHoverMarker:
		if ev.Index < -1 || ev.Index >= s.markers.Len() {
			return false
		}
		s.hovered = ev.Index

	case engine.EventOrbit:
		if s.phase.IsBooting() {
			return false
		}
		s.orbitOrHandoff().Drag(ev.X, ev.Y)
	}
	return false
}

// orbitOrHandoff returns the free orbit, creating it at the fly-in landing pose on first use
func (s *Stage) orbitOrHandoff() *camera.Orbit {
	if s.orbit == nil {
		s.orbit = camera.NewOrbit(s.choreo.PoseAt(s.cfg.BootDuration.Seconds()), s.cfg.FPS)
	}
	return s.orbit
}

func (s *Stage) stopProgress() {
	s.mu.Lock()
	t := s.progressTimer
	s.progressTimer = nil
	s.mu.Unlock()

	if t != nil {
		t.Stop()
	}
}

// SetActivePanel requests focus on panel i; out of range leaves focus unchanged
func (s *Stage) SetActivePanel(i int) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if i < 0 || i >= s.cfg.PanelCount {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrPanelIndex, i, s.cfg.PanelCount)
	}
	s.queue.Push(engine.Event{Type: engine.EventSelectPanel, Index: i, Timestamp: s.tp.Now()})
	return nil
}

// SetHoveredMarker highlights marker i, -1 clears the hover
func (s *Stage) SetHoveredMarker(i int) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if i < -1 || i >= marker.Count() {
		return fmt.Errorf("%w: %d", ErrMarkerIndex, i)
	}
	s.queue.Push(engine.Event{Type: engine.EventHoverMarker, Index: i, Timestamp: s.tp.Now()})
	return nil
}

// SelectMarker focuses the panel linked to marker i, unlinked markers are a no-op
func (s *Stage) SelectMarker(i int) error {
	if i < 0 || i >= marker.Count() {
		return fmt.Errorf("%w: %d", ErrMarkerIndex, i)
	}
	panelIndex, ok := marker.LinkedPanel(i)
	if !ok {
		return nil
	}
	return s.SetActivePanel(panelIndex)
}

// Orbit queues a pointer drag in radians, ignored while booting
func (s *Stage) Orbit(dAzimuth, dPolar float64) error {
	if s.closed.Load() {
		return ErrClosed
	}
	s.queue.Push(engine.Event{Type: engine.EventOrbit, X: dAzimuth, Y: dPolar, Timestamp: s.tp.Now()})
	return nil
}

// Phase returns the boot phase as of the last frame
func (s *Stage) Phase() engine.BootPhase {
	return s.phase
}

// SessionID identifies this stage instance in logs
func (s *Stage) SessionID() string {
	return s.sessionID
}

// Config returns the effective configuration after defaults
func (s *Stage) Config() Config {
	return s.cfg
}
