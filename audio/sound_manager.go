package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/aether-stage/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// Output owns the speaker and the boot hum
type Output struct {
	mu          sync.Mutex
	log         *zap.Logger
	mixer       *beep.Mixer
	hum         *Hum
	volume      float64
	initialized bool
}

// NewOutput creates an output, volume is a base-2 gain exponent
func NewOutput(volume float64, log *zap.Logger) *Output {
	if log == nil {
		log = zap.NewNop()
	}
	return &Output{
		log:    log.Named("audio"),
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the speaker, calling it again is a no-op
func (o *Output) Initialize() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(o.mixer)
	o.initialized = true
	o.log.Debug("speaker initialized", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// StartHum begins the boot hum, replacing a previous one
func (o *Output) StartHum() *Hum {
	hum := NewHum(sampleRate)

	speaker.Lock()
	if o.hum != nil {
		o.hum.Release()
	}
	o.hum = hum
	o.mixer.Add(newVolume(hum, o.volume, false))
	speaker.Unlock()

	return hum
}

// ReleaseHum fades out the current hum, the mixer drops it when it ends
func (o *Output) ReleaseHum() {
	speaker.Lock()
	hum := o.hum
	speaker.Unlock()

	if hum != nil {
		hum.Release()
		o.log.Debug("hum released")
	}
}

// Cleanup silences all streams
func (o *Output) Cleanup() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		return
	}

	speaker.Clear()

	// Note: beep doesn't provide a Close() method for speaker,
	// but clearing all streamers ensures no audio artifacts
	o.initialized = false
}
