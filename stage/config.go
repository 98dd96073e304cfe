package stage

import (
	"fmt"
	"time"

	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/particle"
)

// Config holds the runtime-tunable stage settings
// Zero values are replaced by defaults in New
type Config struct {
	// BootDuration drives both the boot-end timer and the camera fly-in
	BootDuration     time.Duration
	ProgressInterval time.Duration
	ProgressStep     float64

	MaxDelta time.Duration

	// Seed 0 derives a seed from the wall clock
	Seed int64

	PanelCount int
	Jitter     particle.JitterKind

	// FPS sets the orbit spring step
	FPS int
}

// DefaultConfig returns the stock stage settings
func DefaultConfig() Config {
	return Config{
		BootDuration:     parameter.BootDuration,
		ProgressInterval: parameter.BootProgressInterval,
		ProgressStep:     parameter.BootProgressStep,
		MaxDelta:         parameter.MaxFrameDelta,
		PanelCount:       parameter.PanelCount,
		Jitter:           particle.JitterUniform,
		FPS:              parameter.DefaultFPS,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BootDuration == 0 {
		c.BootDuration = d.BootDuration
	}
	if c.ProgressInterval == 0 {
		c.ProgressInterval = d.ProgressInterval
	}
	if c.ProgressStep == 0 {
		c.ProgressStep = d.ProgressStep
	}
	if c.MaxDelta == 0 {
		c.MaxDelta = d.MaxDelta
	}
	if c.PanelCount == 0 {
		c.PanelCount = d.PanelCount
	}
	if c.Jitter == "" {
		c.Jitter = d.Jitter
	}
	if c.FPS == 0 {
		c.FPS = d.FPS
	}
	return c
}

func (c Config) check() error {
	switch {
	case c.BootDuration < 0:
		return fmt.Errorf("boot duration %v is negative", c.BootDuration)
	case c.ProgressInterval < 0:
		return fmt.Errorf("progress interval %v is negative", c.ProgressInterval)
	case c.ProgressStep < 0:
		return fmt.Errorf("progress step %v is negative", c.ProgressStep)
	case c.PanelCount < 0:
		return fmt.Errorf("panel count %d is negative", c.PanelCount)
	case c.FPS < 0:
		return fmt.Errorf("fps %d is negative", c.FPS)
	}
	return nil
}
