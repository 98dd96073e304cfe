package parameter

import (
	"time"
)

// Boot sequence
const (
	// BootDuration is the single authority for boot length
	// Drives both the boot-end timer and the camera fly-in
	BootDuration = 5 * time.Second

	// BootProgressInterval is the tick of the independent progress counter
	BootProgressInterval = 50 * time.Millisecond

	// BootProgressStep is added to progress each tick, clamped at 1
	BootProgressStep = 0.01
)

// Frame clock
const (
	// MaxFrameDelta caps deltaTime so a stalled frame does not teleport particles
	MaxFrameDelta = 100 * time.Millisecond

	// DefaultFPS is the target frame rate for the real-time loop
	DefaultFPS = 30
)

// Panels
const (
	// PanelCount is the fixed number of glass panels on stage
	PanelCount = 5

	// DefaultActivePanel is focused on mount
	DefaultActivePanel = 0
)

// Lighting per phase
const (
	SpotIntensityBooting  = 2.0
	SpotIntensitySteady   = 1.0
	BloomIntensityBooting = 2.0
	BloomIntensitySteady  = 1.2
)
