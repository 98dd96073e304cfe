package stage

import (
	"github.com/lixenwraith/aether-stage/camera"
	"github.com/lixenwraith/aether-stage/engine"
	"github.com/lixenwraith/aether-stage/grid"
	"github.com/lixenwraith/aether-stage/marker"
	"github.com/lixenwraith/aether-stage/panel"
	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/particle"
)

// CameraMode names which controller wrote the camera pose this frame
type CameraMode uint8

const (
	CameraFlyIn CameraMode = iota
	CameraOrbit
)

func (m CameraMode) String() string {
	switch m {
	case CameraFlyIn:
		return "FlyIn"
	case CameraOrbit:
		return "Orbit"
	default:
		return "Unknown"
	}
}

// CameraState is the lens and pose for one frame
type CameraState struct {
	Pose camera.Pose
	FOV  float64
	Mode CameraMode
}

// Lighting is the phase-driven light rig
type Lighting struct {
	Spot  float64
	Bloom float64
}

// LightingFor returns the rig for a phase
func LightingFor(phase engine.BootPhase) Lighting {
	if phase.IsBooting() {
		return Lighting{Spot: parameter.SpotIntensityBooting, Bloom: parameter.BloomIntensityBooting}
	}
	return Lighting{Spot: parameter.SpotIntensitySteady, Bloom: parameter.BloomIntensitySteady}
}

// Frame is the complete render output of one update
// Slices alias component buffers and are valid until the next update
type Frame struct {
	Number       uint64
	Clock        engine.ClockState
	Phase        engine.BootPhase
	BootProgress float64
	Pulses       engine.Pulses

	Camera   CameraState
	Lighting Lighting

	ActivePanel   int
	HoveredMarker int

	Panels  []panel.State
	Sparks  particle.Snapshot
	Photons particle.Snapshot
	Grid    grid.State
	Markers []marker.State
}
