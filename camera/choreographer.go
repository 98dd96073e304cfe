// Package camera drives the stage camera: a scripted fly-in during boot and a
// clamped, damped free orbit afterward
package camera

import (
	"time"

	"github.com/lixenwraith/aether-stage/engine"
	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/vmath"
)

// Pose is a camera position and its look-at point
type Pose struct {
	Position vmath.Vec3F
	Target   vmath.Vec3F
}

// StartPose is the first waypoint of the fly-in
func StartPose() Pose {
	return Pose{
		Position: vmath.V3F(parameter.CameraStartX, parameter.CameraStartY, parameter.CameraStartZ),
		Target:   LookTarget(),
	}
}

// EndPose is where the fly-in lands and free orbit begins
func EndPose() Pose {
	return Pose{
		Position: vmath.V3F(parameter.CameraEndX, parameter.CameraEndY, parameter.CameraEndZ),
		Target:   LookTarget(),
	}
}

// LookTarget is the fixed look-at point during boot and the orbit pivot afterward
func LookTarget() vmath.Vec3F {
	return vmath.V3F(parameter.CameraTargetX, parameter.CameraTargetY, parameter.CameraTargetZ)
}

// Choreographer owns the camera while booting
// Handoff is one-way: once it observes the steady phase it never writes a pose again
type Choreographer struct {
	start, end vmath.Vec3F
	target     vmath.Vec3F
	duration   float64

	released bool
	last     Pose
}

// NewChoreographer creates a fly-in lasting duration, normally parameter.BootDuration
func NewChoreographer(duration time.Duration) *Choreographer {
	start := StartPose()
	return &Choreographer{
		start:    start.Position,
		end:      EndPose().Position,
		target:   start.Target,
		duration: duration.Seconds(),
		last:     start,
	}
}

// Progress returns the eased fly-in progress for elapsed time t
func (c *Choreographer) Progress(t float64) float64 {
	if c.duration <= 0 {
		return 1
	}
	return vmath.EaseOutCubic(vmath.Clamp01(t / c.duration))
}

// PoseAt is the pure fly-in path, exact at both waypoints
func (c *Choreographer) PoseAt(t float64) Pose {
	eased := c.Progress(t)
	pos := vmath.V3FLerp(c.start, c.end, eased)
	if eased >= 1 {
		pos = c.end
	}
	return Pose{Position: pos, Target: c.target}
}

// Update writes the fly-in pose while booting and reports whether it wrote
// The first steady frame releases control permanently
func (c *Choreographer) Update(phase engine.BootPhase, t float64) (Pose, bool) {
	if c.released {
		return c.last, false
	}
	if !phase.IsBooting() {
		c.released = true
		return c.last, false
	}
	c.last = c.PoseAt(t)
	return c.last, true
}

// Released reports whether control has passed to free orbit
func (c *Choreographer) Released() bool {
	return c.released
}

// Last returns the most recent pose the choreographer wrote
func (c *Choreographer) Last() Pose {
	return c.last
}
