package camera

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/vmath"
)

// Orbit is the user-driven camera after boot
// Rotates around a fixed pivot at a fixed radius; pan and zoom are never enabled
type Orbit struct {
	target vmath.Vec3F
	radius float64

	azimuth, polar       float64
	azimuthVel, polarVel float64
	goalAzimuth          float64
	goalPolar            float64

	spring harmonica.Spring
}

// NewOrbit takes over from the handoff pose, fps sets the spring step
func NewOrbit(from Pose, fps int) *Orbit {
	if fps <= 0 {
		fps = parameter.DefaultFPS
	}

	offset := vmath.V3FSub(from.Position, from.Target)
	radius := vmath.V3FMag(offset)

	var azimuth, polar float64
	if radius > 0 {
		azimuth = math.Atan2(offset.X, offset.Z)
		polar = math.Acos(vmath.Clamp(offset.Y/radius, -1, 1))
	} else {
		polar = math.Pi / 2
	}
	azimuth = clampAzimuth(azimuth)
	polar = clampPolar(polar)

	return &Orbit{
		target:      from.Target,
		radius:      radius,
		azimuth:     azimuth,
		polar:       polar,
		goalAzimuth: azimuth,
		goalPolar:   polar,
		spring:      harmonica.NewSpring(harmonica.FPS(fps), parameter.OrbitSpringFrequency, parameter.OrbitSpringDamping),
	}
}

// Drag applies a pointer drag in radians, goals stay inside the clamps
func (o *Orbit) Drag(dAzimuth, dPolar float64) {
	if math.IsNaN(dAzimuth) || math.IsNaN(dPolar) {
		return
	}
	o.goalAzimuth = clampAzimuth(o.goalAzimuth + dAzimuth)
	o.goalPolar = clampPolar(o.goalPolar + dPolar)
}

// Update steps the spring one frame toward the drag goals and returns the pose
func (o *Orbit) Update() Pose {
	o.azimuth, o.azimuthVel = o.spring.Update(o.azimuth, o.azimuthVel, o.goalAzimuth)
	o.polar, o.polarVel = o.spring.Update(o.polar, o.polarVel, o.goalPolar)

	// A spring may overshoot its goal, the clamp is absolute
	o.azimuth = clampAzimuth(o.azimuth)
	o.polar = clampPolar(o.polar)

	return o.Pose()
}

// Pose returns the current camera pose from spherical coordinates
func (o *Orbit) Pose() Pose {
	sinP := math.Sin(o.polar)
	offset := vmath.V3F(
		o.radius*sinP*math.Sin(o.azimuth),
		o.radius*math.Cos(o.polar),
		o.radius*sinP*math.Cos(o.azimuth),
	)
	return Pose{
		Position: vmath.V3FAdd(o.target, offset),
		Target:   o.target,
	}
}

// Angles returns current azimuth and polar angles
func (o *Orbit) Angles() (azimuth, polar float64) {
	return o.azimuth, o.polar
}

// Radius returns the fixed pivot distance
func (o *Orbit) Radius() float64 {
	return o.radius
}

func clampAzimuth(a float64) float64 {
	return vmath.Clamp(a, parameter.OrbitMinAzimuth, parameter.OrbitMaxAzimuth)
}

func clampPolar(p float64) float64 {
	return vmath.Clamp(p, parameter.OrbitMinPolar, parameter.OrbitMaxPolar)
}
