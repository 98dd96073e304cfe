package parameter

import (
	"math"
)

// Cinematic fly-in waypoints
const (
	CameraStartX, CameraStartY, CameraStartZ = 30.0, 8.0, 40.0
	CameraEndX, CameraEndY, CameraEndZ       = 8.0, 1.0, 12.0

	// Look-at target held during the fly-in and used as orbit pivot afterward
	CameraTargetX, CameraTargetY, CameraTargetZ = 0.0, 0.0, -3.0
)

const (
	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 35.0
)

// Free orbit clamps, pan is never enabled
const (
	OrbitMinAzimuth = -math.Pi / 4
	OrbitMaxAzimuth = math.Pi / 4
	OrbitMinPolar   = math.Pi / 2.2
	OrbitMaxPolar   = math.Pi / 1.8

	// OrbitSpringFrequency and OrbitSpringDamping shape the damped follow of drag targets
	OrbitSpringFrequency = 6.0
	OrbitSpringDamping   = 1.0
)

// Orbit input
const (
	// OrbitKeyStep is radians per arrow key press
	OrbitKeyStep = 0.05

	// OrbitDragPerCell is radians per terminal cell of mouse drag
	OrbitDragPerCell = 0.02
)
