package parameter

// Floor markers, one per linked panel plus an unlinked lock marker
const (
	MarkerGroupY = -3.75

	MarkerScaleLit  = 1.3
	MarkerScaleIdle = 1.0
	MarkerScaleRate = 0.1

	// MarkerSpin is rotation per 60 Hz reference frame in radians
	MarkerSpin = 0.01

	MarkerBeamActive    = 0.08
	MarkerBeamHovered   = 0.03
	MarkerBeamAmplitude = 0.04
	MarkerBeamHeight    = 4.0
)

// MarkerLayout lists marker floor positions and linked panel (-1 = none)
var MarkerLayout = [...]struct {
	Label string
	Panel int
	X, Z  float64
}{
	{"REPO (P1)", 0, -4, 0},
	{"RVM (P3)", 2, -2, -2},
	{"DATA (P4)", 3, 0, -4},
	{"AI (P5)", 4, 2, -6},
	{"LOCK", -1, 4, -8},
}
