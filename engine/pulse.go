package engine

import (
	"math"

	"github.com/lixenwraith/aether-stage/parameter"
)

// Harmonic is an integer multiple of the base pulse frequency
type Harmonic int

const (
	HarmonicBase  Harmonic = parameter.PulseBaseHarmonic
	HarmonicSpark Harmonic = parameter.PulseSparkHarmonic
	HarmonicEdge  Harmonic = parameter.PulseEdgeHarmonic
	HarmonicInner Harmonic = parameter.PulseInnerHarmonic
)

// Frequency returns the angular frequency in rad/s of a harmonic
func Frequency(h Harmonic) float64 {
	return parameter.PulseBaseFreq * float64(h)
}

// PulseAt samples sin(t * f) for a harmonic
func PulseAt(h Harmonic, t float64) float64 {
	return math.Sin(t * Frequency(h))
}

// Pulses holds all pulse values for one frame, sampled from one elapsed time
type Pulses struct {
	Time  float64
	Base  float64 // sin(t·f)
	Spark float64 // sin(t·2f)
	Edge  float64 // sin(t·2f)
	Inner float64 // |sin(t·4f)|, one-sided flicker
}

// SamplePulses computes every pulse from the same elapsed time snapshot
func SamplePulses(t float64) Pulses {
	return Pulses{
		Time:  t,
		Base:  PulseAt(HarmonicBase, t),
		Spark: PulseAt(HarmonicSpark, t),
		Edge:  PulseAt(HarmonicEdge, t),
		Inner: math.Abs(PulseAt(HarmonicInner, t)),
	}
}
