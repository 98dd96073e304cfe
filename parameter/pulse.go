package parameter

// Unified clock pulse
// Every oscillating element samples one of these harmonics of PulseBaseFreq so the
// whole stage breathes on one rhythm
const (
	// PulseBaseFreq is the base angular frequency in rad/s (~0.48 Hz, ~2s cycle)
	PulseBaseFreq = 3.0

	// Harmonic multipliers of PulseBaseFreq
	PulseBaseHarmonic  = 1
	PulseSparkHarmonic = 2
	PulseEdgeHarmonic  = 2
	PulseInnerHarmonic = 4
)
