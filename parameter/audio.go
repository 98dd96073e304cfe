package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines output latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Boot hum
const (
	// HumCarrierHz is the fundamental; the overtone sits one octave up
	HumCarrierHz      = 55.0
	HumOvertoneRatio  = 2.0
	HumOvertoneWeight = 0.3

	// HumGain is peak amplitude before volume
	HumGain = 0.25

	// HumFloor keeps the hum audible at the trough of the base pulse
	HumFloor = 0.2

	// HumReleaseDuration fades the hum out once boot completes
	HumReleaseDuration = 1500 * time.Millisecond
)
