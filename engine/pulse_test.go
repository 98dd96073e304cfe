package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHarmonicRatios(t *testing.T) {
	base := Frequency(HarmonicBase)

	assert.Equal(t, 2*base, Frequency(HarmonicSpark))
	assert.Equal(t, 2*base, Frequency(HarmonicEdge))
	assert.Equal(t, 4*base, Frequency(HarmonicInner))
	assert.Equal(t, Frequency(HarmonicSpark), Frequency(HarmonicEdge))
}

func TestSamplePulsesPhaseLocked(t *testing.T) {
	for i := 0; i < 2000; i++ {
		tm := float64(i) * 0.0137
		p := SamplePulses(tm)

		assert.Equal(t, tm, p.Time)
		assert.InDelta(t, math.Sin(tm*Frequency(HarmonicBase)), p.Base, 1e-12)
		assert.Equal(t, p.Spark, p.Edge, "spark and edge share a harmonic")
		assert.GreaterOrEqual(t, p.Inner, 0.0, "inner flicker is one-sided")
		assert.LessOrEqual(t, p.Inner, 1.0)

		// sin(2x) = 2 sin(x) cos(x): the edge pulse is locked to the base pulse
		x := tm * Frequency(HarmonicBase)
		assert.InDelta(t, 2*math.Sin(x)*math.Cos(x), p.Edge, 1e-9)
	}
}

func TestBootPhaseString(t *testing.T) {
	tests := []struct {
		phase    BootPhase
		expected string
	}{
		{PhaseBooting, "Booting"},
		{PhaseSteady, "Steady"},
		{BootPhase(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.phase.String(); got != tt.expected {
				t.Errorf("BootPhase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
			}
		})
	}

	if !PhaseBooting.IsBooting() || PhaseSteady.IsBooting() {
		t.Error("IsBooting mismatch")
	}
}
