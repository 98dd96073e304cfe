package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aether-stage/parameter"
)

const testRate = beep.SampleRate(8000)

func peak(samples [][2]float64) float64 {
	m := 0.0
	for _, s := range samples {
		m = math.Max(m, math.Abs(s[0]))
	}
	return m
}

func TestHumStreamsUntilReleased(t *testing.T) {
	h := NewHum(testRate)
	buf := make([][2]float64, testRate.N(parameter.HumReleaseDuration)*2)

	for i := 0; i < 3; i++ {
		n, ok := h.Stream(buf)
		require.True(t, ok)
		require.Equal(t, len(buf), n)
	}
	assert.LessOrEqual(t, peak(buf), parameter.HumGain+1e-12)
	assert.Greater(t, peak(buf), 0.0)
	assert.NoError(t, h.Err())
}

func TestHumReleaseFadesAndEnds(t *testing.T) {
	h := NewHum(testRate)
	buf := make([][2]float64, 512)
	h.Stream(buf)

	h.Release()
	assert.True(t, h.Released())

	total := 0
	first, last := -1.0, 0.0
	for {
		n, ok := h.Stream(buf)
		total += n
		if n > 0 {
			if first < 0 {
				first = peak(buf[:n])
			}
			last = peak(buf[:n])
		}
		if !ok {
			break
		}
		require.Less(t, total, testRate.N(parameter.HumReleaseDuration)*2, "hum never ended")
	}
	assert.Less(t, last, first*0.2)
	assert.InDelta(t, testRate.N(parameter.HumReleaseDuration), total, 2)

	n, ok := h.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestEnvelopeFollowsBasePulse(t *testing.T) {
	// sin(3t) peaks at t = pi/6 and bottoms at t = pi/2
	assert.InDelta(t, 1.0, Envelope(math.Pi/6), 1e-12)
	assert.InDelta(t, parameter.HumFloor, Envelope(math.Pi/2), 1e-12)
	assert.InDelta(t, parameter.HumFloor+(1-parameter.HumFloor)*0.5, Envelope(0), 1e-12)
}

func TestVolumeWrapsHum(t *testing.T) {
	h := NewHum(testRate)
	quiet := newVolume(NewHum(testRate), -1, false)

	a := make([][2]float64, 256)
	b := make([][2]float64, 256)
	h.Stream(a)
	quiet.Stream(b)

	for i := range a {
		assert.InDelta(t, a[i][0]/2, b[i][0], 1e-12)
	}
}
