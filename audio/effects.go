package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/aether-stage/engine"
	"github.com/lixenwraith/aether-stage/parameter"
)

// Hum is the boot drone: a low carrier whose amplitude follows the base pulse
// Time is derived from the sample count, so a hum started at mount stays phase-locked
// with the stage clock without reading it
type Hum struct {
	rate  beep.SampleRate
	pos   int
	phase float64 // carrier phase in [0,1)

	release   atomic.Bool
	fadeTotal int
	fadeLeft  int
	done      bool
}

// NewHum creates a hum that streams until released and faded out
func NewHum(rate beep.SampleRate) *Hum {
	fade := rate.N(parameter.HumReleaseDuration)
	return &Hum{
		rate:      rate,
		fadeTotal: fade,
		fadeLeft:  fade,
	}
}

// Release starts the fade-out, safe from any goroutine
func (h *Hum) Release() {
	h.release.Store(true)
}

// Released reports whether Release was called
func (h *Hum) Released() bool {
	return h.release.Load()
}

// Envelope is the pulse-driven amplitude at time t, in [HumFloor, 1]
func Envelope(t float64) float64 {
	lfo := 0.5 + 0.5*engine.PulseAt(engine.HarmonicBase, t)
	return parameter.HumFloor + (1-parameter.HumFloor)*lfo
}

func (h *Hum) Stream(samples [][2]float64) (n int, ok bool) {
	releasing := h.release.Load()

	for i := range samples {
		if h.done {
			return i, i > 0
		}

		t := float64(h.pos) / float64(h.rate)
		carrier := math.Sin(2*math.Pi*h.phase) +
			parameter.HumOvertoneWeight*math.Sin(2*math.Pi*h.phase*parameter.HumOvertoneRatio)
		val := parameter.HumGain * Envelope(t) * carrier / (1 + parameter.HumOvertoneWeight)

		if releasing {
			if h.fadeTotal > 0 {
				val *= float64(h.fadeLeft) / float64(h.fadeTotal)
			}
			if h.fadeLeft <= 0 {
				val = 0
				h.done = true
			}
			h.fadeLeft--
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		h.phase += parameter.HumCarrierHz / float64(h.rate)
		h.phase -= math.Floor(h.phase)
		h.pos++
	}
	return len(samples), true
}

func (h *Hum) Err() error { return nil }

// newVolume applies a base-2 gain exponent; math.Log2(0) is -Inf so silence is explicit
func newVolume(s beep.Streamer, exponent float64, silent bool) *effects.Volume {
	return &effects.Volume{Streamer: s, Base: 2, Volume: exponent, Silent: silent}
}
