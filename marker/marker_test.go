package marker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/aether-stage/engine"
	"github.com/lixenwraith/aether-stage/parameter"
)

func TestMarkerLinks(t *testing.T) {
	s := NewSet()
	assert.Equal(t, 5, s.Len())

	panel, ok := s.Panel(1)
	assert.True(t, ok)
	assert.Equal(t, 2, panel)

	_, ok = s.Panel(4)
	assert.False(t, ok, "lock marker is unlinked")
	_, ok = s.Panel(9)
	assert.False(t, ok)
}

func TestMarkerActiveFollowsPanel(t *testing.T) {
	s := NewSet()
	p := engine.SamplePulses(2)

	for i := 0; i < 300; i++ {
		s.Update(3, -1, p, 1.0/60)
	}

	for i, m := range s.Markers() {
		if i == 2 {
			assert.True(t, m.Active)
			assert.InDelta(t, parameter.MarkerScaleLit, m.Scale, 1e-6)
			assert.True(t, m.BeamVisible)
			assert.InDelta(t, 0.08+math.Sin(6)*0.04, m.BeamOpacity, 1e-12)
			continue
		}
		assert.False(t, m.Lit(), "marker %d", i)
		assert.InDelta(t, parameter.MarkerScaleIdle, m.Scale, 1e-6)
		assert.Zero(t, m.BeamOpacity)
	}
}

func TestMarkerHoverAndSpin(t *testing.T) {
	s := NewSet()
	p := engine.SamplePulses(1)

	s.Update(0, 4, p, 1.0/60)
	m := s.Markers()[4]
	assert.True(t, m.Hovered)
	assert.False(t, m.Active)
	assert.InDelta(t, 0.03+math.Sin(3)*0.04, m.BeamOpacity, 1e-12)
	assert.InDelta(t, parameter.MarkerSpin, m.Rotation, 1e-12)

	// Unlinked markers never match a panel even when the active index is NoPanel
	s.Update(NoPanel, -1, p, 1.0/60)
	assert.False(t, s.Markers()[4].Active)
}
