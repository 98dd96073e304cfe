package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/aether-stage/engine"
	"github.com/lixenwraith/aether-stage/parameter"
)

func TestGridBootOscillation(t *testing.T) {
	l := NewLayer()
	for _, tm := range []float64{0, 0.4, 1.3, 2.8, 4.99} {
		s := l.Update(engine.PhaseBooting, engine.SamplePulses(tm), 1.0/60)
		assert.InDelta(t, 0.4+math.Sin(tm*6)*0.35, s.Opacity, 1e-12)
		assert.Equal(t, 1.0, s.Heat)
		assert.Equal(t, parameter.GridCellThickHot, s.CellThickness)
		assert.Equal(t, parameter.GridSectionThickHot, s.SectionThickness)
		assert.InDelta(t, cellHot.R, s.CellColor.R, 1e-6)
	}
}

func TestGridSteadyDecayIsOneWay(t *testing.T) {
	l := NewLayer()
	l.Update(engine.PhaseBooting, engine.SamplePulses(math.Pi/12), 1.0/60) // edge pulse peak

	prev := l.State()
	for frame := 0; frame < 2000; frame++ {
		tm := 5 + float64(frame)/60
		s := l.Update(engine.PhaseSteady, engine.SamplePulses(tm), 1.0/60)

		assert.LessOrEqual(t, s.Opacity, prev.Opacity, "frame %d opacity re-intensified", frame)
		assert.GreaterOrEqual(t, s.Opacity, parameter.GridOpacitySteady)
		assert.LessOrEqual(t, s.Heat, prev.Heat)
		prev = s
	}

	assert.InDelta(t, parameter.GridOpacitySteady, prev.Opacity, 1e-6)
	assert.InDelta(t, 0, prev.Heat, 1e-6)
	assert.InDelta(t, parameter.GridCellThickCool, prev.CellThickness, 1e-5)
	assert.InDelta(t, cellCool.R, prev.CellColor.R, 1e-4)
}

func TestGridSmoothDecayNotSnap(t *testing.T) {
	l := NewLayer()
	l.Update(engine.PhaseBooting, engine.SamplePulses(math.Pi/12), 1.0/60)
	before := l.State().Opacity

	s := l.Update(engine.PhaseSteady, engine.SamplePulses(5), 1.0/60)
	assert.InDelta(t, before+(0.1-before)*0.03, s.Opacity, 1e-9)
}

func TestGridPlacement(t *testing.T) {
	s := NewLayer().State()
	assert.Equal(t, -4.0, s.Position.Y)
	assert.Equal(t, -5.0, s.Position.Z)
	assert.Equal(t, 50.0, s.Size)
	assert.Equal(t, sectionTint, s.SectionColor)
}
