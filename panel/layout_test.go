package panel

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aether-stage/engine"
	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/vmath"
)

const frameDt = 1.0 / 60

var approx = cmpopts.EquateApprox(0, 1e-6)

func TestLayoutStartsCompressed(t *testing.T) {
	l := NewLayout(parameter.PanelCount)
	l.Update(engine.PhaseBooting, 0, engine.SamplePulses(0), 0)

	require.Equal(t, 5, l.Len())
	for _, p := range l.Panels() {
		assert.InDelta(t, 0, p.Current.X, 1e-12)
		assert.InDelta(t, 0, p.Current.Y, 1e-12)
		assert.InDelta(t, 0, p.Current.Z, 1e-12)
		assert.InDelta(t, 0, p.Current.ScaleX, 0.05, "scale ≈ 0 while booting")
		assert.InDelta(t, 0, p.Current.ScaleY, 0.05)
	}
}

func TestTargetCompressedIgnoresIndex(t *testing.T) {
	want := Transform{ScaleX: parameter.PanelBootScale, ScaleY: parameter.PanelBootScale}
	for i := 0; i < 5; i++ {
		for _, active := range []bool{false, true} {
			assert.Equal(t, want, TargetFor(engine.PhaseBooting, i, active, 3.3))
		}
	}
}

func TestTargetArrayed(t *testing.T) {
	got := TargetFor(engine.PhaseSteady, 2, false, 5.0)
	want := Transform{X: 2 * 0.9, Y: 0, Z: -2 * 1.6, ScaleX: 1, ScaleY: 1}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("steady target mismatch (-want +got):\n%s", diff)
	}
}

func TestActivePanelPulledForward(t *testing.T) {
	inactive := TargetFor(engine.PhaseSteady, 1, false, 6)
	active := TargetFor(engine.PhaseSteady, 1, true, 6)

	assert.InDelta(t, -1.6, inactive.Z, 1e-12)
	assert.InDelta(t, -2.0, active.Z, 1e-12)
	assert.Less(t, active.Z, inactive.Z)
	assert.InDelta(t, math.Sin(12)*0.05, active.Y, 1e-12, "active panel bobs")
	assert.Zero(t, inactive.Y)
}

func TestPanelMorphsAfterBoot(t *testing.T) {
	l := NewLayout(parameter.PanelCount)
	tm := 0.0
	for ; tm < 5.0; tm += frameDt {
		l.Update(engine.PhaseBooting, 0, engine.SamplePulses(tm), frameDt)
	}

	// First steady frame: panel 2 heads toward its arrayed slot
	l.Update(engine.PhaseSteady, 0, engine.SamplePulses(tm), frameDt)
	p := l.Panels()[2]
	assert.InDelta(t, 1.8, p.Target.X, 1e-12)
	assert.InDelta(t, -3.2, p.Target.Z, 1e-12)
	assert.Equal(t, 1.0, p.Target.ScaleX)
	assert.Greater(t, p.Current.X, 0.0)
	assert.Less(t, p.Current.X, 1.8)
	assert.Less(t, p.Current.Z, 0.0)
}

func TestSmoothingConvergesWithoutOscillation(t *testing.T) {
	l := NewLayout(parameter.PanelCount)
	p := engine.SamplePulses(10)

	prevGap := math.Inf(1)
	for frame := 0; frame < 3000; frame++ {
		l.Update(engine.PhaseSteady, 4, p, frameDt)
		s := l.Panels()[3]
		gap := math.Abs(s.Target.X-s.Current.X) + math.Abs(s.Target.Z-s.Current.Z) +
			math.Abs(s.Target.ScaleX-s.Current.ScaleX) + math.Abs(s.Target.ScaleY-s.Current.ScaleY)
		require.LessOrEqual(t, gap, prevGap, "frame %d gap grew", frame)
		prevGap = gap
	}

	s := l.Panels()[3]
	if diff := cmp.Diff(s.Target, s.Current, approx); diff != "" {
		t.Errorf("did not converge (-target +current):\n%s", diff)
	}

	// Stays there
	for frame := 0; frame < 100; frame++ {
		l.Update(engine.PhaseSteady, 4, p, frameDt)
	}
	assert.Empty(t, cmp.Diff(s.Target, l.Panels()[3].Current, approx))
}

func TestEdgeAndInnerGlow(t *testing.T) {
	for _, tm := range []float64{0.1, 1.7, 4.2, 9.9} {
		p := engine.SamplePulses(tm)
		edge := math.Sin(tm * 6)
		inner := math.Abs(math.Sin(tm * 12))

		assert.InDelta(t, 0.5+edge*0.4, EdgeOpacity(engine.PhaseBooting, false, p), 1e-12)
		assert.InDelta(t, 0.5+edge*0.4, EdgeOpacity(engine.PhaseBooting, true, p), 1e-12)
		assert.InDelta(t, 0.6+edge*0.2, EdgeOpacity(engine.PhaseSteady, true, p), 1e-12)
		assert.Equal(t, 0.25, EdgeOpacity(engine.PhaseSteady, false, p))

		assert.InDelta(t, 0.3+inner*0.5, InnerGlowOpacity(engine.PhaseBooting, false, p), 1e-12)
		assert.GreaterOrEqual(t, InnerGlowOpacity(engine.PhaseBooting, false, p), 0.3)
		assert.Equal(t, 0.1, InnerGlowOpacity(engine.PhaseSteady, true, p))
		assert.Zero(t, InnerGlowOpacity(engine.PhaseSteady, false, p))
	}
}

func TestUpdateMarksActiveAndTint(t *testing.T) {
	l := NewLayout(3)
	l.Update(engine.PhaseSteady, 1, engine.SamplePulses(6), frameDt)

	panels := l.Panels()
	assert.False(t, panels[0].Active)
	assert.True(t, panels[1].Active)
	assert.Equal(t, tintActive, panels[1].Tint)
	assert.Equal(t, tintInactive, panels[2].Tint)
}

func TestWorldCorners(t *testing.T) {
	tr := Transform{X: 1, Z: -2, ScaleX: 1, ScaleY: 1}
	corners := WorldCorners(tr)

	center := vmath.V3FScale(vmath.V3FAdd(corners[0], corners[2]), 0.5)
	assert.InDelta(t, parameter.PanelGroupOffsetX+1, center.X, 1e-12)
	assert.InDelta(t, -2, center.Z, 1e-12)

	width := vmath.V3FDist(corners[0], corners[1])
	height := vmath.V3FDist(corners[1], corners[2])
	assert.InDelta(t, parameter.PanelWidth, width, 1e-12)
	assert.InDelta(t, parameter.PanelHeight, height, 1e-12)
}
