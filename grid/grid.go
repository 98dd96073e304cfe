// Package grid animates the floor grid independently of the panels
package grid

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/lixenwraith/aether-stage/engine"
	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/vmath"
)

// State is the grid render output for one frame
type State struct {
	Position     vmath.Vec3F
	Size         float64
	FadeDistance float64

	Opacity float64
	// Heat is 1 while booting and decays toward 0 in steady state
	Heat float64

	CellColor        colorful.Color
	SectionColor     colorful.Color
	CellThickness    float64
	SectionThickness float64
}

var (
	cellHot     = vmath.MustHex(parameter.GridCellColorHot)
	cellCool    = vmath.MustHex(parameter.GridCellColorCool)
	sectionTint = vmath.MustHex(parameter.GridSectionColor)
)

// Layer owns the smoothed opacity and heat of the floor grid
type Layer struct {
	opacity float64
	heat    float64
}

func NewLayer() *Layer {
	return &Layer{
		opacity: parameter.GridOpacityBootBase,
		heat:    1,
	}
}

// Update oscillates on the edge pulse while booting and decays one-way afterward
func (l *Layer) Update(phase engine.BootPhase, p engine.Pulses, dt float64) State {
	if phase.IsBooting() {
		l.opacity = parameter.GridOpacityBootBase + p.Edge*parameter.GridOpacityBootAmplitude
		l.heat = 1
	} else {
		l.opacity = vmath.Damp(l.opacity, parameter.GridOpacitySteady, parameter.GridDecayRate, dt)
		l.heat = vmath.Damp(l.heat, 0, parameter.GridDecayRate, dt)
	}
	return l.State()
}

// State derives colors and line weights from the current heat
func (l *Layer) State() State {
	return State{
		Position:         vmath.V3F(parameter.GridX, parameter.GridY, parameter.GridZ),
		Size:             parameter.GridSize,
		FadeDistance:     parameter.GridFadeDistance,
		Opacity:          l.opacity,
		Heat:             l.heat,
		CellColor:        cellCool.BlendLab(cellHot, l.heat).Clamped(),
		SectionColor:     sectionTint,
		CellThickness:    vmath.Lerp(parameter.GridCellThickCool, parameter.GridCellThickHot, l.heat),
		SectionThickness: vmath.Lerp(parameter.GridSectionThickCool, parameter.GridSectionThickHot, l.heat),
	}
}
