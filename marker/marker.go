// Package marker animates the floor beacons that mirror panel focus
package marker

import (
	"github.com/lixenwraith/aether-stage/engine"
	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/vmath"
)

// NoPanel marks a beacon not linked to any panel
const NoPanel = -1

// State is one marker as the renderer sees it
type State struct {
	Label    string
	Panel    int
	Position vmath.Vec3F

	Active  bool
	Hovered bool

	Scale    float64
	Rotation float64

	BeamVisible bool
	BeamOpacity float64
}

// Lit reports whether the marker is highlighted
func (s State) Lit() bool {
	return s.Active || s.Hovered
}

// Set holds the fixed marker layout
type Set struct {
	markers []State
}

func NewSet() *Set {
	s := &Set{markers: make([]State, len(parameter.MarkerLayout))}
	for i, m := range parameter.MarkerLayout {
		s.markers[i] = State{
			Label:    m.Label,
			Panel:    m.Panel,
			Position: vmath.V3F(m.X, parameter.MarkerGroupY, m.Z),
			Scale:    parameter.MarkerScaleIdle,
		}
	}
	return s
}

// Update applies focus and hover, smooths scale and pulses lit beams on the base harmonic
func (s *Set) Update(activePanel, hovered int, p engine.Pulses, dt float64) {
	spin := parameter.MarkerSpin * dt * vmath.ReferenceFPS

	for i := range s.markers {
		m := &s.markers[i]
		m.Active = m.Panel != NoPanel && m.Panel == activePanel
		m.Hovered = i == hovered

		goal := parameter.MarkerScaleIdle
		if m.Lit() {
			goal = parameter.MarkerScaleLit
		}
		m.Scale = vmath.Damp(m.Scale, goal, parameter.MarkerScaleRate, dt)
		m.Rotation += spin

		m.BeamVisible = m.Lit()
		if !m.BeamVisible {
			m.BeamOpacity = 0
			continue
		}
		base := parameter.MarkerBeamHovered
		if m.Active {
			base = parameter.MarkerBeamActive
		}
		m.BeamOpacity = base + p.Base*parameter.MarkerBeamAmplitude
	}
}

// Panel returns the panel linked to marker i
func (s *Set) Panel(i int) (int, bool) {
	return LinkedPanel(i)
}

// LinkedPanel reads the fixed layout, so it is safe from any goroutine
func LinkedPanel(i int) (int, bool) {
	if i < 0 || i >= len(parameter.MarkerLayout) || parameter.MarkerLayout[i].Panel == NoPanel {
		return 0, false
	}
	return parameter.MarkerLayout[i].Panel, true
}

// Count is the number of markers in the fixed layout
func Count() int {
	return len(parameter.MarkerLayout)
}

// Markers returns the live states, valid until the next Update
func (s *Set) Markers() []State {
	return s.markers
}

func (s *Set) Len() int {
	return len(s.markers)
}
