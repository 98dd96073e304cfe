// Package panel computes glass panel transforms and glow from boot phase and focus
//
// Each panel has an implicit state from (phase, active):
//   - Compressed (booting): every panel targets the origin at near-zero scale
//   - Arrayed (steady): panels fan out along +X and -Z, the active one pulled forward
//
// Current transforms are always smoothed toward the target, which produces the
// morph between states instead of a snap.
package panel

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/lixenwraith/aether-stage/engine"
	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/vmath"
)

// Transform is the panel-local placement; Z scale is fixed by the mesh
type Transform struct {
	X, Y, Z        float64
	ScaleX, ScaleY float64
}

// Position returns the translation part as a vector
func (t Transform) Position() vmath.Vec3F {
	return vmath.V3F(t.X, t.Y, t.Z)
}

// State is one panel as the renderer sees it
type State struct {
	Index            int
	Active           bool
	Current          Transform
	Target           Transform
	EdgeOpacity      float64
	InnerGlowOpacity float64
	Tint             colorful.Color
}

var (
	tintActive   = vmath.MustHex(parameter.PanelTintActive)
	tintInactive = vmath.MustHex(parameter.PanelTintInactive)
)

// Layout owns every panel's state, each panel is written only by its own update
type Layout struct {
	panels []State
}

// NewLayout creates count panels already collapsed into the boot singularity
func NewLayout(count int) *Layout {
	if count < 0 {
		count = 0
	}
	l := &Layout{panels: make([]State, count)}
	for i := range l.panels {
		collapsed := TargetFor(engine.PhaseBooting, i, false, 0)
		l.panels[i] = State{
			Index:   i,
			Current: collapsed,
			Target:  collapsed,
			Tint:    tintInactive,
		}
	}
	return l
}

// TargetFor returns the transform a panel is smoothing toward
func TargetFor(phase engine.BootPhase, index int, active bool, t float64) Transform {
	if phase.IsBooting() {
		return Transform{
			ScaleX: parameter.PanelBootScale,
			ScaleY: parameter.PanelBootScale,
		}
	}
	return Transform{
		X:      float64(index) * parameter.PanelSpacingX,
		Y:      BobOffset(active, t),
		Z:      -float64(index) * Depth(active),
		ScaleX: 1,
		ScaleY: 1,
	}
}

// Depth is the per-index Z spacing, larger for the focused panel
func Depth(active bool) float64 {
	if active {
		return parameter.PanelDepthActive
	}
	return parameter.PanelDepthInactive
}

// BobOffset is the small vertical bob applied only to the active panel
func BobOffset(active bool, t float64) float64 {
	if !active {
		return 0
	}
	return math.Sin(t*parameter.PanelBobFreq) * parameter.PanelBobAmplitude
}

// EdgeOpacity is the primary red edge: dramatic flicker while booting,
// moderate pulse on the active panel, fixed dim otherwise
func EdgeOpacity(phase engine.BootPhase, active bool, p engine.Pulses) float64 {
	switch {
	case phase.IsBooting():
		return parameter.PanelEdgeBootBase + p.Edge*parameter.PanelEdgeBootAmplitude
	case active:
		return parameter.PanelEdgeActiveBase + p.Edge*parameter.PanelEdgeActiveAmplitude
	default:
		return parameter.PanelEdgeInactive
	}
}

// InnerGlowOpacity is the white "electricity" edge, only animated during boot
func InnerGlowOpacity(phase engine.BootPhase, active bool, p engine.Pulses) float64 {
	switch {
	case phase.IsBooting():
		return parameter.PanelInnerBootBase + p.Inner*parameter.PanelInnerBootAmplitude
	case active:
		return parameter.PanelInnerActive
	default:
		return parameter.PanelInnerInactive
	}
}

// Update smooths every panel toward its target for this frame
func (l *Layout) Update(phase engine.BootPhase, activeIndex int, p engine.Pulses, dt float64) {
	posRate := parameter.PanelPositionRateSteady
	if phase.IsBooting() {
		posRate = parameter.PanelPositionRateBooting
	}

	for i := range l.panels {
		s := &l.panels[i]
		s.Active = i == activeIndex
		s.Target = TargetFor(phase, i, s.Active, p.Time)

		s.Current.X = vmath.Damp(s.Current.X, s.Target.X, posRate, dt)
		s.Current.Z = vmath.Damp(s.Current.Z, s.Target.Z, posRate, dt)
		s.Current.Y = vmath.Damp(s.Current.Y, s.Target.Y, parameter.PanelBobRate, dt)
		s.Current.ScaleX = vmath.Damp(s.Current.ScaleX, s.Target.ScaleX, parameter.PanelScaleRate, dt)
		s.Current.ScaleY = vmath.Damp(s.Current.ScaleY, s.Target.ScaleY, parameter.PanelScaleRate, dt)

		s.EdgeOpacity = EdgeOpacity(phase, s.Active, p)
		s.InnerGlowOpacity = InnerGlowOpacity(phase, s.Active, p)

		if s.Active {
			s.Tint = tintActive
		} else {
			s.Tint = tintInactive
		}
	}
}

// Panels returns the live panel states, valid until the next Update
func (l *Layout) Panels() []State {
	return l.panels
}

// Len returns the fixed panel count
func (l *Layout) Len() int {
	return len(l.panels)
}

// GroupOffset is the stage placement of the whole panel group
func GroupOffset() vmath.Vec3F {
	return vmath.V3F(parameter.PanelGroupOffsetX, 0, 0)
}

// WorldCorners returns the four panel corners in stage space, applying the group
// offset and yaw; order is top-left, top-right, bottom-right, bottom-left
func WorldCorners(t Transform) [4]vmath.Vec3F {
	hw := parameter.PanelWidth / 2 * t.ScaleX
	hh := parameter.PanelHeight / 2 * t.ScaleY
	local := [4]vmath.Vec3F{
		{X: -hw, Y: hh}, {X: hw, Y: hh}, {X: hw, Y: -hh}, {X: -hw, Y: -hh},
	}

	sinY, cosY := math.Sincos(parameter.PanelGroupYaw)
	offset := vmath.V3FAdd(GroupOffset(), t.Position())

	var out [4]vmath.Vec3F
	for i, c := range local {
		// Yaw about the panel's own origin, then place in the group
		rotated := vmath.V3F(c.X*cosY+c.Z*sinY, c.Y, -c.X*sinY+c.Z*cosY)
		out[i] = vmath.V3FAdd(rotated, offset)
	}
	return out
}

// WorldCenter is the panel origin in stage space
func WorldCenter(t Transform) vmath.Vec3F {
	return vmath.V3FAdd(GroupOffset(), t.Position())
}
