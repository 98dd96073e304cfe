// Package render draws stage frames into a tcell screen
package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/aether-stage/marker"
	"github.com/lixenwraith/aether-stage/panel"
	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/particle"
	"github.com/lixenwraith/aether-stage/stage"
	"github.com/lixenwraith/aether-stage/vmath"
)

var (
	background = colorful.Color{}
	edgeColor  = vmath.MustHex(parameter.PanelEdgeColor)
	innerColor = vmath.MustHex(parameter.PanelInnerColor)
	hudColor   = colorful.Color{R: 0.55, G: 0.55, B: 0.6}
)

// Renderer draws frames onto a screen it does not own
type Renderer struct {
	screen tcell.Screen
	is256  bool
	order  []int
}

// NewRenderer draws into screen; is256 snaps colors to the xterm palette
func NewRenderer(screen tcell.Screen, is256 bool) *Renderer {
	return &Renderer{screen: screen, is256: is256}
}

// Draw renders one frame in painter's order and shows it
func (r *Renderer) Draw(f *stage.Frame) {
	r.screen.Clear()
	w, h := r.screen.Size()
	viewH := h - parameter.HUDRows
	if w <= 0 || viewH <= 0 {
		r.screen.Show()
		return
	}

	proj := NewProjector(f.Camera.Pose, f.Camera.FOV, w, viewH)

	r.drawGrid(proj, f)
	r.drawParticles(proj, f.Photons, '.')
	r.drawPanels(proj, f.Panels)
	if f.Sparks.Visible {
		r.drawParticles(proj, f.Sparks, '\'')
	}
	r.drawMarkers(proj, f.Markers)
	r.drawHUD(f, w, h)

	r.screen.Show()
}

func (r *Renderer) drawGrid(proj *Projector, f *stage.Frame) {
	g := f.Grid
	half := g.Size / 2
	eye := f.Camera.Pose.Position

	for off := -half; off <= half; off += parameter.GridLineSpacing {
		// Lines parallel to Z at x = off, then parallel to X at z = off
		for s := -half; s <= half; s += parameter.GridLineStep {
			for _, p := range [2]vmath.Vec3F{
				vmath.V3F(g.Position.X+off, g.Position.Y, g.Position.Z+s),
				vmath.V3F(g.Position.X+s, g.Position.Y, g.Position.Z+off),
			} {
				fade := 1 - vmath.Clamp01(vmath.V3FDist(p, eye)/g.FadeDistance)
				if fade <= 0 {
					continue
				}
				cx, cy, _, ok := proj.ProjectCell(p)
				if !ok {
					continue
				}
				c := g.CellColor
				if math.Mod(off, 2*parameter.GridLineSpacing) == 0 {
					c = g.SectionColor
				}
				r.plot(cx, cy, '·', c, g.Opacity*fade)
			}
		}
	}
}

func (r *Renderer) drawParticles(proj *Projector, snap particle.Snapshot, glyph rune) {
	if !snap.Visible {
		return
	}
	c, err := colorful.Hex(snap.Color)
	if err != nil {
		return
	}
	for _, p := range snap.Positions {
		if cx, cy, _, ok := proj.ProjectCell(p); ok {
			r.plot(cx, cy, glyph, c, snap.Opacity)
		}
	}
}

// drawPanels draws far panels first so the active one overwrites them
func (r *Renderer) drawPanels(proj *Projector, panels []panel.State) {
	r.order = r.order[:0]
	for i := range panels {
		r.order = append(r.order, i)
	}
	depth := func(i int) float64 {
		_, _, d, _ := proj.Project(panel.WorldCenter(panels[i].Current))
		return d
	}
	sort.SliceStable(r.order, func(a, b int) bool {
		return depth(r.order[a]) > depth(r.order[b])
	})

	for _, i := range r.order {
		ps := panels[i]
		corners := panel.WorldCorners(ps.Current)

		var pts [4][2]float64
		visible := true
		for k, c := range corners {
			x, y, _, ok := proj.Project(c)
			if !ok {
				visible = false
				break
			}
			pts[k] = [2]float64{x, y}
		}
		if !visible {
			continue
		}

		tint := ps.Tint
		for k := range pts {
			a, b := pts[k], pts[(k+1)%4]
			if x0, y0, x1, y1, ok := proj.ClipSegment(a[0], a[1], b[0], b[1]); ok {
				r.line(x0, y0, x1, y1, edgeColor, ps.EdgeOpacity)
			}
		}
		if cx, cy, _, ok := proj.ProjectCell(panel.WorldCenter(ps.Current)); ok {
			label := fmt.Sprintf("P%d", ps.Index+1)
			glow := innerColor.BlendRgb(tint, 1-ps.InnerGlowOpacity)
			r.text(cx-1, cy, label, glow, math.Max(ps.InnerGlowOpacity, ps.EdgeOpacity))
		}
	}
}

func (r *Renderer) drawMarkers(proj *Projector, markers []marker.State) {
	for _, m := range markers {
		glyph := '◇'
		if m.Lit() {
			glyph = '◆'
		}
		if cx, cy, _, ok := proj.ProjectCell(m.Position); ok {
			r.plot(cx, cy, glyph, edgeColor, 0.4+0.6*vmath.Clamp01((m.Scale-1)/0.3))
		}
		if !m.BeamVisible {
			continue
		}
		for k := 1; k <= parameter.MarkerBeamSamples; k++ {
			h := parameter.MarkerBeamHeight * float64(k) / parameter.MarkerBeamSamples
			p := vmath.V3FAdd(m.Position, vmath.V3F(0, h, 0))
			if cx, cy, _, ok := proj.ProjectCell(p); ok {
				r.plot(cx, cy, '│', edgeColor, m.BeamOpacity*8)
			}
		}
	}
}

func (r *Renderer) drawHUD(f *stage.Frame, w, h int) {
	status := fmt.Sprintf(" %-7s boot %3.0f%%  panel %d/%d  cam %s  t=%.1fs ",
		f.Phase, f.BootProgress*100, f.ActivePanel+1, len(f.Panels), f.Camera.Mode, f.Clock.Elapsed)
	r.text(0, h-1, status, hudColor, 1)

	hint := "1-5:panel  arrows:orbit  q:quit "
	if x := w - len(hint); x > len(status) {
		r.text(x, h-1, hint, hudColor, 0.6)
	}
}

// line draws a Bresenham segment
func (r *Renderer) line(x0, y0, x1, y1 int, c colorful.Color, opacity float64) {
	dx := x1 - x0
	dy := y1 - y0
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
	}
	if dy < 0 {
		stepY = -1
	}

	glyph := '─'
	switch {
	case absDx == 0 || absDy > 2*absDx:
		glyph = '│'
	case absDy*2 > absDx:
		if stepX == stepY {
			glyph = '╲'
		} else {
			glyph = '╱'
		}
	}

	err := absDx - absDy
	x, y := x0, y0
	for {
		r.plot(x, y, glyph, c, opacity)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -absDy {
			err -= absDy
			x += stepX
		}
		if e2 < absDx {
			err += absDx
			y += stepY
		}
	}
}

func (r *Renderer) text(x, y int, s string, c colorful.Color, opacity float64) {
	for _, ch := range s {
		r.put(x, y, ch, c, opacity)
		x++
	}
}

// plot thins faint glyphs to a dot
func (r *Renderer) plot(x, y int, ch rune, c colorful.Color, opacity float64) {
	if opacity < parameter.GlyphMedium && ch != '·' && ch != '.' {
		ch = '·'
	}
	r.put(x, y, ch, c, opacity)
}

// put blends c over the background by opacity; fully transparent cells are skipped
func (r *Renderer) put(x, y int, ch rune, c colorful.Color, opacity float64) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	opacity = vmath.Clamp01(opacity)
	if opacity <= 0 {
		return
	}
	style := tcell.StyleDefault.
		Foreground(r.color(background.BlendRgb(c, opacity))).
		Background(tcell.ColorBlack)
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) color(c colorful.Color) tcell.Color {
	cr, cg, cb := c.Clamped().RGB255()
	tc := tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
	if r.is256 {
		return tcell.FindColor(tc, palette256)
	}
	return tc
}

var palette256 = func() []tcell.Color {
	p := make([]tcell.Color, 0, 240)
	for i := 16; i < 256; i++ {
		p = append(p, tcell.PaletteColor(i))
	}
	return p
}()
