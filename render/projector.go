package render

import (
	"math"

	"github.com/lixenwraith/aether-stage/camera"
	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/vmath"
)

var worldUp = vmath.V3F(0, 1, 0)

// Projector maps world points to terminal cells for one camera pose
// The vertical field of view spans the screen height; cells are CellAspect times taller than wide
type Projector struct {
	eye                vmath.Vec3F
	forward, right, up vmath.Vec3F
	focal              float64

	width, height int
}

// NewProjector builds a look-at basis, fov is vertical in degrees
func NewProjector(pose camera.Pose, fovDeg float64, width, height int) *Projector {
	forward := vmath.V3FNormalize(vmath.V3FSub(pose.Target, pose.Position))
	right := vmath.V3FNormalize(vmath.V3FCross(forward, worldUp))
	up := vmath.V3FCross(right, forward)

	half := fovDeg * math.Pi / 360
	focal := 1.0
	if half > 0 && half < math.Pi/2 {
		focal = 1 / math.Tan(half)
	}

	return &Projector{
		eye:     pose.Position,
		forward: forward,
		right:   right,
		up:      up,
		focal:   focal,
		width:   width,
		height:  height,
	}
}

// Project returns the cell coordinates and view depth of v
// ok is false for points behind the near plane
func (p *Projector) Project(v vmath.Vec3F) (x, y, depth float64, ok bool) {
	d := vmath.V3FSub(v, p.eye)
	depth = vmath.V3FDot(d, p.forward)
	if depth < parameter.NearPlane {
		return 0, 0, depth, false
	}

	nx := vmath.V3FDot(d, p.right) / depth * p.focal
	ny := vmath.V3FDot(d, p.up) / depth * p.focal

	halfH := float64(p.height) / 2
	x = float64(p.width)/2 + nx*halfH*parameter.CellAspect
	y = halfH - ny*halfH
	return x, y, depth, true
}

// ProjectCell rounds Project to a cell and reports whether it lands on screen
func (p *Projector) ProjectCell(v vmath.Vec3F) (cx, cy int, depth float64, ok bool) {
	x, y, depth, ok := p.Project(v)
	if !ok {
		return 0, 0, depth, false
	}
	cx, cy = int(math.Floor(x)), int(math.Floor(y))
	return cx, cy, depth, p.InBounds(cx, cy)
}

// InBounds reports whether a cell is inside the view
func (p *Projector) InBounds(cx, cy int) bool {
	return cx >= 0 && cx < p.width && cy >= 0 && cy < p.height
}

// ClipSegment clips a projected segment to the view rectangle (Liang-Barsky)
// and returns cell endpoints, ok is false when nothing of it is on screen
func (p *Projector) ClipSegment(x0, y0, x1, y1 float64) (ax, ay, bx, by int, ok bool) {
	for _, v := range [4]float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	if p.width <= 0 || p.height <= 0 {
		return 0, 0, 0, 0, false
	}

	xmax, ymax := float64(p.width-1), float64(p.height-1)
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, xmax - x0},
		{-dy, y0},
		{dy, ymax - y0},
	}
	for _, e := range edges {
		pe, qe := e[0], e[1]
		if pe == 0 {
			if qe < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := qe / pe
		if pe < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}

	cell := func(v, hi float64) int {
		return int(math.Floor(vmath.Clamp(v, 0, hi)))
	}
	ax, ay = cell(x0+t0*dx, xmax), cell(y0+t0*dy, ymax)
	bx, by = cell(x0+t1*dx, xmax), cell(y0+t1*dy, ymax)
	return ax, ay, bx, by, true
}
