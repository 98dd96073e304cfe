package particle

import (
	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/vmath"
)

// Jitter produces a lateral offset in [-0.5, 0.5] for one particle axis
type Jitter interface {
	Offset(slot int, axis vmath.Axis, p vmath.Vec3F, t float64) float64
}

// UniformJitter draws independent uniform noise every frame
type UniformJitter struct {
	rng *vmath.FastRand
}

func NewUniformJitter(rng *vmath.FastRand) *UniformJitter {
	return &UniformJitter{rng: rng}
}

func (j *UniformJitter) Offset(int, vmath.Axis, vmath.Vec3F, float64) float64 {
	return j.rng.Signed()
}

// SimplexJitter samples a coherent 3D noise field so neighbouring particles drift together
type SimplexJitter struct {
	noise opensimplex.Noise
	scale float64
	speed float64
}

func NewSimplexJitter(seed int64) *SimplexJitter {
	return &SimplexJitter{
		noise: opensimplex.New(seed),
		scale: parameter.SimplexJitterScale,
		speed: parameter.SimplexJitterSpeed,
	}
}

func (j *SimplexJitter) Offset(slot int, axis vmath.Axis, p vmath.Vec3F, t float64) float64 {
	// Offset each axis into its own region of the field so X and Z wander independently
	lane := float64(axis) * 101.3
	v := j.noise.Eval3(p.X*j.scale+lane, p.Z*j.scale, t*j.speed+float64(slot%7)*0.37)
	return vmath.Clamp(v*0.5, -0.5, 0.5)
}

// JitterKind names a jitter source in configuration
type JitterKind string

const (
	JitterUniform JitterKind = "uniform"
	JitterSimplex JitterKind = "simplex"
)

// NewJitter builds the named jitter source, nil means the field's own uniform generator
func NewJitter(kind JitterKind, seed int64) Jitter {
	if kind == JitterSimplex {
		return NewSimplexJitter(seed)
	}
	return nil
}
