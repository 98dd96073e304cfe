// Package particle simulates fixed-capacity point fields that flow along one axis
// and wrap around at a recycle threshold
package particle

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/aether-stage/vmath"
)

// ErrInvalidConfig is returned by NewField for configs that could not keep the
// recycle invariant
var ErrInvalidConfig = errors.New("invalid particle field config")

// Config describes one field; sparks and photons differ only in these values
type Config struct {
	Name  string
	Count int

	// Spawn volume, every axis sampled uniformly in [SpawnMin, SpawnMax)
	SpawnMin, SpawnMax vmath.Vec3F

	// Primary flow axis and sign (-1 or +1)
	Axis      vmath.Axis
	Direction float64

	// Speed sampled once per particle at spawn/recycle: SpeedMin + rand*SpeedRange
	SpeedMin, SpeedRange float64

	// Threshold on the primary axis; crossing it in Direction recycles the particle
	Threshold float64

	// Replenishment band on the primary axis for recycled particles
	RespawnMin, RespawnMax float64

	// RerollAxes are re-randomized inside the spawn volume on recycle
	RerollAxes []vmath.Axis

	// Lateral jitter, JitterRate units/sec at full jitter amplitude
	JitterAxes []vmath.Axis
	JitterRate float64

	// Material
	Size  float64
	Color string
}

// Validate checks the config against the recycle invariant
func (c Config) Validate() error {
	var errs []error
	if c.Count <= 0 {
		errs = append(errs, fmt.Errorf("count %d must be positive", c.Count))
	}
	if c.Direction != -1 && c.Direction != 1 {
		errs = append(errs, fmt.Errorf("direction %v must be -1 or 1", c.Direction))
	}
	if c.SpeedMin < 0 || c.SpeedRange < 0 {
		errs = append(errs, fmt.Errorf("speed range [%v,+%v] must be non-negative", c.SpeedMin, c.SpeedRange))
	}
	if c.RespawnMin > c.RespawnMax {
		errs = append(errs, fmt.Errorf("respawn band [%v,%v] is inverted", c.RespawnMin, c.RespawnMax))
	}
	// Respawned particles must land on the live side of the threshold
	if c.Direction < 0 && c.RespawnMin < c.Threshold {
		errs = append(errs, fmt.Errorf("respawn band starts at %v below threshold %v", c.RespawnMin, c.Threshold))
	}
	if c.Direction > 0 && c.RespawnMax > c.Threshold {
		errs = append(errs, fmt.Errorf("respawn band ends at %v above threshold %v", c.RespawnMax, c.Threshold))
	}
	if c.Direction < 0 && c.SpawnMin.Get(c.Axis) < c.Threshold {
		errs = append(errs, fmt.Errorf("spawn volume starts beyond threshold %v", c.Threshold))
	}
	if c.Direction > 0 && c.SpawnMax.Get(c.Axis) > c.Threshold {
		errs = append(errs, fmt.Errorf("spawn volume ends beyond threshold %v", c.Threshold))
	}
	for _, axis := range []vmath.Axis{vmath.AxisX, vmath.AxisY, vmath.AxisZ} {
		if c.SpawnMin.Get(axis) > c.SpawnMax.Get(axis) {
			errs = append(errs, fmt.Errorf("spawn volume inverted on %s", axis))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidConfig, c.Name, errors.Join(errs...))
	}
	return nil
}

// Material is the field-wide render state, shared by all particles
type Material struct {
	Opacity float64
	Size    float64
	Color   string
	Visible bool
}

// Snapshot is the per-frame output of a field
// Positions aliases the field buffer and is valid until the next Advance
type Snapshot struct {
	Name      string
	Positions []vmath.Vec3F
	Material
}

// Field owns a fixed slot arena of particles
// Slots are never grown, shrunk or reallocated after construction
type Field struct {
	cfg    Config
	pos    []vmath.Vec3F
	speed  []float64
	rng    *vmath.FastRand
	jitter Jitter
	time   float64

	material Material
}

// NewField allocates Count slots and spawns every particle inside the spawn volume
// jitter may be nil, in which case uniform jitter from the field's own generator is used
func NewField(cfg Config, seed uint64, jitter Jitter) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := vmath.NewFastRand(seed)
	if jitter == nil {
		jitter = NewUniformJitter(rng)
	}

	f := &Field{
		cfg:    cfg,
		pos:    make([]vmath.Vec3F, cfg.Count),
		speed:  make([]float64, cfg.Count),
		rng:    rng,
		jitter: jitter,
		material: Material{
			Opacity: 1,
			Size:    cfg.Size,
			Color:   cfg.Color,
			Visible: true,
		},
	}

	for i := range f.pos {
		f.spawn(i)
	}
	return f, nil
}

// Advance moves every particle by its velocity plus lateral jitter and recycles
// those that crossed the threshold. Non-positive dt is a no-op.
func (f *Field) Advance(dt float64) {
	if !(dt > 0) {
		return
	}
	f.time += dt

	cfg := &f.cfg
	for i := range f.pos {
		p := &f.pos[i]

		coord := p.Get(cfg.Axis) + cfg.Direction*f.speed[i]*dt
		p.Set(cfg.Axis, coord)

		for _, axis := range cfg.JitterAxes {
			off := f.jitter.Offset(i, axis, *p, f.time)
			p.Set(axis, p.Get(axis)+off*cfg.JitterRate*dt)
		}

		if f.crossed(coord) {
			f.recycle(i)
		}
	}
}

func (f *Field) crossed(coord float64) bool {
	if f.cfg.Direction < 0 {
		return coord < f.cfg.Threshold
	}
	return coord > f.cfg.Threshold
}

func (f *Field) spawn(i int) {
	p := &f.pos[i]
	for _, axis := range []vmath.Axis{vmath.AxisX, vmath.AxisY, vmath.AxisZ} {
		p.Set(axis, f.rng.Range(f.cfg.SpawnMin.Get(axis), f.cfg.SpawnMax.Get(axis)))
	}
	f.speed[i] = f.sampleSpeed()
}

// recycle wraps a slot back to the replenishment boundary in place
func (f *Field) recycle(i int) {
	p := &f.pos[i]
	p.Set(f.cfg.Axis, f.rng.Range(f.cfg.RespawnMin, f.cfg.RespawnMax))
	for _, axis := range f.cfg.RerollAxes {
		p.Set(axis, f.rng.Range(f.cfg.SpawnMin.Get(axis), f.cfg.SpawnMax.Get(axis)))
	}
	f.speed[i] = f.sampleSpeed()
}

func (f *Field) sampleSpeed() float64 {
	return f.cfg.SpeedMin + f.rng.Float64()*f.cfg.SpeedRange
}

// Len returns the fixed slot count
func (f *Field) Len() int {
	return len(f.pos)
}

// Positions returns the live slot buffer, callers must not retain it across frames
func (f *Field) Positions() []vmath.Vec3F {
	return f.pos
}

// Speed returns the sampled speed of a slot
func (f *Field) Speed(i int) float64 {
	return f.speed[i]
}

// Config returns the field configuration
func (f *Field) Config() Config {
	return f.cfg
}

// SetOpacity sets the material opacity, clamped to [0,1]
func (f *Field) SetOpacity(o float64) {
	f.material.Opacity = vmath.Clamp01(o)
}

// SetVisible toggles whether the field is rendered
func (f *Field) SetVisible(v bool) {
	f.material.Visible = v
}

// Material returns the field-wide render state
func (f *Field) Material() Material {
	return f.material
}

// Snapshot returns this frame's output without copying positions
func (f *Field) Snapshot() Snapshot {
	return Snapshot{
		Name:      f.cfg.Name,
		Positions: f.pos,
		Material:  f.material,
	}
}
