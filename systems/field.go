// Package systems contains the particle field simulation: population,
// motion and the proximity graph between particles.
package systems

import "math/rand"

// Particle is a single drifting point.
// Radius and Alpha are fixed at creation.
type Particle struct {
	X, Y   float32
	VX, VY float32
	Radius float32
	Alpha  float32
}

// FieldParams holds the generation ranges for new particles.
type FieldParams struct {
	MaxSpeed  float32 // velocity components drawn from [-MaxSpeed, MaxSpeed)
	RadiusMin float32
	RadiusMax float32
	AlphaMin  float32
	AlphaMax  float32
}

// DefaultFieldParams returns the stock ranges: slow drift, small faint discs.
func DefaultFieldParams() FieldParams {
	return FieldParams{
		MaxSpeed:  0.25,
		RadiusMin: 1,
		RadiusMax: 3,
		AlphaMin:  0.2,
		AlphaMax:  0.7,
	}
}

// Field owns the particle population and the surface bounds it lives in.
type Field struct {
	params    FieldParams
	rng       *rand.Rand
	particles []Particle
	width     float32
	height    float32
}

// NewField creates an empty field drawing from rng.
func NewField(rng *rand.Rand, params FieldParams) *Field {
	return &Field{
		params: params,
		rng:    rng,
	}
}

// Init discards every particle and populates n fresh ones inside [0,width]x[0,height].
func (f *Field) Init(width, height float32, n int) {
	if n < 0 {
		n = 0
	}
	f.width = width
	f.height = height

	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = f.spawn()
	}
	f.particles = particles
}

// spawn draws one particle from the configured ranges.
func (f *Field) spawn() Particle {
	p := f.params
	return Particle{
		X:      f.rng.Float32() * f.width,
		Y:      f.rng.Float32() * f.height,
		VX:     (f.rng.Float32()*2 - 1) * p.MaxSpeed,
		VY:     (f.rng.Float32()*2 - 1) * p.MaxSpeed,
		Radius: p.RadiusMin + f.rng.Float32()*(p.RadiusMax-p.RadiusMin),
		Alpha:  p.AlphaMin + f.rng.Float32()*(p.AlphaMax-p.AlphaMin),
	}
}

// SetParams changes the ranges used by the next Init.
func (f *Field) SetParams(params FieldParams) {
	f.params = params
}

// Params returns the current generation ranges.
func (f *Field) Params() FieldParams {
	return f.params
}

// Len returns the number of particles.
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles returns the backing slice. Callers outside the simulation must
// treat it as read-only.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Bounds returns the surface size the field was initialized with.
func (f *Field) Bounds() (width, height float32) {
	return f.width, f.height
}
