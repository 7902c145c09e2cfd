package renderer

import (
	"image/color"

	"github.com/pthm-cable/plexus/systems"
)

// ParticleRenderer draws particles as filled discs.
type ParticleRenderer struct {
	color color.NRGBA
}

// NewParticleRenderer creates a renderer for the given particle colour.
// The colour's alpha is replaced by each particle's own alpha.
func NewParticleRenderer(c color.NRGBA) *ParticleRenderer {
	return &ParticleRenderer{color: c}
}

// Draw renders all particles.
func (r *ParticleRenderer) Draw(s Surface, particles []systems.Particle) {
	for i := range particles {
		p := &particles[i]
		c := r.color
		c.A = alpha8(p.Alpha)
		s.FillCircle(p.X, p.Y, p.Radius, c)
	}
}
