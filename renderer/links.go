package renderer

import (
	"image/color"

	"github.com/pthm-cable/plexus/systems"
)

// LinkRenderer strokes proximity links with distance-faded opacity.
type LinkRenderer struct {
	color color.NRGBA
	width float32
}

// NewLinkRenderer creates a renderer for links of the given colour and stroke width.
func NewLinkRenderer(c color.NRGBA, width float32) *LinkRenderer {
	return &LinkRenderer{color: c, width: width}
}

// Draw strokes every link between its two particles.
func (r *LinkRenderer) Draw(s Surface, particles []systems.Particle, links []systems.Link) {
	for _, l := range links {
		a, b := &particles[l.I], &particles[l.J]
		c := r.color
		c.A = alpha8(l.Opacity)
		s.StrokeLine(a.X, a.Y, b.X, b.Y, r.width, c)
	}
}
