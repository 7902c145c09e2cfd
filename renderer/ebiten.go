package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws into an ebiten screen image.
// Target is swapped in by the host before each frame.
type EbitenSurface struct {
	Target     *ebiten.Image
	background color.NRGBA
}

// NewEbitenSurface creates a surface that clears to background.
func NewEbitenSurface(background color.NRGBA) *EbitenSurface {
	return &EbitenSurface{background: background}
}

// Clear fills the target with the background colour.
func (s *EbitenSurface) Clear() {
	if s.Target == nil {
		return
	}
	s.Target.Fill(s.background)
}

// FillCircle draws an anti-aliased filled disc.
func (s *EbitenSurface) FillCircle(x, y, radius float32, c color.NRGBA) {
	if s.Target == nil {
		return
	}
	vector.DrawFilledCircle(s.Target, x, y, radius, c, true)
}

// StrokeLine draws an anti-aliased line segment.
func (s *EbitenSurface) StrokeLine(x1, y1, x2, y2, width float32, c color.NRGBA) {
	if s.Target == nil {
		return
	}
	vector.StrokeLine(s.Target, x1, y1, x2, y2, width, c, true)
}

// Size returns the target size, or zero before the first frame.
func (s *EbitenSurface) Size() (width, height int) {
	if s.Target == nil {
		return 0, 0
	}
	b := s.Target.Bounds()
	return b.Dx(), b.Dy()
}
