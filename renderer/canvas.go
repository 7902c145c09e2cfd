package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"
)

// CanvasSurface is an offscreen software canvas, used in headless mode.
type CanvasSurface struct {
	backend    *softwarebackend.SoftwareBackend
	cv         *canvas.Canvas
	width      int
	height     int
	background color.NRGBA
}

// NewCanvasSurface creates an offscreen surface of the given size.
func NewCanvasSurface(width, height int, background color.NRGBA) *CanvasSurface {
	s := &CanvasSurface{background: background}
	s.Resize(width, height)
	return s
}

// Resize replaces the backing image; previous pixels are dropped.
func (s *CanvasSurface) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	// The software backend needs at least one pixel
	s.backend = softwarebackend.New(max(s.width, 1), max(s.height, 1))
	s.cv = canvas.New(s.backend)
}

// Clear wipes the canvas and paints the background.
func (s *CanvasSurface) Clear() {
	w, h := float64(s.width), float64(s.height)
	s.cv.ClearRect(0, 0, w, h)
	if s.background.A > 0 {
		s.cv.SetFillStyle(s.background)
		s.cv.FillRect(0, 0, w, h)
	}
}

// FillCircle draws a filled disc.
func (s *CanvasSurface) FillCircle(x, y, radius float32, c color.NRGBA) {
	s.cv.BeginPath()
	s.cv.Arc(float64(x), float64(y), float64(radius), 0, 2*math.Pi, false)
	s.cv.SetFillStyle(c)
	s.cv.Fill()
}

// StrokeLine draws a line segment.
func (s *CanvasSurface) StrokeLine(x1, y1, x2, y2, width float32, c color.NRGBA) {
	s.cv.BeginPath()
	s.cv.MoveTo(float64(x1), float64(y1))
	s.cv.LineTo(float64(x2), float64(y2))
	s.cv.SetStrokeStyle(c)
	s.cv.SetLineWidth(float64(width))
	s.cv.Stroke()
}

// Size returns the logical surface size.
func (s *CanvasSurface) Size() (width, height int) {
	return s.width, s.height
}

// Image returns the backing pixels.
func (s *CanvasSurface) Image() *image.RGBA {
	return s.backend.Image
}

// WritePNG saves the current pixels to path.
func (s *CanvasSurface) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := png.Encode(f, s.backend.Image); err != nil {
		f.Close()
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return f.Close()
}
