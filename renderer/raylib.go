package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibSurface draws into the current raylib window.
// Calls must happen between rl.BeginDrawing and rl.EndDrawing.
type RaylibSurface struct {
	background rl.Color
}

// NewRaylibSurface creates a surface that clears to background.
func NewRaylibSurface(background color.NRGBA) *RaylibSurface {
	return &RaylibSurface{background: toRaylib(background)}
}

// Clear fills the window with the background colour.
func (s *RaylibSurface) Clear() {
	rl.ClearBackground(s.background)
}

// FillCircle draws a filled disc.
func (s *RaylibSurface) FillCircle(x, y, radius float32, c color.NRGBA) {
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, toRaylib(c))
}

// StrokeLine draws a line segment.
func (s *RaylibSurface) StrokeLine(x1, y1, x2, y2, width float32, c color.NRGBA) {
	rl.DrawLineEx(rl.Vector2{X: x1, Y: y1}, rl.Vector2{X: x2, Y: y2}, width, toRaylib(c))
}

// Size returns the window size in screen pixels.
func (s *RaylibSurface) Size() (width, height int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// toRaylib converts a straight-alpha colour; raylib blends non-premultiplied.
func toRaylib(c color.NRGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
