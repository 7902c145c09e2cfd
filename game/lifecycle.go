package game

import (
	"log/slog"

	"github.com/pthm-cable/plexus/renderer"
)

// Resize matches the surface to the new viewport and reinitializes the
// field with a fresh population. Negative sizes are treated as zero.
func (g *Game) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	if r, ok := g.surface.(renderer.Resizer); ok {
		r.Resize(width, height)
	}
	g.width, g.height = width, height

	g.field.Init(float32(width), float32(height), g.count)
	g.links = g.links[:0]

	slog.Info("field_init",
		"width", width,
		"height", height,
		"count", g.field.Len(),
	)
}

// handleResize applies a pending viewport change before the next frame.
func (g *Game) handleResize(d Display) {
	if !d.Resized() {
		return
	}
	w, h := d.Viewport()
	g.Resize(w, h)
}
