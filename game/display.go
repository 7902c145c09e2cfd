package game

import "github.com/pthm-cable/plexus/renderer"

// Display is a host view the field is drawn into.
type Display interface {
	Refresh

	// Surface returns the drawing surface, or nil if the host has none.
	Surface() renderer.Surface

	// Viewport returns the current host size in pixels.
	Viewport() (width, height int)

	// Resized reports whether the viewport changed since the last call.
	Resized() bool

	// BeginFrame and EndFrame bracket the draw calls of one frame.
	BeginFrame()
	EndFrame()
}
