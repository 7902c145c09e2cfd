package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/renderer"
)

// RaylibDisplay is a native window driven by raylib.
type RaylibDisplay struct {
	surface *renderer.RaylibSurface
}

// OpenRaylibDisplay opens the main window. It returns nil if the window
// could not be created.
func OpenRaylibDisplay(cfg *config.Config) *RaylibDisplay {
	var flags uint32
	if cfg.Screen.Resizable {
		flags |= rl.FlagWindowResizable
	}
	if cfg.Screen.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	if !rl.IsWindowReady() {
		return nil
	}
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	return &RaylibDisplay{surface: renderer.NewRaylibSurface(cfg.Derived.Background)}
}

// Wait reports whether the window is still open. raylib paces frames in
// EndDrawing, so Wait does not block.
func (d *RaylibDisplay) Wait() bool {
	return !rl.WindowShouldClose()
}

func (d *RaylibDisplay) Surface() renderer.Surface {
	return d.surface
}

func (d *RaylibDisplay) Viewport() (width, height int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (d *RaylibDisplay) Resized() bool {
	return rl.IsWindowResized()
}

func (d *RaylibDisplay) BeginFrame() {
	rl.BeginDrawing()
}

func (d *RaylibDisplay) EndFrame() {
	rl.EndDrawing()
}

// Close closes the window.
func (d *RaylibDisplay) Close() {
	rl.CloseWindow()
}
