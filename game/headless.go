package game

import (
	"time"

	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/renderer"
)

// HeadlessDisplay renders into an offscreen software canvas. With a
// positive frame rate Wait paces frames on a ticker; otherwise frames run
// back to back.
type HeadlessDisplay struct {
	surface *renderer.CanvasSurface
	ticker  *time.Ticker

	width, height int
	resized       bool
}

// NewHeadlessDisplay creates an offscreen display of the configured screen size.
func NewHeadlessDisplay(cfg *config.Config, fps int) *HeadlessDisplay {
	d := &HeadlessDisplay{
		surface: renderer.NewCanvasSurface(cfg.Screen.Width, cfg.Screen.Height, cfg.Derived.Background),
		width:   cfg.Screen.Width,
		height:  cfg.Screen.Height,
	}
	if fps > 0 {
		d.ticker = time.NewTicker(time.Second / time.Duration(fps))
	}
	return d
}

func (d *HeadlessDisplay) Wait() bool {
	if d.ticker != nil {
		<-d.ticker.C
	}
	return true
}

// Surface returns the canvas surface.
func (d *HeadlessDisplay) Surface() renderer.Surface {
	return d.surface
}

// Canvas returns the underlying canvas for pixel access.
func (d *HeadlessDisplay) Canvas() *renderer.CanvasSurface {
	return d.surface
}

func (d *HeadlessDisplay) Viewport() (width, height int) {
	return d.width, d.height
}

// SetViewport changes the viewport size. The change is reported by the
// next call to Resized.
func (d *HeadlessDisplay) SetViewport(width, height int) {
	d.width, d.height = width, height
	d.resized = true
}

func (d *HeadlessDisplay) Resized() bool {
	r := d.resized
	d.resized = false
	return r
}

func (d *HeadlessDisplay) BeginFrame() {}

func (d *HeadlessDisplay) EndFrame() {}

// Close stops the frame ticker.
func (d *HeadlessDisplay) Close() {
	if d.ticker != nil {
		d.ticker.Stop()
	}
}
