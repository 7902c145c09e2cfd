package game

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/renderer"
)

// ebitenHost adapts ebiten's game loop to a Display. ebiten owns the
// refresh loop, so frames are driven with Scheduler.Tick from Draw.
type ebitenHost struct {
	ctx     context.Context
	sched   *Scheduler
	game    *Game
	surface *renderer.EbitenSurface

	width, height int
	resized       bool
}

// RunEbiten opens an ebiten window and runs the effect until the window
// closes, ctx is done or the frame limit is reached.
func RunEbiten(ctx context.Context, cfg *config.Config, opts Options) error {
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	if cfg.Screen.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetVsyncEnabled(cfg.Screen.VSync)
	ebiten.SetTPS(cfg.Screen.TargetFPS)

	opts.Config = cfg
	h := &ebitenHost{
		ctx:     ctx,
		sched:   NewScheduler(),
		surface: renderer.NewEbitenSurface(cfg.Derived.Background),
		width:   cfg.Screen.Width,
		height:  cfg.Screen.Height,
	}

	g, err := Start(h, opts)
	if err != nil {
		return err
	}
	defer g.Unload()
	h.game = g

	if err := h.sched.Start(); err != nil {
		return err
	}
	defer h.sched.Cancel()

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (h *ebitenHost) Update() error {
	if h.ctx.Err() != nil {
		h.sched.Cancel()
	}
	if h.sched.State() == StateCancelled {
		return ebiten.Termination
	}
	return nil
}

func (h *ebitenHost) Draw(screen *ebiten.Image) {
	h.surface.Target = screen
	h.sched.Tick(h.ctx, func() { h.game.hostFrame(h, h.sched) })
}

// Layout tracks the outside size so the field always fills the window.
func (h *ebitenHost) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		h.resized = true
	}
	return h.width, h.height
}

// Wait is unused; ebiten paces Draw itself.
func (h *ebitenHost) Wait() bool { return true }

func (h *ebitenHost) Surface() renderer.Surface { return h.surface }

func (h *ebitenHost) Viewport() (width, height int) { return h.width, h.height }

func (h *ebitenHost) Resized() bool {
	r := h.resized
	h.resized = false
	return r
}

func (h *ebitenHost) BeginFrame() {}

func (h *ebitenHost) EndFrame() {}
