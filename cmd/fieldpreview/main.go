// Field preview tool - live particle field with sliders for tuning.
//
// Usage: go run ./cmd/fieldpreview [-config path]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/game"
)

const panelWidth = 300

// previewParams holds the tunable settings.
type previewParams struct {
	Count     float32
	Threshold float32
	MaxSpeed  float32
}

// previewDisplay draws the tuning panel over each frame.
type previewDisplay struct {
	*game.RaylibDisplay

	g       *game.Game
	params  previewParams
	pending bool
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	cfg.Screen.Title = "Field Preview"

	rd := game.OpenRaylibDisplay(cfg)
	if rd == nil {
		slog.Error("failed to open window")
		os.Exit(1)
	}
	defer rd.Close()

	d := &previewDisplay{
		RaylibDisplay: rd,
		params: previewParams{
			Count:     float32(cfg.Field.Count),
			Threshold: float32(cfg.Links.Threshold),
			MaxSpeed:  float32(cfg.Field.MaxSpeed),
		},
	}

	g, err := game.Start(d, game.Options{Config: cfg})
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer g.Unload()
	d.g = g

	if err := g.Run(context.Background(), d, game.NewScheduler()); err != nil {
		slog.Error("run failed", "error", err)
	}
}

// EndFrame draws the panel, presents the frame and applies slider changes.
func (d *previewDisplay) EndFrame() {
	d.drawPanel()
	d.RaylibDisplay.EndFrame()

	if d.pending {
		d.g.Tune(int(d.params.Count), d.params.Threshold, d.params.MaxSpeed)
		d.pending = false
	}
}

func (d *previewDisplay) drawPanel() {
	panelX := float32(rl.GetScreenWidth() - panelWidth - 10)
	panelY := float32(10)

	rl.DrawRectangle(int32(panelX-10), 0, panelWidth+20, 240, rl.Fade(rl.Black, 0.6))
	rl.DrawText("Field Parameters", int32(panelX), int32(panelY), 20, rl.LightGray)
	panelY += 35

	d.params.Count = d.slider("Particle count", "0", "1000", &panelY, panelX, d.params.Count, 0, 1000, "%.0f")
	d.params.Threshold = d.slider("Link distance (px)", "0", "400", &panelY, panelX, d.params.Threshold, 0, 400, "%.0f")
	d.params.MaxSpeed = d.slider("Max speed (px/frame)", "0", "3", &panelY, panelX, d.params.MaxSpeed, 0, 3, "%.2f")

	rl.DrawText(fmt.Sprintf("FPS: %d  Links: %d", rl.GetFPS(), len(d.g.Links())), int32(panelX), int32(panelY), 16, rl.LightGray)
}

// slider draws a labelled slider bar and flags a retune when its value moves.
func (d *previewDisplay) slider(label, lo, hi string, y *float32, x, value, minV, maxV float32, format string) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: panelWidth - 80, Height: 20},
		lo, hi,
		value, minV, maxV,
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(x+panelWidth-70), int32(*y+2), 16, rl.LightGray)
	*y += 35
	if v != value {
		d.pending = true
	}
	return v
}
