// Package game wires the particle field, its renderers and telemetry into
// a frame loop driven by a host display.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/renderer"
	"github.com/pthm-cable/plexus/systems"
	"github.com/pthm-cable/plexus/telemetry"
)

// Options configures a Game.
type Options struct {
	Config      *config.Config // nil = config.Cfg()
	Seed        int64          // RNG seed (0 = time-based)
	LogStats    bool           // log stats via slog at each stats interval
	OutputDir   string         // CSV logs and config snapshot (empty = off)
	SnapshotDir string         // PNG snapshots for surfaces that support them (empty = off)
	MaxFrames   int64          // cancel the scheduler after N frames (0 = unlimited)
}

// Game holds the complete effect state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	field     *systems.Field
	count     int
	finder    systems.LinkFinder
	links     []systems.Link
	threshold float32

	surface          renderer.Surface
	particleRenderer *renderer.ParticleRenderer
	linkRenderer     *renderer.LinkRenderer

	// Surface dimensions
	width, height int

	frame int64

	// Telemetry
	perf          *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	snapshotDir   string
	maxFrames     int64
}

// Start creates a Game on the display's surface sized to its viewport.
// If the display has no surface the effect stays inactive: Start returns
// a nil Game and a nil error.
func Start(d Display, opts Options) (*Game, error) {
	if d == nil {
		return nil, nil
	}
	s := d.Surface()
	if s == nil {
		return nil, nil
	}
	g, err := NewGame(s, opts)
	if err != nil {
		return nil, err
	}
	w, h := d.Viewport()
	g.Resize(w, h)
	return g, nil
}

// NewGame creates a Game drawing onto s. The field stays empty until the
// first Resize.
func NewGame(s renderer.Surface, opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g := &Game{
		cfg:              cfg,
		rng:              rng,
		field:            systems.NewField(rng, fieldParams(cfg)),
		count:            cfg.Field.Count,
		finder:           systems.NewLinkFinder(cfg.Links.Index),
		threshold:        cfg.Derived.Threshold32,
		surface:          s,
		particleRenderer: renderer.NewParticleRenderer(cfg.Derived.Color),
		linkRenderer:     renderer.NewLinkRenderer(cfg.Derived.Color, cfg.Derived.StrokeWidth32),
		perf:             telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		outputManager:    om,
		logStats:         opts.LogStats,
		snapshotDir:      opts.SnapshotDir,
		maxFrames:        opts.MaxFrames,
	}

	slog.Info("game_created",
		"seed", seed,
		"count", cfg.Field.Count,
		"threshold", cfg.Links.Threshold,
		"index", cfg.Links.Index,
	)
	return g, nil
}

// fieldParams maps config ranges onto the field generator.
func fieldParams(cfg *config.Config) systems.FieldParams {
	return systems.FieldParams{
		MaxSpeed:  cfg.Derived.MaxSpeed32,
		RadiusMin: cfg.Derived.RadiusMin32,
		RadiusMax: cfg.Derived.RadiusMax32,
		AlphaMin:  cfg.Derived.AlphaMin32,
		AlphaMax:  cfg.Derived.AlphaMax32,
	}
}

// Run drives frames from d until the scheduler is cancelled, ctx is done or
// the display closes. Resize notifications are handled between frames.
func (g *Game) Run(ctx context.Context, d Display, s *Scheduler) error {
	return s.Run(ctx, d, func() { g.hostFrame(d, s) })
}

// hostFrame runs one scheduled frame on d, applying any pending resize first.
func (g *Game) hostFrame(d Display, s *Scheduler) {
	g.perf.StartFrame()
	g.perf.StartPhase(telemetry.PhaseResize)
	g.handleResize(d)

	d.BeginFrame()
	g.drawFrame()
	d.EndFrame()
	g.perf.RecordPresent()

	if g.maxFrames > 0 && g.frame >= g.maxFrames {
		slog.Info("max frames reached", "frame", g.frame)
		s.Cancel()
	}
}

// Frame runs one complete cycle: clear, step and draw every particle, then
// draw the proximity links over the updated field.
func (g *Game) Frame() {
	g.perf.StartFrame()
	g.drawFrame()
}

// drawFrame runs the frame phases inside an already started perf frame.
func (g *Game) drawFrame() {
	g.perf.StartPhase(telemetry.PhaseClear)
	g.surface.Clear()

	g.perf.StartPhase(telemetry.PhaseStep)
	g.field.StepAll()

	g.perf.StartPhase(telemetry.PhaseParticles)
	particles := g.field.Particles()
	g.particleRenderer.Draw(g.surface, particles)

	g.perf.StartPhase(telemetry.PhaseLinks)
	g.links = g.finder.Find(g.links[:0], particles, g.threshold)
	g.linkRenderer.Draw(g.surface, particles, g.links)

	g.perf.EndFrame()
	g.frame++

	g.flushTelemetry()
}

// Tune changes the population and link settings and reinitializes the field.
func (g *Game) Tune(count int, threshold, maxSpeed float32) {
	g.count = max(count, 0)
	g.threshold = max(threshold, 0)
	params := g.field.Params()
	params.MaxSpeed = max(maxSpeed, 0)
	g.field.SetParams(params)
	g.Resize(g.width, g.height)
}

// Field returns the particle field.
func (g *Game) Field() *systems.Field {
	return g.field
}

// Links returns the links drawn in the last frame.
func (g *Game) Links() []systems.Link {
	return g.links
}

// Size returns the current surface dimensions.
func (g *Game) Size() (width, height int) {
	return g.width, g.height
}

// PerfStats returns frame timing over the perf window.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perf.Stats()
}

// FrameCount returns the number of frames run.
func (g *Game) FrameCount() int64 {
	return g.frame
}

// Unload releases output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Warn("failed to close output", "error", err)
	}
}
