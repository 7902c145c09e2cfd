package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	backend := flag.String("backend", "raylib", "Display backend: raylib, ebiten or headless")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for PNG snapshots (headless only)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int64("max-frames", 0, "Stop after N frames (0 = unlimited)")
	headlessFPS := flag.Int("headless-fps", 0, "Frame rate limit in headless mode (0 = unpaced)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Config:      cfg,
		Seed:        rngSeed,
		LogStats:    *logStats,
		OutputDir:   *outputDir,
		SnapshotDir: *snapshotDir,
		MaxFrames:   *maxFrames,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting",
		"backend", *backend,
		"seed", rngSeed,
		"max_frames", *maxFrames,
	)

	var err error
	switch *backend {
	case "headless":
		d := game.NewHeadlessDisplay(cfg, *headlessFPS)
		defer d.Close()
		err = runDisplay(ctx, d, opts)
	case "ebiten":
		err = game.RunEbiten(ctx, cfg, opts)
	case "raylib":
		d := game.OpenRaylibDisplay(cfg)
		if d == nil {
			slog.Info("no window available, effect inactive")
			return
		}
		defer d.Close()
		err = runDisplay(ctx, d, opts)
	default:
		slog.Error("unknown backend", "backend", *backend)
		os.Exit(2)
	}

	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// runDisplay starts the effect on d and drives it until it stops.
func runDisplay(ctx context.Context, d game.Display, opts game.Options) error {
	g, err := game.Start(d, opts)
	if err != nil {
		return err
	}
	if g == nil {
		slog.Info("display has no surface, effect inactive")
		return nil
	}
	defer g.Unload()

	return g.Run(ctx, d, game.NewScheduler())
}
