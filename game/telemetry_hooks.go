package game

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pthm-cable/plexus/renderer"
	"github.com/pthm-cable/plexus/telemetry"
)

// flushTelemetry emits stats and snapshots when their intervals elapse.
func (g *Game) flushTelemetry() {
	if n := int64(g.cfg.Telemetry.StatsInterval); n > 0 && g.frame%n == 0 {
		g.flushStats()
	}
	if n := int64(g.cfg.Snapshot.IntervalFrames); g.snapshotDir != "" && n > 0 && g.frame%n == 0 {
		g.saveSnapshot()
	}
}

// flushStats computes field and perf stats for the current frame.
func (g *Game) flushStats() {
	stats := telemetry.ComputeFrameStats(g.frame, g.width, g.height, g.field.Particles(), g.links)
	perfStats := g.perf.Stats()

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Nil output manager discards writes
	if err := g.outputManager.WriteStats(stats); err != nil {
		slog.Error("failed to write stats", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, g.frame); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// saveSnapshot writes the surface to a PNG if it supports snapshots.
func (g *Game) saveSnapshot() {
	snap, ok := g.surface.(renderer.Snapshotter)
	if !ok {
		return
	}
	if err := os.MkdirAll(g.snapshotDir, 0755); err != nil {
		slog.Error("failed to create snapshot directory", "error", err)
		return
	}

	path := filepath.Join(g.snapshotDir, fmt.Sprintf("frame_%08d.png", g.frame))
	if err := snap.WritePNG(path); err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}

	slog.Info("snapshot saved", "path", path, "frame", g.frame)
}
