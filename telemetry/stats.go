// Package telemetry collects frame timing and proximity-graph statistics
// and writes them to slog and CSV.
package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/plexus/systems"
)

// FrameStats summarizes the field and its proximity graph at one frame.
type FrameStats struct {
	Frame  int64 `csv:"frame"`
	Width  int   `csv:"width"`
	Height int   `csv:"height"`

	Particles int `csv:"particles"`
	Links     int `csv:"links"`

	// Links over all possible pairs, N(N-1)/2
	Density float64 `csv:"density"`

	// Link opacity distribution
	OpacityMean float64 `csv:"opacity_mean"`
	OpacityStd  float64 `csv:"opacity_std"`
	OpacityP10  float64 `csv:"opacity_p10"`
	OpacityP50  float64 `csv:"opacity_p50"`
	OpacityP90  float64 `csv:"opacity_p90"`

	MeanSpeed float64 `csv:"mean_speed"`

	// Particles past an edge, waiting for reflection to bring them back
	Outside int `csv:"outside"`
}

// ComputeFrameStats builds FrameStats for the current field.
func ComputeFrameStats(frame int64, width, height int, ps []systems.Particle, links []systems.Link) FrameStats {
	s := FrameStats{
		Frame:     frame,
		Width:     width,
		Height:    height,
		Particles: len(ps),
		Links:     len(links),
	}

	if n := len(ps); n > 1 {
		s.Density = float64(len(links)) / (float64(n) * float64(n-1) / 2)
	}

	opacities := make([]float64, len(links))
	for i, l := range links {
		opacities[i] = float64(l.Opacity)
	}
	s.OpacityMean, s.OpacityStd, s.OpacityP10, s.OpacityP50, s.OpacityP90 = ComputeDistribution(opacities)

	if len(ps) > 0 {
		w, h := float32(width), float32(height)
		var speedSum float64
		for i := range ps {
			p := &ps[i]
			speedSum += math.Hypot(float64(p.VX), float64(p.VY))
			if p.X < 0 || p.X > w || p.Y < 0 || p.Y > h {
				s.Outside++
			}
		}
		s.MeanSpeed = speedSum / float64(len(ps))
	}

	return s
}

// ComputeDistribution returns mean, standard deviation and the 10th, 50th
// and 90th percentiles of values. Returns zeros for an empty slice.
// values is sorted in place.
func ComputeDistribution(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}
	sort.Float64s(values)

	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}
	p10 = stat.Quantile(0.1, stat.LinInterp, values, nil)
	p50 = stat.Quantile(0.5, stat.LinInterp, values, nil)
	p90 = stat.Quantile(0.9, stat.LinInterp, values, nil)
	return mean, std, p10, p50, p90
}

// LogStats logs the frame stats.
func (s FrameStats) LogStats() {
	slog.Info("field_stats", "stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("frame", s.Frame),
		slog.Int("width", s.Width),
		slog.Int("height", s.Height),
		slog.Int("particles", s.Particles),
		slog.Int("links", s.Links),
		slog.Float64("density", s.Density),
		slog.Float64("opacity_mean", s.OpacityMean),
		slog.Float64("opacity_p50", s.OpacityP50),
		slog.Float64("mean_speed", s.MeanSpeed),
		slog.Int("outside", s.Outside),
	)
}
