package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/plexus/systems"
)

func TestComputeDistribution(t *testing.T) {
	values := []float64{1.0, 0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2, 0.1}
	mean, std, p10, p50, p90 := ComputeDistribution(values)

	if math.Abs(mean-0.55) > 0.001 {
		t.Errorf("mean = %v, want 0.55", mean)
	}
	if std <= 0 {
		t.Errorf("std = %v, want positive", std)
	}
	if !(p10 <= p50 && p50 <= p90) {
		t.Errorf("percentiles out of order: p10=%v p50=%v p90=%v", p10, p50, p90)
	}
	if p10 < 0.1 || p90 > 1.0 {
		t.Errorf("percentiles outside data range: p10=%v p90=%v", p10, p90)
	}
	if values[0] != 0.1 {
		t.Error("expected values to be sorted in place")
	}
}

func TestComputeDistributionEdges(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{0.4}, 0.4},
		{"constant", []float64{0.25, 0.25, 0.25}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, p10, p50, p90 := ComputeDistribution(tt.values)
			for _, v := range []float64{mean, p10, p50, p90} {
				if math.Abs(v-tt.want) > 1e-9 {
					t.Errorf("got %v, want %v", v, tt.want)
				}
			}
			if std != 0 {
				t.Errorf("std = %v, want 0", std)
			}
		})
	}
}

func TestComputeFrameStats(t *testing.T) {
	ps := []systems.Particle{
		{X: 0, Y: 0, VX: 0.3, VY: 0.4},
		{X: 100, Y: 0, VX: -0.3, VY: 0.4},
		{X: 900, Y: 0, VX: 0, VY: 0.5}, // past the right edge
	}
	links := systems.Links(nil, ps, 150)

	s := ComputeFrameStats(12, 800, 600, ps, links)

	if s.Frame != 12 || s.Particles != 3 || s.Links != 1 {
		t.Fatalf("stats = %+v", s)
	}
	if math.Abs(s.Density-1.0/3.0) > 1e-9 {
		t.Errorf("density = %v, want 1/3", s.Density)
	}
	if math.Abs(s.OpacityMean-(1-100.0/150.0)) > 1e-5 {
		t.Errorf("opacity mean = %v, want %v", s.OpacityMean, 1-100.0/150.0)
	}
	if math.Abs(s.MeanSpeed-0.5) > 1e-6 {
		t.Errorf("mean speed = %v, want 0.5", s.MeanSpeed)
	}
	if s.Outside != 1 {
		t.Errorf("outside = %d, want 1", s.Outside)
	}
}

func TestComputeFrameStatsEmpty(t *testing.T) {
	s := ComputeFrameStats(0, 800, 600, nil, nil)
	if s.Particles != 0 || s.Links != 0 || s.Density != 0 || s.MeanSpeed != 0 {
		t.Errorf("empty field stats = %+v", s)
	}
}
