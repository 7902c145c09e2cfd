package main

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/plexus/config"
)

func TestNormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: %v round-tripped to %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Defaults()

	if err := pv.ApplyToConfig(cfg, []float64{5000, -3}); err != nil {
		t.Fatal(err)
	}
	if cfg.Field.Count != 1500 {
		t.Errorf("count = %d, want clamped 1500", cfg.Field.Count)
	}
	if cfg.Links.Threshold != 20 || cfg.Derived.Threshold32 != 20 {
		t.Errorf("threshold = %v (derived %v), want 20", cfg.Links.Threshold, cfg.Derived.Threshold32)
	}

	got := pv.ExtractFromConfig(cfg)
	if got[0] != 1500 || got[1] != 20 {
		t.Errorf("ExtractFromConfig = %v", got)
	}
}

func TestScore(t *testing.T) {
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, Target{Degree: 4, Budget: time.Millisecond}, nil, config.Defaults())

	onTarget := fe.score(100, 4, time.Millisecond/2)
	offTarget := fe.score(100, 8, time.Millisecond/2)
	overBudget := fe.score(100, 4, 3*time.Millisecond)

	if onTarget >= offTarget {
		t.Errorf("on-target score %v not below off-target %v", onTarget, offTarget)
	}
	if onTarget >= overBudget {
		t.Errorf("in-budget score %v not below over-budget %v", onTarget, overBudget)
	}
	if fe.score(500, 4, 0) >= fe.score(100, 4, 0) {
		t.Error("denser field not preferred at equal degree")
	}
}

func TestEvaluateMeasuresDegree(t *testing.T) {
	pv := NewParamVector()
	target := Target{Width: 200, Height: 200, Degree: 4, Frames: 5}
	fe := NewFitnessEvaluator(pv, target, []int64{1, 2}, config.Defaults())

	// Threshold beyond the diagonal links every pair
	f := fe.Evaluate([]float64{10, 400})
	deg, _ := fe.Last()
	if math.Abs(deg-9) > 1e-9 {
		t.Errorf("degree = %v, want 9 for 10 fully linked particles", deg)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		t.Errorf("fitness = %v", f)
	}
}
