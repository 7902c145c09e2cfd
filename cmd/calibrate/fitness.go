package main

import (
	"math"
	"sync"
	"time"

	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/game"
	"github.com/pthm-cable/plexus/renderer"
)

// Target describes the look and cost a calibration aims for.
type Target struct {
	Width, Height int
	Degree        float64       // mean links per particle
	Budget        time.Duration // mean frame work allowed
	Frames        int           // frames simulated per seed
}

// FitnessEvaluator runs headless fields and scores them against a Target.
type FitnessEvaluator struct {
	params     *ParamVector
	target     Target
	seeds      []int64
	baseConfig *config.Config

	mu         sync.Mutex
	lastDegree float64
	lastWork   time.Duration
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, target Target, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		target:     target,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// Last returns the measured degree and frame work of the most recent evaluation.
func (fe *FitnessEvaluator) Last() (degree float64, work time.Duration) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastDegree, fe.lastWork
}

// runResult holds the measurements of one seed.
type runResult struct {
	degree float64
	work   time.Duration
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	if err := fe.params.ApplyToConfig(cfg, x); err != nil {
		return math.Inf(1)
	}

	// Seeds share the config read-only, so they can run in parallel
	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runField(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var degree float64
	var work time.Duration
	for _, r := range results {
		degree += r.degree
		work += r.work
	}
	n := float64(len(results))
	degree /= n
	work = time.Duration(float64(work) / n)

	fe.mu.Lock()
	fe.lastDegree, fe.lastWork = degree, work
	fe.mu.Unlock()

	return fe.score(cfg.Field.Count, degree, work)
}

// runField simulates one seed on a draw-call recorder.
func (fe *FitnessEvaluator) runField(cfg *config.Config, seed int64) runResult {
	rec := renderer.NewRecorder(fe.target.Width, fe.target.Height)
	g, err := game.NewGame(rec, game.Options{Config: cfg, Seed: seed})
	if err != nil {
		return runResult{degree: math.Inf(1)}
	}
	defer g.Unload()
	g.Resize(fe.target.Width, fe.target.Height)

	var links int
	for range fe.target.Frames {
		g.Frame()
		links += len(g.Links())
	}

	var degree float64
	if n := g.Field().Len(); n > 0 && fe.target.Frames > 0 {
		// Each link touches two particles
		degree = 2 * float64(links) / float64(fe.target.Frames) / float64(n)
	}
	return runResult{degree: degree, work: g.PerfStats().AvgFrameDuration}
}

// score is the squared relative degree error, a penalty for exceeding the
// work budget and a small reward for denser fields.
func (fe *FitnessEvaluator) score(count int, degree float64, work time.Duration) float64 {
	t := fe.target
	errDeg := (degree - t.Degree) / max(t.Degree, 1e-9)
	f := errDeg * errDeg

	if t.Budget > 0 && work > t.Budget {
		over := float64(work)/float64(t.Budget) - 1
		f += 10 * over * over
	}

	spec := fe.params.Specs[0]
	f -= 0.05 * float64(count) / spec.Max
	return f
}

// copyConfig returns a copy of the base config that can be changed freely.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	c := *fe.baseConfig
	return &c
}
