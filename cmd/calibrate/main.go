package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/plexus/config"
)

// evalRecord is one row of calibrate_log.csv.
type evalRecord struct {
	Eval      int     `csv:"eval"`
	Fitness   float64 `csv:"fitness"`
	Count     int     `csv:"count"`
	Threshold float64 `csv:"threshold"`
	Degree    float64 `csv:"degree"`
	WorkUS    int64   `csv:"work_us"`
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	width := flag.Int("width", 0, "Viewport width (0 = screen.width)")
	height := flag.Int("height", 0, "Viewport height (0 = screen.height)")
	degree := flag.Float64("degree", 4, "Target mean links per particle")
	budget := flag.Duration("budget", 2*time.Millisecond, "Mean frame work budget (0 = unlimited)")
	frames := flag.Int("frames", 120, "Frames simulated per seed")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 100, "Maximum number of evaluations")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	// Only warnings from the simulated games
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if *outputDir == "" {
		fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fatal("failed to create output directory: %v", err)
	}

	baseCfg, err := config.Load(*configPath)
	if err != nil {
		fatal("failed to load config: %v", err)
	}

	target := Target{
		Width:  *width,
		Height: *height,
		Degree: *degree,
		Budget: *budget,
		Frames: *frames,
	}
	if target.Width == 0 {
		target.Width = baseCfg.Screen.Width
	}
	if target.Height == 0 {
		target.Height = baseCfg.Screen.Height
	}

	params := NewParamVector()

	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	evaluator := NewFitnessEvaluator(params, target, evalSeeds, baseCfg)

	logFile, err := os.Create(filepath.Join(*outputDir, "calibrate_log.csv"))
	if err != nil {
		fatal("failed to create log file: %v", err)
	}
	defer logFile.Close()

	evalCount := 0
	bestFitness := 1e9
	var bestParams []float64
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(raw)
			evalCount++

			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = raw
			}

			deg, work := evaluator.Last()
			rec := []evalRecord{{
				Eval:      evalCount,
				Fitness:   fitness,
				Count:     int(raw[0] + 0.5),
				Threshold: raw[1],
				Degree:    deg,
				WorkUS:    work.Microseconds(),
			}}
			if evalCount == 1 {
				err = gocsv.Marshal(rec, logFile)
			} else {
				err = gocsv.MarshalWithoutHeaders(rec, logFile)
			}
			if err != nil {
				slog.Warn("failed to write eval log", "error", err)
			}

			fmt.Printf("Eval %d/%d: count=%.0f threshold=%.1f degree=%.2f work=%s (best=%.4f)\n",
				evalCount, *maxEvals, raw[0], raw[1], deg, work, bestFitness)
			return fitness
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // Sequential evaluation
	}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   4 + int(3.0*float64(params.Dim())/2.0),
	}

	fmt.Printf("Calibrating %dx%d for degree %.1f within %s (%d evals, %d seeds)\n",
		target.Width, target.Height, target.Degree, target.Budget, *maxEvals, *seeds)

	initX := params.Normalize(params.ExtractFromConfig(baseCfg))
	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		slog.Warn("optimization ended", "error", err)
	}
	if bestParams == nil && result != nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}
	if bestParams == nil {
		fatal("no evaluation completed")
	}

	fmt.Printf("\nCalibration complete after %d evaluations in %s\n", evalCount, time.Since(startTime).Round(time.Second))
	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.3f\n", spec.Path, bestParams[i])
	}

	bestCfg, err := config.Load(*configPath)
	if err != nil {
		fatal("failed to reload config: %v", err)
	}
	if err := params.ApplyToConfig(bestCfg, bestParams); err != nil {
		fatal("failed to apply parameters: %v", err)
	}
	configOutPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		fatal("failed to write best config: %v", err)
	}
	fmt.Printf("\nBest config saved to: %s\n", configOutPath)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
