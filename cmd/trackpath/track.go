package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/san-kum/homotopy/internal/config"
	"github.com/san-kum/homotopy/internal/coretracker"
	"github.com/san-kum/homotopy/internal/htsystems"
	"github.com/san-kum/homotopy/internal/htvector"
	"github.com/san-kum/homotopy/internal/pathjump"
	"github.com/san-kum/homotopy/internal/pathtracker"
	"github.com/san-kum/homotopy/internal/pathviz"
	"github.com/san-kum/homotopy/internal/predictor"
	"github.com/spf13/cobra"
)

func resolvePredictor(name string) (predictor.Predictor, error) {
	switch name {
	case "euler":
		return predictor.NewEuler(), nil
	case "rk4":
		return predictor.NewRK4(), nil
	default:
		return nil, fmt.Errorf("unknown predictor %q (want euler or rk4)", name)
	}
}

func resolveEmbedding(name string) (pathtracker.Embedding, error) {
	switch name {
	case "affine":
		return pathtracker.AffineEmbedding{}, nil
	case "projective":
		return pathtracker.ProjectiveEmbedding{}, nil
	default:
		return nil, fmt.Errorf("unknown embedding %q (want affine or projective)", name)
	}
}

func newTrackerFactory(cfg *config.TrackerConfig) (func() *pathtracker.Tracker, htsystems.Scenario, error) {
	scenario, err := htsystems.Resolve(cfg.System)
	if err != nil {
		return nil, scenario, err
	}
	pred, err := resolvePredictor(cfg.Predictor)
	if err != nil {
		return nil, scenario, err
	}
	embed, err := resolveEmbedding(cfg.Embedding)
	if err != nil {
		return nil, scenario, err
	}
	coreOpts := cfg.CoreOptions()
	pathOpts := cfg.PathOptions()
	factory := func() *pathtracker.Tracker {
		return pathtracker.NewTracker(scenario.H, pred, embed, coreOpts, pathOpts)
	}
	return factory, scenario, nil
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("system") {
		cfg.System = systemName
	}
	if cmd.Flags().Changed("embedding") {
		cfg.Embedding = embedding
	}
	if cmd.Flags().Changed("predictor") {
		cfg.Predictor = predName
	}
	if cmd.Flags().Changed("accuracy") {
		cfg.Accuracy = accuracy
	}
	if cmd.Flags().Changed("max-steps") {
		cfg.MaxSteps = maxSteps
	}
	if cmd.Flags().Changed("jump-mitigation") {
		cfg.Jump.Enabled = jumpFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	factory, scenario, err := newTrackerFactory(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("system: %s (%s)\n", scenario.Name, scenario.Comment)
	fmt.Printf("paths: %d\n\n", len(scenario.Starts))

	start := time.Now()
	results, err := pathjump.RunAll(context.Background(), factory, scenario.Starts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if cfg.Jump.Enabled {
		collisions := pathjump.FindCollisions(results, cfg.Jump.Tolerance)
		if len(collisions) > 0 {
			fmt.Printf("detected %d colliding path pair(s); retracking with tightened options\n", len(collisions))
			retried := pathjump.Mitigate(factory, scenario.Starts, results, cfg.Jump.Tolerance, cfg.Jump.MaxAttempts)
			fmt.Printf("retracked %d path(s)\n\n", len(retried))
		}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tCODE\tWINDING\tACCURACY\tACCEPTED\tREJECTED\tSOLUTION")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%.2e\t%d\t%d\t%v\n",
			i, r.ReturnCode, r.WindingNumber, r.Accuracy, r.AcceptedSteps, r.RejectedSteps, r.Solution)
	}
	w.Flush()

	fmt.Printf("\ncompleted %d paths in %v\n", len(results), elapsed)

	distinct := countDistinctSuccesses(results, cfg.Jump.Tolerance)
	fmt.Printf("distinct successful solutions: %d\n", distinct)

	if plotFlag && len(results) > 0 {
		plotFirstPath(cfg, scenario, scenario.Starts[0])
	}

	return nil
}

func countDistinctSuccesses(results []pathtracker.PathResult, tol float64) int {
	var successes []pathtracker.PathResult
	for _, r := range results {
		if r.IsSuccess() {
			successes = append(successes, r)
		}
	}
	distinct := 0
	seen := make([]bool, len(successes))
	for i := range successes {
		if seen[i] {
			continue
		}
		distinct++
		for j := i + 1; j < len(successes); j++ {
			if seen[j] {
				continue
			}
			fake := []pathtracker.PathResult{successes[i], successes[j]}
			if len(pathjump.FindCollisions(fake, tol)) > 0 {
				seen[j] = true
			}
		}
	}
	return distinct
}

// plotFirstPath re-tracks x1 one core step at a time, outside
// pathtracker.Track's batch interface, purely so --plot has
// coordinate-0 and ω(t) samples to hand to pathviz; pathtracker.Track
// itself only returns the endpoint.
func plotFirstPath(cfg *config.TrackerConfig, scenario htsystems.Scenario, x1 htvector.Raw) {
	pred, err := resolvePredictor(cfg.Predictor)
	if err != nil {
		return
	}
	tr := coretracker.NewTracker(scenario.H, pred, cfg.CoreOptions())
	if err := tr.Setup(x1, complex(1, 0), complex(0, 0)); err != nil {
		fmt.Printf("\n--plot: setup failed: %v\n", err)
		return
	}

	var samples, ts []complex128
	var omegaSeries []float64
	for {
		tr.Step()
		cs := tr.State()
		if !cs.LastStepFailed {
			samples = append(samples, cs.X[0])
			ts = append(ts, cs.T)
			omegaSeries = append(omegaSeries, cs.Omega)
		}
		if cs.Status.IsTerminal() {
			break
		}
	}

	fmt.Println("\nfirst path trajectory (coordinate 0):")
	fmt.Println(pathviz.PlotTrajectory(samples, ts, 48, 14))
	fmt.Println("contraction factor ω over accepted steps:")
	fmt.Println(pathviz.PlotOmegaSeries(omegaSeries, 10))
}
