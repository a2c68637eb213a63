package main

import (
	"testing"

	"github.com/san-kum/homotopy/internal/config"
	"github.com/san-kum/homotopy/internal/pathtracker"
)

func TestResolvePredictorRejectsUnknownName(t *testing.T) {
	if _, err := resolvePredictor("leapfrog"); err == nil {
		t.Error("expected an error for an unknown predictor name")
	}
	if _, err := resolvePredictor("rk4"); err != nil {
		t.Errorf("rk4 should resolve, got %v", err)
	}
}

func TestResolveEmbeddingRejectsUnknownName(t *testing.T) {
	if _, err := resolveEmbedding("spherical"); err == nil {
		t.Error("expected an error for an unknown embedding name")
	}
}

func TestNewTrackerFactoryBuildsARunnableTracker(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.System = "quadratic"

	factory, scenario, err := newTrackerFactory(cfg)
	if err != nil {
		t.Fatalf("newTrackerFactory: %v", err)
	}
	if len(scenario.Starts) == 0 {
		t.Fatal("expected at least one start solution")
	}

	tr := factory()
	result := tr.Track(scenario.Starts[0])
	if !result.IsSuccess() && !result.IsAtInfinity() {
		t.Errorf("expected success or at_infinity, got %s", result.ReturnCode)
	}
}

func TestCountDistinctSuccessesCollapsesDuplicates(t *testing.T) {
	same := pathtracker.PathResult{
		ReturnCode: pathtracker.Success,
		Solution:   []complex128{1, 2},
	}
	other := pathtracker.PathResult{
		ReturnCode: pathtracker.Success,
		Solution:   []complex128{5, 6},
	}
	got := countDistinctSuccesses([]pathtracker.PathResult{same, same, other}, 1e-6)
	if got != 2 {
		t.Errorf("countDistinctSuccesses = %d, want 2", got)
	}
}
