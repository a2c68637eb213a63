package pathjump

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/homotopy/internal/coretracker"
	"github.com/san-kum/homotopy/internal/htvector"
	"github.com/san-kum/homotopy/internal/pathtracker"
)

// TrackerFactory builds a fresh, thread-local PathTracker for one
// goroutine. Trackers share no mutable state (spec.md §5), so each
// parallel path gets its own.
type TrackerFactory func() *pathtracker.Tracker

// RunAll tracks every start solution concurrently, one PathTracker per
// goroutine, grounded on Ensemble.Run's goroutine-per-path fan-out but
// using errgroup for structured cancellation.
func RunAll(ctx context.Context, newTracker TrackerFactory, starts []htvector.Raw) ([]pathtracker.PathResult, error) {
	results := make([]pathtracker.PathResult, len(starts))
	g, ctx := errgroup.WithContext(ctx)

	for i, s0 := range starts {
		i, s0 := i, s0
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			tr := newTracker()
			results[i] = tr.Track(s0)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Collision is a pair of start-solution indices whose PathResult
// solutions landed within tol of each other: the signature of two
// starts having jumped onto the same path.
type Collision struct {
	I, J int
}

// FindCollisions flags every pair of successful results, singular or
// not, whose solutions agree within tol, the jump-detection half of
// spec.md §4.9's driver workflow.
func FindCollisions(results []pathtracker.PathResult, tol float64) []Collision {
	var collisions []Collision
	for i := 0; i < len(results); i++ {
		if !results[i].IsSuccess() {
			continue
		}
		for j := i + 1; j < len(results); j++ {
			if !results[j].IsSuccess() {
				continue
			}
			if solutionDistance(results[i].Solution, results[j].Solution) < tol {
				collisions = append(collisions, Collision{I: i, J: j})
			}
		}
	}
	return collisions
}

func solutionDistance(a, b htvector.Raw) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	return a.Sub(b).Norm()
}

// Tighten produces the per-attempt option overrides spec.md §4.9
// describes: progressively tighter accuracy and fewer corrector
// iterations, each attempt stricter than the last.
func Tighten(attempt int) coretracker.OptionOverrides {
	accuracy := 1e-7
	for i := 0; i < attempt; i++ {
		accuracy /= 10
	}
	maxIters := 3 - attempt
	if maxIters < 1 {
		maxIters = 1
	}
	return coretracker.OptionOverrides{
		Accuracy:          &accuracy,
		MaxCorrectorIters: &maxIters,
	}
}

// Mitigate retracks each colliding start solution (indexed by
// starts/results) with Tighten's progressively stricter overrides,
// stopping an individual retrack sequence as soon as its solution no
// longer collides with any other currently-accepted result, or after
// maxAttempts. It mutates results in place and returns the indices it
// touched.
func Mitigate(newTracker TrackerFactory, starts []htvector.Raw, results []pathtracker.PathResult, tol float64, maxAttempts int) []int {
	touched := map[int]bool{}
	for _, c := range FindCollisions(results, tol) {
		touched[c.I] = true
		touched[c.J] = true
	}

	indices := make([]int, 0, len(touched))
	for i := range touched {
		indices = append(indices, i)
	}

	for _, idx := range indices {
		tr := newTracker()
		for attempt := 0; attempt < maxAttempts; attempt++ {
			restore := tr.WithCoreOverrides(Tighten(attempt))
			res := tr.Track(starts[idx])
			restore()
			results[idx] = res

			if !collidesWithAnyOther(results, idx, tol) {
				break
			}
		}
	}
	return indices
}

func collidesWithAnyOther(results []pathtracker.PathResult, idx int, tol float64) bool {
	if !results[idx].IsSuccess() {
		return false
	}
	for j := range results {
		if j == idx || !results[j].IsSuccess() {
			continue
		}
		if solutionDistance(results[idx].Solution, results[j].Solution) < tol {
			return true
		}
	}
	return false
}
