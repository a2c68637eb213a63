package corrector

import (
	"math"
	"testing"

	"github.com/san-kum/homotopy/internal/homotopy"
	"github.com/san-kum/homotopy/internal/htsystems"
	"github.com/san-kum/homotopy/internal/htvector"
)

func TestCorrectConvergesOnExactRoot(t *testing.T) {
	start, target, solutions := htsystems.QuadraticWithLinearConstraint()
	_ = target
	h := htsystems.NewStraightLine(start, target)
	eval := homotopy.NewEvaluator(h)

	x0 := solutions[0]
	result := Correct(eval, x0, 1, DefaultOptions())

	if result.Status != Converged {
		t.Fatalf("expected Converged, got %v (residual %v)", result.Status, result.Residual)
	}
	if result.Residual > DefaultOptions().Accuracy*10 {
		t.Errorf("residual too large: %v", result.Residual)
	}
}

func TestCorrectConvergesAwayFromExactRoot(t *testing.T) {
	start, target, _ := htsystems.QuadraticWithLinearConstraint()
	h := htsystems.NewStraightLine(start, target)
	eval := homotopy.NewEvaluator(h)

	// Start at x = 1.01, next to the start root's x = 1, and y = 0, a
	// unit away from its y = exp(2πi/3); the second equation is linear
	// in y, so Newton at t = 0.99 still converges.
	xhat := htvector.Raw{1.01, 0.0}
	result := Correct(eval, xhat, 0.99, DefaultOptions())

	if result.Status != Converged {
		t.Fatalf("expected Converged, got %v", result.Status)
	}
}

func TestCorrectReportsDivergedWhenJacobianSingular(t *testing.T) {
	hsys := htsystems.DivergingLine{}
	eval := homotopy.NewEvaluator(hsys)

	result := Correct(eval, htvector.Raw{1}, 0, DefaultOptions())
	if result.Status != Diverged {
		t.Fatalf("expected Diverged at singular t=0, got %v", result.Status)
	}
}

func TestCorrectDigitsLostIsNonNegative(t *testing.T) {
	start, target, solutions := htsystems.QuadraticWithLinearConstraint()
	h := htsystems.NewStraightLine(start, target)
	eval := homotopy.NewEvaluator(h)

	result := Correct(eval, solutions[0], 1, DefaultOptions())
	if result.DigitsLost < 0 || math.IsNaN(result.DigitsLost) {
		t.Errorf("expected non-negative digits_lost, got %v", result.DigitsLost)
	}
}
