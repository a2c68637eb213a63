package predictor

import (
	"math"
	"testing"

	"github.com/san-kum/homotopy/internal/homotopy"
	"github.com/san-kum/homotopy/internal/htsystems"
	"github.com/san-kum/homotopy/internal/htvector"
)

func TestEulerPredictStepsTowardTarget(t *testing.T) {
	h := htsystems.DivergingLine{}
	eval := homotopy.NewEvaluator(h)
	x := htsystems.DivergingStart()

	xhat, err := Euler{}.Predict(eval, x, 1, -0.01)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	// x(t) = 1/t, so x(0.99) ~ 1.0101; Euler from x(1)=1 with xdot=-x/t=-1
	// and dt=-0.01 gives x + dt*xdot = 1 + 0.01 = 1.01, close to but not
	// exactly the true value -- it's an order-1 approximation.
	want := 1.01
	if math.Abs(real(xhat[0])-want) > 1e-9 {
		t.Errorf("Euler predict: got %v, want ~%v", xhat[0], want)
	}
}

func TestRK4PredictMatchesAnalyticSolutionCloser(t *testing.T) {
	h := htsystems.DivergingLine{}
	eval := homotopy.NewEvaluator(h)
	x := htsystems.DivergingStart()
	rk4 := NewRK4()

	dt := complex(-0.01, 0)
	xhat, err := rk4.Predict(eval, x, 1, dt)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	trueVal := 1.0 / 0.99
	if math.Abs(real(xhat[0])-trueVal) > 1e-6 {
		t.Errorf("RK4 predict: got %v, want ~%v", xhat[0], trueVal)
	}
}

func TestEulerPredictReportsSingularJacobian(t *testing.T) {
	h := htsystems.DivergingLine{}
	eval := homotopy.NewEvaluator(h)
	x := htvector.Raw{1}

	// At t=0, Jx = t = 0: singular.
	_, err := Euler{}.Predict(eval, x, 0, -0.01)
	if err == nil {
		t.Fatal("expected singular-Jacobian error at t=0")
	}
}
