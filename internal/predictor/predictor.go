package predictor

import (
	"github.com/san-kum/homotopy/internal/homotopy"
	"github.com/san-kum/homotopy/internal/htvector"
	"github.com/san-kum/homotopy/internal/linalg"
)

// Predictor produces a predicted point x̂(t+dt) from the current point
// x(t), locally accurate to O(dt^p), p >= 2 per spec.md §4.2.
type Predictor interface {
	Predict(eval *homotopy.Evaluator, x htvector.Raw, t, dt complex128) (htvector.Raw, error)
}

// Tangent solves Jx(x,t)·ẋ = -Jt(x,t) for ẋ. It is the shared building
// block of every predictor stage, and is also used directly by the
// core tracker to report ẋ in CoreTrackerState after each accepted step
// (spec.md §3) and by the valuation estimator (component C6).
func Tangent(eval *homotopy.Evaluator, x htvector.Raw, t complex128) (htvector.Raw, error) {
	return tangent(eval, x, t)
}

func tangent(eval *homotopy.Evaluator, x htvector.Raw, t complex128) (htvector.Raw, error) {
	_, jx, jt := eval.EvalAll(x, t)
	neg := make(linalg.Vector, len(jt))
	for i, v := range jt {
		neg[i] = -v
	}
	xdot, err := linalg.Solve(jx, neg)
	if err != nil {
		return nil, err
	}
	return htvector.Raw(xdot), nil
}

// Euler is the order-1 tangent predictor: x̂ = x + dt·ẋ(x,t).
type Euler struct{}

func NewEuler() *Euler { return &Euler{} }

func (Euler) Predict(eval *homotopy.Evaluator, x htvector.Raw, t, dt complex128) (htvector.Raw, error) {
	xdot, err := tangent(eval, x, t)
	if err != nil {
		return nil, err
	}
	return x.Add(xdot.Scale(dt)), nil
}

// RK4 is the classical 4-stage tangent predictor, ported from
// integrators.RK4.Step: each stage evaluates the tangent ODE at a
// predicted midpoint rather than a fixed vector field, giving local
// error O(dt^5) like the teacher's real-valued version.
type RK4 struct {
	scratch htvector.Raw
}

func NewRK4() *RK4 { return &RK4{} }

func (r *RK4) ensureScratch(n int) {
	if len(r.scratch) != n {
		r.scratch = make(htvector.Raw, n)
	}
}

func (r *RK4) Predict(eval *homotopy.Evaluator, x htvector.Raw, t, dt complex128) (htvector.Raw, error) {
	n := len(x)
	r.ensureScratch(n)
	half := dt / 2

	k1, err := tangent(eval, x, t)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + half*k1[i]
	}
	k2, err := tangent(eval, r.scratch, t+half)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + half*k2[i]
	}
	k3, err := tangent(eval, r.scratch, t+half)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*k3[i]
	}
	k4, err := tangent(eval, r.scratch, t+dt)
	if err != nil {
		return nil, err
	}

	result := make(htvector.Raw, n)
	sixth := dt / 6
	for i := 0; i < n; i++ {
		result[i] = x[i] + sixth*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return result, nil
}
