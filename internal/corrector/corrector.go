package corrector

import (
	"math"

	"github.com/san-kum/homotopy/internal/homotopy"
	"github.com/san-kum/homotopy/internal/htvector"
	"github.com/san-kum/homotopy/internal/linalg"
)

// Status classifies the outcome of one Newton correction.
type Status int

const (
	Converged Status = iota
	Diverged
	IllConditioned
)

// Options mirrors the tol/maxIter parameter shape of a classical Newton
// builtin (accuracy, max_corrector_iters from spec.md §3), plus the
// condition-number threshold above which a converged-looking residual
// is still reported IllConditioned.
type Options struct {
	Accuracy        float64
	MaxIters        int
	ConditionTooBig float64
}

func DefaultOptions() Options {
	return Options{
		Accuracy:        1e-7,
		MaxIters:        3,
		ConditionTooBig: 1e14,
	}
}

// Result reports the corrected point and the diagnostics spec.md §4.3
// requires: the final contraction factor ω and a digits_lost estimate.
type Result struct {
	X              htvector.Raw
	Status         Status
	Omega          float64
	DigitsLost     float64
	Residual       float64
	ConditionEst   float64
	IterationsUsed int
}

// Correct runs Newton iteration on H(·, t) starting at xhat, per
// spec.md §4.3: converges if ‖Δx_k‖ <= accuracy within MaxIters steps
// and ω stays bounded.
func Correct(eval *homotopy.Evaluator, xhat htvector.Raw, t complex128, opts Options) Result {
	x := xhat.Clone()
	var prevNorm, omega float64
	var lastCond float64

	for iter := 0; iter < opts.MaxIters; iter++ {
		h, jx, _ := eval.EvalAll(x, t)

		lu, err := linalg.Factorize(jx)
		if err != nil {
			return Result{X: x, Status: Diverged, Omega: omega, Residual: h.Norm(), IterationsUsed: iter}
		}

		neg := make(linalg.Vector, len(h))
		for i, v := range h {
			neg[i] = -v
		}

		// Row-equilibrate before solving: scaling both sides of the
		// linear system by the same per-row factor leaves the solution
		// unchanged but keeps the Jacobian's rows from spanning widely
		// different magnitudes near an ill-conditioned endpoint.
		r := linalg.EquilibrateRows(jx)
		jxEq := linalg.ApplyRowScale(jx, r)
		negEq := linalg.ApplyRowScaleVec(neg, r)
		delta, err := linalg.Solve(jxEq, negEq)
		if err != nil {
			return Result{X: x, Status: Diverged, Omega: omega, Residual: h.Norm(), IterationsUsed: iter}
		}

		deltaNorm := linalg.Norm2(delta)
		if iter > 0 && prevNorm > 0 {
			omega = deltaNorm / (prevNorm * prevNorm)
			if math.IsInf(omega, 1) || math.IsNaN(omega) {
				return Result{X: x, Status: Diverged, Omega: omega, Residual: h.Norm(), IterationsUsed: iter}
			}
		}
		prevNorm = deltaNorm

		x = x.Add(htvector.Raw(delta))

		lastCond = linalg.ConditionEstimate(lu, jx)
		digitsLost := 0.0
		if lastCond > 1 {
			digitsLost = math.Log10(lastCond)
		}

		if lastCond > opts.ConditionTooBig {
			residual := eval.Residual(x, t)
			return Result{
				X: x, Status: IllConditioned, Omega: omega, DigitsLost: digitsLost,
				Residual: residual, ConditionEst: lastCond, IterationsUsed: iter + 1,
			}
		}

		if deltaNorm <= opts.Accuracy {
			residual := eval.Residual(x, t)
			return Result{
				X: x, Status: Converged, Omega: omega, DigitsLost: digitsLost,
				Residual: residual, ConditionEst: lastCond, IterationsUsed: iter + 1,
			}
		}
	}

	residual := eval.Residual(x, t)
	digitsLost := 0.0
	if lastCond > 1 {
		digitsLost = math.Log10(lastCond)
	}
	status := Diverged
	if residual <= opts.Accuracy {
		status = Converged
	}
	return Result{
		X: x, Status: status, Omega: omega, DigitsLost: digitsLost,
		Residual: residual, ConditionEst: lastCond, IterationsUsed: opts.MaxIters,
	}
}
