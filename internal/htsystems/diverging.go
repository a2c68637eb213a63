package htsystems

import (
	"github.com/san-kum/homotopy/internal/htvector"
	"github.com/san-kum/homotopy/internal/linalg"
)

// DivergingLine is spec.md scenario S6's worked homotopy: the single
// equation H(x,t) = x*t - 1. H(x,1) = x-1 has the start solution x=1;
// H(x,0) = -1 has no solution, so the unique path x(t) = 1/t diverges
// to infinity as t -> 0. Its tangent satisfies ẋ = -x/t, giving a
// constant Puiseux valuation of -1 — an exact, closed-form instance of
// the "path to infinity" endgame classification, used where the rest of
// this package builds zero-dimensional polynomial systems instead.
type DivergingLine struct{}

func (DivergingLine) Size() int { return 1 }

func (DivergingLine) Eval(x htvector.Raw, t complex128) htvector.Raw {
	return htvector.Raw{x[0]*t - 1}
}

func (DivergingLine) JacobianX(x htvector.Raw, t complex128) *linalg.CMatrix {
	j := linalg.NewMatrix(1, 1)
	j.Set(0, 0, t)
	return j
}

func (DivergingLine) JacobianT(x htvector.Raw, t complex128) htvector.Raw {
	return htvector.Raw{x[0]}
}

func (DivergingLine) EvalAndJacobian(x htvector.Raw, t complex128) (htvector.Raw, *linalg.CMatrix, htvector.Raw) {
	return DivergingLine{}.Eval(x, t), DivergingLine{}.JacobianX(x, t), DivergingLine{}.JacobianT(x, t)
}

// DivergingStart returns the start solution x=1 at t=1.
func DivergingStart() htvector.Raw {
	return htvector.Raw{1}
}
