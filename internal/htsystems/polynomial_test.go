package htsystems

import (
	"math"
	"testing"

	"github.com/san-kum/homotopy/internal/htvector"
)

func TestPolynomialEvalAndGradient(t *testing.T) {
	// p(x,y) = x^2 - 2
	p := Polynomial{Degree: 2, Terms: []Term{
		{Coeff: 1, Exponents: []int{2, 0}},
		{Coeff: -2, Exponents: []int{0, 0}},
	}}

	x := []complex128{3, 0}
	if got := p.Eval(x); got != 7 {
		t.Errorf("Eval: got %v, want 7", got)
	}

	grad := p.Gradient(x, 2)
	if grad[0] != 6 || grad[1] != 0 {
		t.Errorf("Gradient: got %v, want [6 0]", grad)
	}
}

func TestTotalDegreeStartRootCountAndResidual(t *testing.T) {
	start, target, solutions := QuadraticWithLinearConstraint()
	_ = target

	wantPaths := 2
	if len(solutions) != wantPaths {
		t.Fatalf("expected %d start solutions, got %d", wantPaths, len(solutions))
	}

	for _, sol := range solutions {
		res := start.Eval(sol)
		for _, r := range res {
			if math.Hypot(real(r), imag(r)) > 1e-9 {
				t.Errorf("start solution %v does not satisfy start system: residual %v", sol, r)
			}
		}
	}
}

func TestStraightLineEndpointsMatchGAndF(t *testing.T) {
	start, target, _ := QuadraticWithLinearConstraint()
	h := NewStraightLine(start, target)

	x := htvector.Raw{1 + 1i, 2}

	atOne := h.Eval(x, 1)
	g := start.Eval(x)
	for i := range atOne {
		if atOne[i] != g[i] {
			t.Errorf("H(x,1) should equal G(x): got %v, want %v", atOne, g)
		}
	}

	atZero := h.Eval(x, 0)
	f := target.Eval(x)
	for i := range atZero {
		if atZero[i] != f[i] {
			t.Errorf("H(x,0) should equal F(x): got %v, want %v", atZero, f)
		}
	}
}

func TestDivergingLineValuationIsNegativeOne(t *testing.T) {
	h := DivergingLine{}
	x := DivergingStart()
	tt := complex(0.5, 0)

	res := h.Eval(x, 1)
	if res[0] != 0 {
		t.Errorf("expected H(1,1)=0, got %v", res[0])
	}

	jx := h.JacobianX(x, tt)
	jt := h.JacobianT(x, tt)
	if jx.At(0, 0) != tt {
		t.Errorf("JacobianX: got %v, want %v", jx.At(0, 0), tt)
	}
	if jt[0] != x[0] {
		t.Errorf("JacobianT: got %v, want %v", jt[0], x[0])
	}

	// ẋ = -Jt/Jx, and ω = t·Re(x·conj(ẋ))/|x|² is -1 at every real t.
	xdot := -jt[0] / jx.At(0, 0)
	omega := real(tt) * (real(x[0])*real(xdot) + imag(x[0])*imag(xdot)) / (real(x[0])*real(x[0]) + imag(x[0])*imag(x[0]))
	if math.Abs(omega+1) > 1e-12 {
		t.Errorf("valuation: got %v, want -1", omega)
	}
}
