package htsystems

import (
	"github.com/san-kum/homotopy/internal/htvector"
	"github.com/san-kum/homotopy/internal/linalg"
)

// Term is a single monomial coeff * x1^e1 * x2^e2 * ... * xn^en.
type Term struct {
	Coeff     complex128
	Exponents []int
}

func (t Term) eval(x []complex128) complex128 {
	v := t.Coeff
	for i, e := range t.Exponents {
		for k := 0; k < e; k++ {
			v *= x[i]
		}
	}
	return v
}

// partial returns d(term)/d(x_i) as a coefficient and exponent vector.
func (t Term) partial(i int) (Term, bool) {
	if t.Exponents[i] == 0 {
		return Term{}, false
	}
	exps := make([]int, len(t.Exponents))
	copy(exps, t.Exponents)
	coeff := t.Coeff * complex(float64(exps[i]), 0)
	exps[i]--
	return Term{Coeff: coeff, Exponents: exps}, true
}

// Polynomial is a sum of terms in n variables.
type Polynomial struct {
	Terms  []Term
	Degree int
}

func (p Polynomial) Eval(x []complex128) complex128 {
	var sum complex128
	for _, term := range p.Terms {
		sum += term.eval(x)
	}
	return sum
}

// Gradient returns d(p)/dx_i for i = 0..n-1, the n affine variables p
// is defined over. n is passed explicitly rather than taken from
// len(x) because x may carry extra homogenization coordinates appended
// past index n-1 for a projective-embedded point; those never
// participate in a Term's own Exponents and must not be differentiated
// against.
func (p Polynomial) Gradient(x []complex128, n int) []complex128 {
	grad := make([]complex128, n)
	for i := 0; i < n; i++ {
		var sum complex128
		for _, term := range p.Terms {
			if dterm, ok := term.partial(i); ok {
				sum += dterm.eval(x)
			}
		}
		grad[i] = sum
	}
	return grad
}

// System is a dense polynomial system F: C^n -> C^n (one polynomial per
// output coordinate, same number of variables as equations — the
// square, zero-dimensional case spec.md assumes throughout §8).
type System struct {
	Polys []Polynomial
	N     int
}

func (s System) Eval(x htvector.Raw) htvector.Raw {
	out := make(htvector.Raw, len(s.Polys))
	for i, p := range s.Polys {
		out[i] = p.Eval(x)
	}
	return out
}

func (s System) Jacobian(x htvector.Raw) *linalg.CMatrix {
	j := linalg.NewMatrix(len(s.Polys), s.N)
	for i, p := range s.Polys {
		grad := p.Gradient(x, s.N)
		for k, v := range grad {
			j.Set(i, k, v)
		}
	}
	return j
}
