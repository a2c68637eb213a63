package htsystems

import (
	"math"

	"github.com/san-kum/homotopy/internal/htvector"
	"github.com/san-kum/homotopy/internal/linalg"
)

// StraightLine is the classical convex-combination homotopy
// H(x,t) = t*G(x) + (1-t)*F(x), so H(x,1) = G(x) and H(x,0) = F(x), the
// shape spec.md §1 requires of any Homotopy. Start and Target must have
// the same dimension.
type StraightLine struct {
	Start, Target System
}

func NewStraightLine(start, target System) *StraightLine {
	return &StraightLine{Start: start, Target: target}
}

func (h *StraightLine) Size() int { return h.Target.N }

func (h *StraightLine) Eval(x htvector.Raw, t complex128) htvector.Raw {
	g := h.Start.Eval(x)
	f := h.Target.Eval(x)
	out := make(htvector.Raw, len(f))
	for i := range out {
		out[i] = t*g[i] + (1-t)*f[i]
	}
	return out
}

func (h *StraightLine) JacobianX(x htvector.Raw, t complex128) *linalg.CMatrix {
	jg := h.Start.Jacobian(x)
	jf := h.Target.Jacobian(x)
	out := linalg.NewMatrix(jf.Rows, jf.Cols)
	for i := 0; i < jf.Rows; i++ {
		for j := 0; j < jf.Cols; j++ {
			out.Set(i, j, t*jg.At(i, j)+(1-t)*jf.At(i, j))
		}
	}
	return out
}

func (h *StraightLine) JacobianT(x htvector.Raw, t complex128) htvector.Raw {
	g := h.Start.Eval(x)
	f := h.Target.Eval(x)
	out := make(htvector.Raw, len(f))
	for i := range out {
		out[i] = g[i] - f[i]
	}
	return out
}

func (h *StraightLine) EvalAndJacobian(x htvector.Raw, t complex128) (htvector.Raw, *linalg.CMatrix, htvector.Raw) {
	return h.Eval(x, t), h.JacobianX(x, t), h.JacobianT(x, t)
}

// TotalDegreeStart builds the canonical total-degree start system for
// target: one equation x_i^{d_i} - c_i per variable, where d_i is the
// degree of target's i-th polynomial and c_i is a fixed unit-modulus
// constant. Its D = prod(d_i) roots are the d_i-th roots of c_i in each
// coordinate, independently combined — the "zero-dimensional system
// whose total-degree homotopy has D paths" of spec.md §8.
func TotalDegreeStart(target System) (System, []htvector.Raw) {
	n := target.N
	degrees := make([]int, n)
	for i, p := range target.Polys {
		degrees[i] = p.Degree
	}

	polys := make([]Polynomial, n)
	consts := make([]complex128, n)
	for i, d := range degrees {
		// c_i = unit modulus, spread in angle so roots of distinct
		// coordinates don't accidentally align.
		angle := 2 * math.Pi * float64(i) / float64(n+1)
		c := complex(math.Cos(angle), math.Sin(angle))
		consts[i] = c

		exps := make([]int, n)
		exps[i] = d
		polys[i] = Polynomial{
			Degree: d,
			Terms: []Term{
				{Coeff: 1, Exponents: exps},
				{Coeff: -c, Exponents: make([]int, n)},
			},
		}
	}

	start := System{Polys: polys, N: n}
	solutions := enumerateRoots(degrees, consts)
	return start, solutions
}

// enumerateRoots returns every combination of d_i-th roots of c_i, one
// coordinate at a time, via a simple odometer over the digit ranges.
func enumerateRoots(degrees []int, consts []complex128) []htvector.Raw {
	n := len(degrees)
	total := 1
	for _, d := range degrees {
		total *= d
	}

	roots := make([][]complex128, n)
	for i, d := range degrees {
		roots[i] = nthRoots(consts[i], d)
	}

	out := make([]htvector.Raw, total)
	idx := make([]int, n)
	for k := 0; k < total; k++ {
		sol := make(htvector.Raw, n)
		for i := 0; i < n; i++ {
			sol[i] = roots[i][idx[i]]
		}
		out[k] = sol

		for i := 0; i < n; i++ {
			idx[i]++
			if idx[i] < degrees[i] {
				break
			}
			idx[i] = 0
		}
	}
	return out
}

// nthRoots returns the d complex solutions of x^d = c.
func nthRoots(c complex128, d int) []complex128 {
	r := math.Hypot(real(c), imag(c))
	theta := math.Atan2(imag(c), real(c))
	mag := math.Pow(r, 1/float64(d))

	roots := make([]complex128, d)
	for k := 0; k < d; k++ {
		angle := (theta + 2*math.Pi*float64(k)) / float64(d)
		roots[k] = complex(mag*math.Cos(angle), mag*math.Sin(angle))
	}
	return roots
}
