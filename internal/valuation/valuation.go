package valuation

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/homotopy/internal/htvector"
)

// Estimator tracks ω_i(t) and its step-to-step accuracy for each
// affine coordinate of a path, across repeated calls to Update — one
// call per accepted core-tracker step, per spec.md §4.6.
type Estimator struct {
	MinValAccuracy float64

	omega    []float64
	acc      []float64
	haveOmega bool
}

// NewEstimator allocates an estimator for a vector with affineLen
// affine coordinates (htvector.Vector.AffineLen()).
func NewEstimator(affineLen int, minValAccuracy float64) *Estimator {
	acc := make([]float64, affineLen)
	for i := range acc {
		acc[i] = math.Inf(1)
	}
	return &Estimator{
		MinValAccuracy: minValAccuracy,
		omega:          make([]float64, affineLen),
		acc:            acc,
	}
}

// Omega returns the per-affine-coordinate valuation computed by the
// most recent Update call.
func (e *Estimator) Omega() []float64 {
	out := make([]float64, len(e.omega))
	copy(out, e.omega)
	return out
}

// rawOmega computes ω(t) = t·Re(x·conj(ẋ)) / |x|² for every raw
// coordinate (spec.md §4.6's formula, applied componentwise before any
// projective dehomogenization).
func rawOmega(x, xdot htvector.Raw, t complex128) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		denom := real(x[i])*real(x[i]) + imag(x[i])*imag(x[i])
		if denom == 0 {
			out[i] = math.Inf(1)
			continue
		}
		num := t * x[i] * cmplx.Conj(xdot[i])
		out[i] = real(num) / denom
	}
	return out
}

// dehomogenizeOmega subtracts each group's homogenization-variable
// valuation from its other members, per spec.md §4.6 ("for projective
// vectors, subtract the valuation of the homogenization variable
// within each homogeneous group"), in the same coordinate order as
// htvector.Vector.Dehomogenize.
func dehomogenizeOmega(v htvector.Vector, raw []float64) []float64 {
	if !v.IsProjective() {
		out := make([]float64, len(raw))
		copy(out, raw)
		return out
	}
	out := make([]float64, 0, v.AffineLen())
	for _, g := range v.Groups() {
		homOmega := raw[g.Start+g.HomIndex]
		for i := g.Start; i < g.End; i++ {
			if i == g.Start+g.HomIndex {
				continue
			}
			out = append(out, raw[i]-homOmega)
		}
	}
	return out
}

// Update computes this step's per-coordinate valuation from the
// current extended vector v, its tangent xdot (same raw length as v),
// and the parameter values t (current) and tPrev (previous accepted
// step, or t itself on the very first call). It returns the new
// valuations alongside a boolean per coordinate reporting whether that
// coordinate's valuation is now declared accurate, per spec.md §4.6's
// two-sided recurrence.
func (e *Estimator) Update(v htvector.Vector, xdot htvector.Raw, t, tPrev complex128) (omega []float64, accurate []bool) {
	raw := rawOmega(v.RawVector(), xdot, t)
	next := dehomogenizeOmega(v, raw)

	accurate = make([]bool, len(next))
	if e.haveOmega {
		dt := t - tPrev
		denom := math.Log(1 + cmplx.Abs(dt)/cmplx.Abs(t))
		for i := range next {
			var curAcc float64
			switch {
			case denom == 0:
				curAcc = math.Inf(1)
			default:
				curAcc = math.Abs(next[i]-e.omega[i]) / denom
			}

			prevAcc := e.acc[i]
			accurate[i] = prevAcc < e.MinValAccuracy &&
				(curAcc < prevAcc || curAcc < e.MinValAccuracy*e.MinValAccuracy)

			e.acc[i] = curAcc
		}
	}

	e.omega = next
	e.haveOmega = true
	return e.Omega(), accurate
}

// AllAccurate reports whether every entry of accurate is true (a
// coordinate slice with zero length is vacuously accurate, matching
// a zero-dimensional system).
func AllAccurate(accurate []bool) bool {
	for _, a := range accurate {
		if !a {
			return false
		}
	}
	return true
}

// AnyFractional reports whether any accurate, non-negative valuation
// in omega (gated by accurate) is non-integer, per spec.md §4.7's
// "fractional detected as |round(ω) − ω| > 0.1" rule.
func AnyFractional(omega []float64, accurate []bool) bool {
	for i, w := range omega {
		if !accurate[i] || w < 0 {
			continue
		}
		if math.Abs(math.Round(w)-w) > 0.1 {
			return true
		}
	}
	return false
}

// AllNonNegative reports whether every accurate valuation is >= 0,
// the other half of spec.md §4.7's Cauchy-endgame precondition.
func AllNonNegative(omega []float64, accurate []bool) bool {
	for i, w := range omega {
		if accurate[i] && w < 0 {
			return false
		}
	}
	return true
}
