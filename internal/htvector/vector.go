package htvector

import (
	"math"
	"math/cmplx"
)

// Group describes one homogeneous group of a projective vector: the
// half-open index range [Start, End) into the raw vector, and the index
// (relative to Start) of that group's homogenization variable.
type Group struct {
	Start, End int
	HomIndex   int
}

// Raw is the underlying extended complex vector operated on by the
// predictor, corrector, and step controller regardless of chart kind.
type Raw []complex128

func (r Raw) Clone() Raw {
	c := make(Raw, len(r))
	copy(c, r)
	return c
}

func (r Raw) Add(o Raw) Raw {
	result := make(Raw, len(r))
	for i := range r {
		result[i] = r[i] + o[i]
	}
	return result
}

func (r Raw) Sub(o Raw) Raw {
	result := make(Raw, len(r))
	for i := range r {
		result[i] = r[i] - o[i]
	}
	return result
}

func (r Raw) Scale(factor complex128) Raw {
	result := make(Raw, len(r))
	for i := range r {
		result[i] = r[i] * factor
	}
	return result
}

// Norm returns the Euclidean (2-) norm of the raw vector.
func (r Raw) Norm() float64 {
	sum := 0.0
	for _, v := range r {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	return math.Sqrt(sum)
}

func (r Raw) IsValid() bool {
	for _, v := range r {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return false
		}
	}
	return true
}

// Kind distinguishes the two vector chart shapes.
type Kind int

const (
	KindAffine Kind = iota
	KindProjective
)

// Vector is the tagged-sum solution-vector variant consumed by the
// core tracker. Affine vectors carry no groups and no patch; projective
// vectors carry both.
type Vector struct {
	kind   Kind
	raw    Raw
	groups []Group
	patch  Raw // affine-patch normal vector, len(raw); nil for affine
}

// NewAffine wraps a raw ℂⁿ point as an affine vector.
func NewAffine(x Raw) Vector {
	return Vector{kind: KindAffine, raw: x}
}

// NewProjective wraps a raw extended point with its homogeneous-group
// partition and patch normal vector.
func NewProjective(x Raw, groups []Group, patch Raw) Vector {
	return Vector{kind: KindProjective, raw: x, groups: groups, patch: patch}
}

func (v Vector) IsProjective() bool { return v.kind == KindProjective }

// RawVector returns the extended vector that numerics operate on directly.
func (v Vector) RawVector() Raw { return v.raw }

func (v Vector) Len() int { return len(v.raw) }

// AffineLen returns the dimension of the affine (dehomogenized) chart:
// the raw length minus one homogenization variable per group for
// projective vectors, or the raw length unchanged for affine ones.
func (v Vector) AffineLen() int {
	if v.kind == KindAffine {
		return len(v.raw)
	}
	return len(v.raw) - len(v.groups)
}

func (v Vector) Groups() []Group {
	return v.groups
}

func (v Vector) Patch() Raw { return v.patch }

// WithRaw returns a copy of v with its raw vector replaced; groups and
// patch are shared (they describe the topology, not a particular point).
func (v Vector) WithRaw(x Raw) Vector {
	v.raw = x
	return v
}

// AffineNorm returns the norm of the vector in its affine chart: for an
// affine vector this is the ordinary 2-norm; for a projective vector it
// is the 2-norm after dividing each group by its homogenization
// variable. Per spec, this is the quantity the late at-infinity check
// compares against max_affine_norm; it is a no-op (never triggers) for
// affine vectors, since an affine chart has no chart-at-infinity to
// escape to.
func (v Vector) AffineNorm() float64 {
	if v.kind == KindAffine {
		return v.raw.Norm()
	}
	sum := 0.0
	for _, g := range v.groups {
		hv := v.raw[g.Start+g.HomIndex]
		if hv == 0 {
			return math.Inf(1)
		}
		for i := g.Start; i < g.End; i++ {
			if i == g.Start+g.HomIndex {
				continue
			}
			c := v.raw[i] / hv
			sum += real(c)*real(c) + imag(c)*imag(c)
		}
	}
	return math.Sqrt(sum)
}

// RenormalizePatch recomputes a projective patch normal vector from
// the current point x so that patch . x = 1 still holds: for each
// group, patch_i = conj(x_i) / sum_j |x_j|^2 over that group. This is
// the per-accepted-step refresh update_patch (CoreTrackerOptions) asks
// for; a nil patch (the affine case) passes through unchanged.
func RenormalizePatch(x Raw, groups []Group, patch Raw) Raw {
	if patch == nil {
		return nil
	}
	out := patch.Clone()
	for _, g := range groups {
		sum := 0.0
		for i := g.Start; i < g.End; i++ {
			re, im := real(x[i]), imag(x[i])
			sum += re*re + im*im
		}
		if sum == 0 {
			continue
		}
		for i := g.Start; i < g.End; i++ {
			out[i] = complex(real(x[i]), -imag(x[i])) / complex(sum, 0)
		}
	}
	return out
}

// Dehomogenize returns the AffineLen() affine coordinates of v: for
// each group in order, its entries other than the homogenization
// variable, each divided by that variable. For affine vectors it
// returns a copy of raw.
func (v Vector) Dehomogenize() Raw {
	if v.kind == KindAffine {
		return v.raw.Clone()
	}
	out := make(Raw, 0, v.AffineLen())
	for _, g := range v.groups {
		hv := v.raw[g.Start+g.HomIndex]
		for i := g.Start; i < g.End; i++ {
			if i == g.Start+g.HomIndex {
				continue
			}
			out = append(out, v.raw[i]/hv)
		}
	}
	return out
}
