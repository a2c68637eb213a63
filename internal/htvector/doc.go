// Package htvector provides the homotopy solution-vector variant used
// throughout the path-tracking core.
//
// A [Vector] is a tagged sum of two shapes:
//
//   - [Affine]: a raw ℂⁿ point.
//   - [Projective]: a ℂⁿ⁺ᵏ point partitioned into k homogeneous groups,
//     each carrying the index of its homogenization variable, plus an
//     affine-patch normal vector held fixed during the Cauchy endgame.
//
// All numerics (predictor, corrector, valuation) operate on the
// extended vector returned by [Vector.RawVector]; callers that need the
// affine-only view (for valuation bookkeeping or user-facing output)
// use [Vector.AffineLen] and [Vector.Dehomogenize].
package htvector
