package linalg

import (
	"math"

	"github.com/san-kum/homotopy/internal/blaslock"
)

// ConditionEstimate returns a cheap estimate of cond_1(a) = ||a||_1 *
// ||a^-1||_1, using the factored lu of a. ||a^-1||_1 is estimated with a
// few steps of the Hager/Higham 1-norm power iteration: solve against a
// vector whose entries are all 1/n, solve the transposed system against
// the sign pattern of the result, and restart from the unit vector at
// that solution's largest entry, at most four times.
// This is the "matrix condition estimate" collaborator contract from
// spec.md §6, traded for exactness against O(n) extra solves instead of
// an O(n^3) explicit inverse.
func ConditionEstimate(lu *LU, a *CMatrix) float64 {
	n := lu.n
	if n == 0 {
		return 1
	}

	x := make(Vector, n)
	for i := range x {
		x[i] = complex(1.0/float64(n), 0)
	}

	normInvEstimate := 0.0
	const iters = 4
	for iter := 0; iter < iters; iter++ {
		y := lu.Solve(x)
		normInvEstimate = Norm1Vec(y)

		signs := make(Vector, n)
		for i := range y {
			signs[i] = complex(sign(real(y[i])), 0)
		}
		z := lu.SolveTranspose(signs)

		maxIdx, maxAbs := 0, 0.0
		for i, v := range z {
			if a := absC(v); a > maxAbs {
				maxIdx, maxAbs = i, a
			}
		}
		if maxAbs <= Norm1Vec(z)/float64(n) {
			break
		}
		for i := range x {
			x[i] = 0
		}
		x[maxIdx] = 1
	}

	return a.Norm1() * normInvEstimate
}

// SolveTranspose solves A^T x = b using the stored factorization
// PA = LU, i.e. A^T = U^T L^T P, by solving U^T L^T y = b then
// un-permuting.
func (lu *LU) SolveTranspose(b Vector) Vector {
	restore := blaslock.Pin()
	defer restore()

	n := lu.n
	y := make(Vector, n)

	// Solve U^T y = b (U^T lower-triangular).
	for i := 0; i < n; i++ {
		sum := b[i]
		for j := 0; j < i; j++ {
			sum -= lu.a.At(j, i) * y[j]
		}
		y[i] = sum / lu.a.At(i, i)
	}

	// Solve L^T z = y (L^T upper, unit diagonal).
	z := make(Vector, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for j := i + 1; j < n; j++ {
			sum -= lu.a.At(j, i) * z[j]
		}
		z[i] = sum
	}

	x := make(Vector, n)
	for i, p := range lu.piv {
		x[p] = z[i]
	}
	return x
}

func Norm1Vec(v Vector) float64 {
	sum := 0.0
	for _, c := range v {
		sum += absC(c)
	}
	return sum
}

func absC(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// EquilibrateRows computes row scaling factors r such that diag(r)*a has
// unit-magnitude largest entry per row, the row-equilibration scaling
// collaborator contract from spec.md §6. Applying r to both a and any
// right-hand side before solving improves the conditioning of nearly
// singular Jacobians encountered near path endpoints.
func EquilibrateRows(a *CMatrix) []float64 {
	r := make([]float64, a.Rows)
	for i := 0; i < a.Rows; i++ {
		maxAbs := 0.0
		for j := 0; j < a.Cols; j++ {
			if v := absC(a.At(i, j)); v > maxAbs {
				maxAbs = v
			}
		}
		if maxAbs == 0 {
			r[i] = 1
		} else {
			r[i] = 1 / maxAbs
		}
	}
	return r
}

// ApplyRowScale returns diag(r)*a.
func ApplyRowScale(a *CMatrix, r []float64) *CMatrix {
	out := NewMatrix(a.Rows, a.Cols)
	for i := 0; i < a.Rows; i++ {
		s := complex(r[i], 0)
		for j := 0; j < a.Cols; j++ {
			out.Set(i, j, a.At(i, j)*s)
		}
	}
	return out
}

// ApplyRowScaleVec returns diag(r)*v.
func ApplyRowScaleVec(v Vector, r []float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * complex(r[i], 0)
	}
	return out
}
