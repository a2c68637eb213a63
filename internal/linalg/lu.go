package linalg

import (
	"errors"
	"math/cmplx"

	"github.com/san-kum/homotopy/internal/blaslock"
)

// ErrSingular is returned by Factorize when a pivot is (numerically)
// zero; the predictor and corrector both treat this as a rejected step
// rather than a fatal error.
var ErrSingular = errors.New("linalg: singular matrix")

// LU holds an in-place LU factorization of a square matrix with partial
// pivoting: PA = LU, L unit-lower-triangular, U upper-triangular.
type LU struct {
	n     int
	a     *CMatrix // overwritten with L (below diag) and U (on/above diag)
	piv   []int    // piv[i] = row swapped into row i
	signP int      // sign of the permutation, for determinant/condition bookkeeping
}

// Factorize computes the LU decomposition of a (which is cloned, not
// mutated) with partial pivoting. The decomposition loop pins the
// linear-algebra thread count for its own duration only, per spec.md
// §5, so concurrent callers (pathjump.RunAll's per-path goroutines)
// serialize just around this arithmetic, not around the whole path.
func Factorize(a *CMatrix) (*LU, error) {
	if a.Rows != a.Cols {
		return nil, errors.New("linalg: Factorize requires a square matrix")
	}
	restore := blaslock.Pin()
	defer restore()

	n := a.Rows
	m := a.Clone()
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	signP := 1

	for k := 0; k < n; k++ {
		// Partial pivot: find the largest-magnitude entry in column k,
		// rows k..n-1.
		maxRow, maxAbs := k, cmplx.Abs(m.At(k, k))
		for i := k + 1; i < n; i++ {
			if v := cmplx.Abs(m.At(i, k)); v > maxAbs {
				maxRow, maxAbs = i, v
			}
		}
		if maxAbs == 0 {
			return nil, ErrSingular
		}
		if maxRow != k {
			swapRows(m, k, maxRow)
			piv[k], piv[maxRow] = piv[maxRow], piv[k]
			signP = -signP
		}

		pivot := m.At(k, k)
		for i := k + 1; i < n; i++ {
			factor := m.At(i, k) / pivot
			m.Set(i, k, factor)
			for j := k + 1; j < n; j++ {
				m.Set(i, j, m.At(i, j)-factor*m.At(k, j))
			}
		}
	}

	return &LU{n: n, a: m, piv: piv, signP: signP}, nil
}

func swapRows(m *CMatrix, i, j int) {
	for c := 0; c < m.Cols; c++ {
		m.data[i*m.Cols+c], m.data[j*m.Cols+c] = m.data[j*m.Cols+c], m.data[i*m.Cols+c]
	}
}

// Solve returns x such that the original A·x = b, using the stored
// factorization. Pins the thread count for the duration of the two
// triangular solves only.
func (lu *LU) Solve(b Vector) Vector {
	restore := blaslock.Pin()
	defer restore()

	n := lu.n
	y := make(Vector, n)
	for i := 0; i < n; i++ {
		y[i] = b[lu.piv[i]]
	}

	// Forward substitution, L is unit-lower-triangular.
	for i := 0; i < n; i++ {
		var sum complex128
		for j := 0; j < i; j++ {
			sum += lu.a.At(i, j) * y[j]
		}
		y[i] -= sum
	}

	// Back substitution, U is upper-triangular.
	x := make(Vector, n)
	for i := n - 1; i >= 0; i-- {
		sum := complex128(0)
		for j := i + 1; j < n; j++ {
			sum += lu.a.At(i, j) * x[j]
		}
		x[i] = (y[i] - sum) / lu.a.At(i, i)
	}
	return x
}

// Determinant returns det(A) from the stored factorization.
func (lu *LU) Determinant() complex128 {
	det := complex(float64(lu.signP), 0)
	for i := 0; i < lu.n; i++ {
		det *= lu.a.At(i, i)
	}
	return det
}

// Solve factors a and solves a·x = b in one call; equivalent to
// Factorize followed by Solve, provided for the common single-shot
// case in the predictor and corrector.
func Solve(a *CMatrix, b Vector) (Vector, error) {
	lu, err := Factorize(a)
	if err != nil {
		return nil, err
	}
	return lu.Solve(b), nil
}
