package htsystems

import "github.com/san-kum/homotopy/internal/htvector"

// Katsura5 builds the classical Katsura-5 benchmark system (6
// variables x0..x5), spec.md scenarios S2-S4's "system with 32 paths,
// several of which pass close enough together that naive tracking
// jumps between them" fixture. It is a standard polynomial-homotopy
// stress test precisely because its total-degree start system's 32
// paths crowd together near the end of the track, several close
// enough that a coarse step can jump from one to another.
//
// Equations (rows k = 0..5):
//
//	x_0 + 2*sum_{i=1}^{5} x_i - 1 = 0                                    (k = 0, normalization row)
//	sum_{i=-5}^{5} x_|i| * x_|k-i| - x_k = 0, dropping terms with |k-i| > 5   (k = 1..5)
//
// following Katsura's original recurrence for the 1D lattice
// renormalization-group fixed point.
func Katsura5() (System, System, []htvector.Raw) {
	const n = 6

	polys := make([]Polynomial, n)

	// Normalization: x0 + 2*(x1+x2+x3+x4+x5) - 1 = 0.
	normTerms := []Term{{Coeff: 1, Exponents: expVec(n, 0)}}
	for i := 1; i < n; i++ {
		normTerms = append(normTerms, Term{Coeff: 2, Exponents: expVec(n, i)})
	}
	normTerms = append(normTerms, Term{Coeff: -1, Exponents: make([]int, n)})
	polys[0] = Polynomial{Degree: 1, Terms: normTerms}

	// Katsura recurrence rows k = 1..4 (0-indexed x0..x5):
	// x_k - sum_{i=-5}^{5} x_|i| * x_|k-i| (clamped to 0..5) = 0, degree 2.
	for k := 1; k < n-1; k++ {
		var terms []Term
		for i := -(n - 1); i <= n-1; i++ {
			j := k - i
			if j < -(n-1) || j > n-1 {
				continue
			}
			a, b := absInt2(i), absInt2(j)
			exps := make([]int, n)
			exps[a]++
			exps[b]++
			terms = append(terms, Term{Coeff: 1, Exponents: exps})
		}
		terms = append(terms, Term{Coeff: -1, Exponents: expVec(n, k)})
		polys[k] = Polynomial{Degree: 2, Terms: terms}
	}

	// Closing row: row 5 is the trailing recurrence row k = n-1, built
	// by the same rule, which makes the system square (6 rows, 6
	// variables).
	k := n - 1
	var terms []Term
	for i := -(n - 1); i <= n-1; i++ {
		j := k - i
		if j < -(n-1) || j > n-1 {
			continue
		}
		a, b := absInt2(i), absInt2(j)
		exps := make([]int, n)
		exps[a]++
		exps[b]++
		terms = append(terms, Term{Coeff: 1, Exponents: exps})
	}
	terms = append(terms, Term{Coeff: -1, Exponents: expVec(n, k)})
	polys[k] = Polynomial{Degree: 2, Terms: terms}

	target := System{N: n, Polys: polys}
	start, solutions := TotalDegreeStart(target)
	return start, target, solutions
}

func expVec(n, i int) []int {
	e := make([]int, n)
	e[i] = 1
	return e
}

func absInt2(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
