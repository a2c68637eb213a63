// Package linalg provides the dense complex128 linear-algebra
// primitives the path-tracking core treats as an external collaborator
// per spec: LU factorization with partial pivoting, a triangular solve,
// a cheap condition-number estimate, row-equilibration scaling, and a
// 2-norm. None of this is meant to compete with a BLAS/LAPACK binding;
// it is the small Gaussian-elimination kernel a path tracker needs for
// n in the tens, not the thousands — see DESIGN.md for why this is
// hand-rolled rather than imported.
package linalg
