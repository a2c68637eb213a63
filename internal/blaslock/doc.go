// Package blaslock pins the process-wide linear-algebra thread count
// to one while a linear-algebra routine runs. internal/linalg's
// Factorize, (*LU).Solve and (*LU).SolveTranspose each take the pin
// for their own body and restore the previous count on return, so every
// factorization and solve made during a path track runs pinned; the
// count is not held at one between those calls. internal/linalg is pure Go and
// has no real thread pool of its own, but the hook here is exactly
// where a cgo BLAS binding (OpenBLAS, MKL) would plug in, and the
// scoped-acquisition shape matches coretracker.Tracker.WithOverrides
// and coretracker.Tracker.FixPatch.
package blaslock
