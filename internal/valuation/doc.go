// Package valuation estimates the per-coordinate Puiseux valuation
// ω_i(t) of a tracked path and the accuracy with which that estimate
// has converged, per spec.md §4.6 (component C6). The estimator is
// grounded on internal/analysis/lyapunov.go's per-coordinate
// independent loop: valuation here plays the role Lyapunov exponent
// plays there, one scalar maintained per coordinate across calls.
package valuation
