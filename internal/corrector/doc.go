// Package corrector implements the Newton-iteration refinement step of
// the predictor–corrector loop (spec.md §4.3). It tracks the Newton
// contraction factor ω and a digits_lost estimate derived from the
// condition number of the Jacobian, and classifies each attempt as
// converged, diverged, or ill-conditioned.
package corrector
