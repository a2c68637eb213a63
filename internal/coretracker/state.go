package coretracker

import "github.com/san-kum/homotopy/internal/htvector"

// State is the mutable per-path state of spec.md §3. DeltaS/DeltaSPrev
// are real fractions of the [0,1] parametrization between TFrom and
// TTo (see Tracker.sStep); a real, monotone Δs is what lets the
// controller reason about "step size" independent of the direction
// of a possibly complex t path (straight segment or Cauchy-loop arc).
type State struct {
	X, XPrev       htvector.Raw
	T, TPrev       complex128
	XDot           htvector.Raw
	S, SPrev       float64
	DeltaS         float64
	DeltaSPrev     float64
	AcceptedSteps  int
	RejectedSteps  int
	LastStepFailed bool
	Omega          float64
	DigitsLost     float64
	Accuracy       float64
	Status         Status
}
