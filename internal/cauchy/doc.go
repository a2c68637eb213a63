// Package cauchy implements the Cauchy-integral endgame (spec.md
// §4.7, component C7): recovering a possibly-singular path endpoint by
// averaging the tracked point around a small polygonal loop enclosing
// t=0, repeating with an increased winding number until the loop
// closes. It drives internal/coretracker.Tracker around the loop the
// same way internal/sim/simulator.go drives a single dynamical system
// forward, but reentrantly and counting windings instead of time.
package cauchy
