// Package pathtracker implements component C8 of spec.md §4.8: it
// wraps a CoreTracker, drives the valuation estimator (component C6)
// after each accepted step, decides when a path has entered the
// endgame zone, and invokes the Cauchy endgame (component C7) on
// singular-looking candidates, classifying the final endpoint into a
// PathResult. It is grounded on internal/sim/simulator.go's top-level
// orchestration loop and internal/experiment/registry.go's declarative
// status-mapping style.
package pathtracker
