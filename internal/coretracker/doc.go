// Package coretracker implements the per-path predictor–corrector
// orchestration of spec.md §4.5 (component C5): setup!, step!, and
// track! driving the predictor, corrector, and step controller between
// two t-values. It is grounded on internal/sim.Simulator's Run loop,
// generalized from a fixed step count over real ODE state to a
// status-driven loop over complex homotopy-path state, and on
// internal/dynamo/errors.go's sentinel-plus-wrapper error pattern.
package coretracker
