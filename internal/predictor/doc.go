// Package predictor implements the explicit, ODE-style step of the
// predictor–corrector loop (spec.md §4.2): given (x, t) and a step dt,
// it solves the tangent equation Jx·ẋ = -Jt at one or more stages and
// produces x̂ = x + dt·ẋ (or a higher-order combination of stages). A
// singular Jx at any stage is reported so the step controller can
// shrink dt and retry rather than treat it as fatal.
package predictor
