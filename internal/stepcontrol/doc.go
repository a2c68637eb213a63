// Package stepcontrol implements the adaptive step-size controller of
// spec.md §4.4: it accepts or rejects a predictor–corrector attempt and
// grows or shrinks Δs accordingly, using the corrector's contraction
// factor ω against a target ω* the way integrators.RK45 uses a local
// error estimate against a tolerance.
package stepcontrol
