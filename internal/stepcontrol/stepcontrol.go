package stepcontrol

import "math"

// Controller adapts Δs between predictor–corrector attempts, grounded
// directly on integrators.RK45's safety/minScale/maxScale fields and
// accept/reject scale formulas, generalized from a fixed local-error
// ratio to the corrector's contraction factor ω.
type Controller struct {
	TargetOmega  float64
	Safety       float64
	MinScale     float64
	MaxScale     float64
	RejectFactor float64
}

func NewController() *Controller {
	return &Controller{
		TargetOmega:  0.25,
		Safety:       0.9,
		MinScale:     0.2,
		MaxScale:     4.0,
		RejectFactor: 0.25,
	}
}

// Accept computes the next Δs after an accepted step, given the
// corrector's final ω. A zero or tiny ω (fast-converging, well inside
// tolerance) grows the step up to MaxScale; an ω near TargetOmega holds
// it roughly steady.
func (c *Controller) Accept(ds complex128, omega float64) complex128 {
	scale := c.MaxScale
	if omega > 1e-12 {
		ratio := c.TargetOmega / omega
		scale = c.Safety * math.Pow(ratio, 0.5)
		scale = math.Max(c.MinScale, math.Min(c.MaxScale, scale))
	}
	return ds * complex(scale, 0)
}

// Reject shrinks Δs after a diverged or ill-conditioned attempt.
func (c *Controller) Reject(ds complex128) complex128 {
	return ds * complex(c.RejectFactor, 0)
}
