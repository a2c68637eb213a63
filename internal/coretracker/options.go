package coretracker

// Options are the per-tracker defaults from spec.md §3.
type Options struct {
	Accuracy          float64
	MaxCorrectorIters int
	MaxSteps          int
	InitialStepSize   float64
	MinStepSize       float64
	UpdatePatch       bool
}

func DefaultOptions() Options {
	return Options{
		Accuracy:          1e-7,
		MaxCorrectorIters: 3,
		MaxSteps:          10_000,
		InitialStepSize:   0.1,
		MinStepSize:       1e-14,
		UpdatePatch:       true,
	}
}

// OptionOverrides is the per-call override set spec.md §4.9 requires
// track! to accept re-entrantly: accuracy, max_corrector_iters, and
// max_steps, each optional (nil means "keep current").
type OptionOverrides struct {
	Accuracy          *float64
	MaxCorrectorIters *int
	MaxSteps          *int
}

// WithOverrides applies ov to the tracker's options and returns a
// restore function that undoes the change, even if the caller panics
// before calling it (callers are expected to `defer` the result). This
// is the scoped-acquisition pattern DESIGN NOTES §9 calls for, reused
// for both option overrides (here) and patch fix/unfix (patch.go).
func (tr *Tracker) WithOverrides(ov OptionOverrides) func() {
	prev := tr.opts
	if ov.Accuracy != nil {
		tr.opts.Accuracy = *ov.Accuracy
	}
	if ov.MaxCorrectorIters != nil {
		tr.opts.MaxCorrectorIters = *ov.MaxCorrectorIters
	}
	if ov.MaxSteps != nil {
		tr.opts.MaxSteps = *ov.MaxSteps
	}
	return func() {
		tr.opts = prev
	}
}
