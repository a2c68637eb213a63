package pathtracker

// Options are the PathTracker construction options of spec.md §3.
type Options struct {
	AtInfinityCheck         bool
	MaxStepSizeEndgameStart float64
	MinValAccuracy          float64
	SamplesPerLoop          int
	MaxWindingNumber        int
	MaxAffineNorm           float64
}

// DefaultOptions returns spec.md §3's stated defaults, resolving the
// max_step_size_endgame_start ambiguity to 1e-8 per DESIGN.md's Open
// Question decision.
func DefaultOptions() Options {
	return Options{
		AtInfinityCheck:         true,
		MaxStepSizeEndgameStart: 1e-8,
		MinValAccuracy:          1e-3,
		SamplesPerLoop:          5,
		MaxWindingNumber:        12,
		MaxAffineNorm:           1e6,
	}
}
