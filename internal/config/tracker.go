package config

import (
	"github.com/san-kum/homotopy/internal/coretracker"
	"github.com/san-kum/homotopy/internal/pathtracker"
)

// CoreOptions projects the corrector/step-size fields onto
// coretracker.Options.
func (c *TrackerConfig) CoreOptions() coretracker.Options {
	return coretracker.Options{
		Accuracy:          c.Accuracy,
		MaxCorrectorIters: c.MaxCorrectorIters,
		MaxSteps:          c.MaxSteps,
		InitialStepSize:   c.InitialStepSize,
		MinStepSize:       c.MinStepSize,
		UpdatePatch:       c.UpdatePatch,
	}
}

// PathOptions projects the endgame fields onto pathtracker.Options.
func (c *TrackerConfig) PathOptions() pathtracker.Options {
	return pathtracker.Options{
		AtInfinityCheck:         c.Endgame.AtInfinityCheck,
		MaxStepSizeEndgameStart: c.Endgame.MaxStepSizeEndgameStart,
		MinValAccuracy:          c.Endgame.MinValAccuracy,
		SamplesPerLoop:          c.Endgame.SamplesPerLoop,
		MaxWindingNumber:        c.Endgame.MaxWindingNumber,
		MaxAffineNorm:           c.Endgame.MaxAffineNorm,
	}
}
