package pathtracker

import (
	"math"

	"github.com/google/uuid"
	"github.com/san-kum/homotopy/internal/cauchy"
	"github.com/san-kum/homotopy/internal/coretracker"
	"github.com/san-kum/homotopy/internal/homotopy"
	"github.com/san-kum/homotopy/internal/htvector"
	"github.com/san-kum/homotopy/internal/predictor"
	"github.com/san-kum/homotopy/internal/valuation"
)

// Tracker is component C8: it owns a CoreTracker exclusively (the
// cyclic-reference design note of spec.md §9 resolved as strict
// composition) and drives it through one full path, from t=1 to t=0,
// per the track! algorithm of spec.md §4.8.
type Tracker struct {
	core  *coretracker.Tracker
	embed Embedding
	opts  Options

	groups []htvector.Group
	proj   bool
}

// NewTracker builds a PathTracker around h, using pred as the core
// tracker's predictor and embed to translate between user and internal
// coordinates.
func NewTracker(h homotopy.Homotopy, pred predictor.Predictor, embed Embedding, coreOpts coretracker.Options, opts Options) *Tracker {
	return &Tracker{
		core:  coretracker.NewTracker(h, pred, coreOpts),
		embed: embed,
		opts:  opts,
	}
}

// WithCoreOverrides forwards to the underlying CoreTracker's scoped
// option-override mechanism (spec.md §4.9), for a driver's path-jumping
// mitigation pass: tighten accuracy and reduce max_corrector_iters,
// retrack, then restore.
func (tr *Tracker) WithCoreOverrides(ov coretracker.OptionOverrides) func() {
	return tr.core.WithOverrides(ov)
}

// currentVector wraps a raw extended point with the embedding's group
// topology (fixed for the duration of one path) and the core tracker's
// live patch (refreshed after each accepted step per update_patch).
func (tr *Tracker) currentVector(x htvector.Raw) htvector.Vector {
	if !tr.proj {
		return htvector.NewAffine(x)
	}
	return htvector.NewProjective(x, tr.groups, tr.core.Patch())
}

// checkSingularCandidate implements the Cauchy-endgame precondition of
// spec.md §4.7.
func checkSingularCandidate(cs coretracker.State, omega []float64, accurate []bool) bool {
	distressed := cs.DigitsLost > 4 || cs.Omega > 100 || cs.DeltaS < 1e-6
	if distressed {
		return true
	}
	return valuation.AllNonNegative(omega, accurate) && valuation.AnyFractional(omega, accurate)
}

// Track runs track! for the single start solution x1 from t=1 to t=0,
// per spec.md §4.8, returning the classified PathResult.
func (tr *Tracker) Track(x1 htvector.Raw) PathResult {
	v0 := tr.embed.Embed(x1)
	tr.proj = v0.IsProjective()
	tr.groups = v0.Groups()
	tr.core.SetPatch(tr.groups, v0.Patch())

	valEst := valuation.NewEstimator(v0.AffineLen(), tr.opts.MinValAccuracy)

	if err := tr.core.Setup(v0.RawVector(), complex(1, 0), complex(0, 0)); err != nil {
		return tr.buildResult(fromCoreStatus(tr.core.State().Status), 0, nil, nil, nil)
	}

	var endgameZoneStart *complex128
	windingNumber := 0
	var lastOmega []float64
	var lastAccurate []bool
	code := TrackerFailed

tracking:
	for {
		tr.core.Step()
		cs := tr.core.State()

		if cs.Status.IsTerminal() {
			code = fromCoreStatus(cs.Status)
			break tracking
		}
		if cs.LastStepFailed {
			continue
		}

		vec := tr.currentVector(cs.X)
		omega, accurate := valEst.Update(vec, cs.XDot, cs.T, cs.TPrev)
		lastOmega, lastAccurate = omega, accurate

		if cs.DeltaS >= tr.opts.MaxStepSizeEndgameStart {
			continue
		}

		if tr.opts.AtInfinityCheck {
			atInf := false
			for i, w := range omega {
				if accurate[i] && w < -0.05 {
					atInf = true
					break
				}
			}
			if atInf {
				code = AtInfinity
				break tracking
			}
		}

		if !valuation.AllAccurate(accurate) {
			continue
		}

		if endgameZoneStart == nil {
			t := cs.T
			endgameZoneStart = &t
		}

		if !checkSingularCandidate(cs, omega, accurate) {
			continue
		}

		res := cauchy.Run(tr.core, cauchy.Options{
			SamplesPerLoop:   tr.opts.SamplesPerLoop,
			MaxWindingNumber: tr.opts.MaxWindingNumber,
			Accuracy:         tr.core.Options().Accuracy,
		})
		switch res.Outcome {
		case cauchy.OutcomeSuccess:
			windingNumber = res.WindingNumber
			code = Success
			break tracking
		case cauchy.OutcomeMaxWindingNumber:
			continue
		default:
			code = fromCoreStatus(res.CoreStatus)
			if code == Success {
				code = TrackerFailed
			}
			break tracking
		}
	}

	// Late at-infinity catch: spec.md §4.8 step 3. A no-op for affine
	// vectors; max_affine_norm only guards against a projective path
	// whose homogenizing coordinate collapsed near the end of the track.
	if code == Success && tr.opts.AtInfinityCheck && tr.proj {
		finalVec := tr.currentVector(tr.core.State().X)
		if finalVec.AffineNorm() > tr.opts.MaxAffineNorm {
			code = AtInfinity
		}
	}

	// Final corrector refinement for a regular (non-singular) success.
	if code == Success && windingNumber <= 1 {
		tr.core.Refine()
	}

	return tr.buildResult(code, windingNumber, endgameZoneStart, lastOmega, lastAccurate)
}

func (tr *Tracker) buildResult(code ReturnCode, windingNumber int, endgameZoneStart *complex128, omega []float64, accurate []bool) PathResult {
	cs := tr.core.State()
	vec := tr.currentVector(cs.X)
	solution := tr.embed.PullBack(vec)

	result := PathResult{
		RunID:             uuid.New(),
		ReturnCode:        code,
		Solution:          solution,
		T:                 cs.T,
		Residual:          tr.core.Residual(),
		WindingNumber:     windingNumber,
		EndgameZoneStart:  endgameZoneStart,
		AcceptedSteps:     cs.AcceptedSteps,
		RejectedSteps:     cs.RejectedSteps,
		Valuation:         omega,
		ValuationAccurate: accurate,
	}
	if cs.DigitsLost > 0 {
		result.ConditionJacobian = math.Pow(10, cs.DigitsLost)
	}
	if code == Success && windingNumber <= 1 {
		result.Accuracy = cs.Accuracy
	}
	return result
}
