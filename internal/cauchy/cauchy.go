package cauchy

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/homotopy/internal/coretracker"
	"github.com/san-kum/homotopy/internal/htvector"
)

// Outcome classifies the result of Run.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeMaxWindingNumber
	OutcomeCoreFailure
)

// Result is the endgame's symbolic outcome, per spec.md §4.7.
type Result struct {
	Outcome       Outcome
	Prediction    htvector.Raw
	WindingNumber int
	CoreStatus    coretracker.Status // meaningful only when Outcome == OutcomeCoreFailure
}

// Options configure one endgame invocation.
type Options struct {
	SamplesPerLoop   int
	MaxWindingNumber int
	Accuracy         float64
}

// unityRoots returns the n complex n-th roots of unity ζ_j = exp(2πij/n)
// for j = 0..n-1.
func unityRoots(n int) []complex128 {
	roots := make([]complex128, n)
	for j := 0; j < n; j++ {
		angle := 2 * math.Pi * float64(j) / float64(n)
		roots[j] = cmplx.Exp(complex(0, angle))
	}
	return roots
}

// Run performs the Cauchy endgame at the tracker's current (x, t),
// per spec.md §4.7. It fixes the patch for the duration of the loop,
// restoring it on every exit path, and folds the accepted/rejected
// step counters accumulated by its nested track! calls back into tr.
func Run(tr *coretracker.Tracker, opts Options) Result {
	restore := tr.FixPatch()
	defer restore()

	start := tr.State()
	x0 := start.X
	t := start.T
	outerAccepted, outerRejected := start.AcceptedSteps, start.RejectedSteps
	zeta := unityRoots(opts.SamplesPerLoop)
	n := opts.SamplesPerLoop

	var loopAccepted, loopRejected int
	prediction := make(htvector.Raw, len(x0))
	total := 0

	for m := 1; m <= opts.MaxWindingNumber; m++ {
		for j := 1; j <= n; j++ {
			thetaFrom := t * zeta[j-1]
			thetaTo := t * zeta[j%n]

			status := tr.Track(tr.State().X, thetaFrom, thetaTo)
			loopAccepted += tr.State().AcceptedSteps
			loopRejected += tr.State().RejectedSteps

			if status != coretracker.Success {
				tr.SetStepCounts(outerAccepted+loopAccepted, outerRejected+loopRejected)
				return Result{Outcome: OutcomeCoreFailure, CoreStatus: status}
			}

			prediction = prediction.Add(tr.State().X)
			total++
		}

		currX := tr.State().X
		dist := currX.Sub(x0).Norm()
		if dist < 4*opts.Accuracy {
			tr.SetStepCounts(outerAccepted+loopAccepted, outerRejected+loopRejected)
			avg := prediction.Scale(complex(1/float64(total), 0))
			tr.SetPoint(avg, t)
			return Result{
				Outcome:       OutcomeSuccess,
				Prediction:    avg,
				WindingNumber: m,
			}
		}
	}

	tr.SetStepCounts(outerAccepted+loopAccepted, outerRejected+loopRejected)
	return Result{Outcome: OutcomeMaxWindingNumber}
}
