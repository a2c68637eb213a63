package coretracker

import (
	"github.com/san-kum/homotopy/internal/corrector"
	"github.com/san-kum/homotopy/internal/homotopy"
	"github.com/san-kum/homotopy/internal/htvector"
	"github.com/san-kum/homotopy/internal/predictor"
	"github.com/san-kum/homotopy/internal/stepcontrol"
)

// invalidStartK scales Options.Accuracy into the threshold setup! uses
// to reject a start value whose residual is already too large, per
// spec.md §4.5.
const invalidStartK = 1e4

// maxSingularStreak bounds how many consecutive predictor failures (a
// singular Jx) step! tolerates before concluding the path has run into
// a genuine singularity rather than a transient bad step.
const maxSingularStreak = 5

// Tracker is the predictor-corrector-stepcontrol orchestrator of
// spec.md §3/§4.5 (component C5), wiring homotopy.Evaluator,
// predictor.Predictor, corrector.Correct, and stepcontrol.Controller
// around a single mutable State. It is grounded on the teacher's
// Simulator (sim/simulator.go): one struct owning the dynamics, the
// integrator, and the running state, stepped one call at a time.
type Tracker struct {
	eval     *homotopy.Evaluator
	pred     predictor.Predictor
	stepCtrl *stepcontrol.Controller

	opts        Options
	state       State
	patchFixed  bool
	tFrom, tTo  complex128
	singularRun int

	patchGroups []htvector.Group
	patch       htvector.Raw
}

// NewTracker builds a Tracker around h using pred as the predictor
// stage; opts supplies the accuracy/step-size defaults.
func NewTracker(h homotopy.Homotopy, pred predictor.Predictor, opts Options) *Tracker {
	return &Tracker{
		eval:     homotopy.NewEvaluator(h),
		pred:     pred,
		stepCtrl: stepcontrol.NewController(),
		opts:     opts,
	}
}

// State returns a copy of the tracker's current state.
func (tr *Tracker) State() State { return tr.state }

// Options returns a copy of the tracker's current options.
func (tr *Tracker) Options() Options { return tr.opts }

// Residual returns ‖H(x,t)‖ at the tracker's current point, reusing
// the evaluator's cache when the point hasn't moved.
func (tr *Tracker) Residual() float64 {
	return tr.eval.Residual(tr.state.X, tr.state.T)
}

// Refine runs one extra Newton correction at the tracker's current
// (x, t) using the tracker's current options, for the final-solution
// polish component C8 performs at the end of a successful track when
// winding_number <= 1 (spec.md §4.8). It reports whether the
// refinement converged.
func (tr *Tracker) Refine() bool {
	copts := corrector.Options{
		Accuracy:        tr.opts.Accuracy,
		MaxIters:        tr.opts.MaxCorrectorIters,
		ConditionTooBig: 1e14,
	}
	res := corrector.Correct(tr.eval, tr.state.X, tr.state.T, copts)
	tr.state.X = res.X
	tr.state.Accuracy = res.Residual
	tr.state.Omega = res.Omega
	tr.state.DigitsLost = res.DigitsLost
	return res.Status == corrector.Converged
}

// SetStepCounts overwrites the tracker's accepted/rejected step
// counters outright. The Cauchy endgame (component C7) uses this to
// fold the counters accumulated by its nested track! calls back into
// the outer tracker, per spec.md §4.7 ("accepted/rejected step
// counters accumulated during loops are added back to the outer core
// tracker state"): each nested track! call's setup! resets tr's own
// counters, so the endgame keeps its own pre-loop snapshot and passes
// the snapshot-plus-loop-total back here rather than accumulating
// in place.
func (tr *Tracker) SetStepCounts(accepted, rejected int) {
	tr.state.AcceptedSteps = accepted
	tr.state.RejectedSteps = rejected
}

// SetPatch installs the projective affine-patch normal vector and its
// homogeneous-group partition for the duration of tracking. Pass a nil
// patch for an affine vector, where the per-step refresh below becomes
// a no-op.
func (tr *Tracker) SetPatch(groups []htvector.Group, patch htvector.Raw) {
	tr.patchGroups = groups
	tr.patch = patch
}

// Patch returns the tracker's current affine-patch normal vector,
// refreshed after every accepted step once update_patch is true and
// the patch isn't held fixed (patch.go). Nil for an affine vector.
func (tr *Tracker) Patch() htvector.Raw { return tr.patch }

// SetPoint overwrites the tracker's current (x, t) without going
// through setup!/step!, for the Cauchy endgame's averaged-prediction
// adoption. The final refinement after a successful track goes through
// Refine instead.
func (tr *Tracker) SetPoint(x htvector.Raw, t complex128) {
	tr.state.X = x
	tr.state.T = t
}

// Setup validates the start value and resets the tracker's state to
// begin tracking from x0 at tFrom toward tTo, per spec.md §4.5's
// setup! operation.
func (tr *Tracker) Setup(x0 htvector.Raw, tFrom, tTo complex128) error {
	tr.tFrom, tr.tTo = tFrom, tTo
	residual := tr.eval.Residual(x0, tFrom)

	status := Tracking
	if residual > tr.opts.Accuracy*invalidStartK {
		status = TerminatedInvalidStartValue
	}

	xdot, _ := predictor.Tangent(tr.eval, x0, tFrom)

	tr.state = State{
		X:       x0.Clone(),
		XPrev:   x0.Clone(),
		T:       tFrom,
		TPrev:   tFrom,
		XDot:    xdot,
		S:       0,
		SPrev:   0,
		DeltaS:  tr.opts.InitialStepSize,
		Accuracy: residual,
		Status:  status,
	}
	tr.singularRun = 0

	if status != Tracking {
		return &TrackError{Step: 0, T: tFrom, Wrapped: ErrInvalidStartValue}
	}
	return nil
}

// sStep returns the real fraction of [0,1] the next predictor call
// should advance by, clamped so it never overshoots s=1.
func (tr *Tracker) sStep() float64 {
	remaining := 1 - tr.state.S
	if tr.state.DeltaS > remaining {
		return remaining
	}
	return tr.state.DeltaS
}

// Step performs exactly one predictor-corrector attempt: it predicts,
// corrects, and either accepts (advancing S, T, X and growing DeltaS)
// or rejects (shrinking DeltaS and retrying on the next call), per
// spec.md §4.4/§4.5. It is a no-op once Status.IsTerminal().
func (tr *Tracker) Step() {
	if tr.state.Status.IsTerminal() {
		return
	}

	step := tr.sStep()
	if tr.tTo == tr.tFrom {
		// A zero-length t interval has no path to follow: close the whole
		// remaining s gap in a single predictor-corrector attempt.
		step = 1 - tr.state.S
	}
	if step <= 0 {
		tr.state.Status = Success
		return
	}

	dt := complex(step, 0) * (tr.tTo - tr.tFrom)
	newT := tr.state.T + dt

	xhat, err := tr.pred.Predict(tr.eval, tr.state.X, tr.state.T, dt)
	if err != nil {
		tr.singularRun++
		tr.state.RejectedSteps++
		tr.state.LastStepFailed = true
		tr.state.DeltaS = real(tr.stepCtrl.Reject(complex(tr.state.DeltaS, 0)))
		tr.terminateIfExhausted()
		return
	}
	tr.singularRun = 0

	copts := corrector.Options{
		Accuracy:        tr.opts.Accuracy,
		MaxIters:        tr.opts.MaxCorrectorIters,
		ConditionTooBig: 1e14,
	}
	res := corrector.Correct(tr.eval, xhat, newT, copts)

	switch res.Status {
	case corrector.Converged:
		tr.state.XPrev = tr.state.X
		tr.state.TPrev = tr.state.T
		tr.state.SPrev = tr.state.S
		tr.state.DeltaSPrev = tr.state.DeltaS

		tr.state.X = res.X
		tr.state.T = newT
		tr.state.S += step
		if xdot, derr := predictor.Tangent(tr.eval, tr.state.X, tr.state.T); derr == nil {
			tr.state.XDot = xdot
		}

		tr.state.AcceptedSteps++
		tr.state.LastStepFailed = false
		tr.state.Omega = res.Omega
		tr.state.DigitsLost = res.DigitsLost
		tr.state.Accuracy = res.Residual
		tr.state.DeltaS = real(tr.stepCtrl.Accept(complex(step, 0), res.Omega))

		if tr.opts.UpdatePatch && !tr.patchFixed && tr.patch != nil {
			tr.patch = htvector.RenormalizePatch(tr.state.X, tr.patchGroups, tr.patch)
		}

		if tr.state.S >= 1-1e-12 {
			tr.state.Status = Success
			return
		}

	case corrector.IllConditioned:
		tr.state.RejectedSteps++
		tr.state.LastStepFailed = true
		tr.state.Omega = res.Omega
		tr.state.DigitsLost = res.DigitsLost
		tr.state.Status = TerminatedIllConditioned
		return

	case corrector.Diverged:
		tr.state.RejectedSteps++
		tr.state.LastStepFailed = true
		tr.state.DeltaS = real(tr.stepCtrl.Reject(complex(step, 0)))
	}

	tr.terminateIfExhausted()
}

// terminateIfExhausted checks the step-size, singularity-streak, and
// max-steps stop conditions shared by every rejection path in Step.
func (tr *Tracker) terminateIfExhausted() {
	if tr.state.Status.IsTerminal() {
		return
	}
	if tr.singularRun >= maxSingularStreak {
		tr.state.Status = TerminatedSingularity
		return
	}
	if tr.state.DeltaS < tr.opts.MinStepSize {
		tr.state.Status = TerminatedStepSizeTooSmall
		return
	}
	if tr.state.AcceptedSteps+tr.state.RejectedSteps >= tr.opts.MaxSteps {
		tr.state.Status = TerminatedMaxIters
	}
}

// Track runs setup! followed by repeated step! calls until a terminal
// status is reached, per spec.md §4.5's track! operation.
func (tr *Tracker) Track(x0 htvector.Raw, tFrom, tTo complex128) Status {
	if err := tr.Setup(x0, tFrom, tTo); err != nil {
		return tr.state.Status
	}
	for !tr.state.Status.IsTerminal() {
		tr.Step()
	}
	return tr.state.Status
}
