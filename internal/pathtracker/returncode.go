package pathtracker

import "github.com/san-kum/homotopy/internal/coretracker"

// ReturnCode is the PathTracker's closed sum type, a superset of
// coretracker.Status per spec.md §3/§6.
type ReturnCode int

const (
	Success ReturnCode = iota
	AtInfinity
	TerminatedMaxIterations
	TerminatedInvalidStartValue
	TerminatedStepSizeTooSmall
	TerminatedSingularity
	TerminatedIllConditioned
	TrackerFailed
)

func (c ReturnCode) String() string {
	switch c {
	case Success:
		return "success"
	case AtInfinity:
		return "at_infinity"
	case TerminatedMaxIterations:
		return "terminated_max_iterations"
	case TerminatedInvalidStartValue:
		return "terminated_invalidstartvalue"
	case TerminatedStepSizeTooSmall:
		return "terminated_step_size_too_small"
	case TerminatedSingularity:
		return "terminated_singularity"
	case TerminatedIllConditioned:
		return "terminated_ill_conditioned"
	case TrackerFailed:
		return "tracker_failed"
	default:
		return "unknown"
	}
}

// fromCoreStatus maps a core-tracker status onto the PathTracker's
// richer code set, per spec.md §4.8's explicit propagation table.
func fromCoreStatus(s coretracker.Status) ReturnCode {
	switch s {
	case coretracker.Success:
		return Success
	case coretracker.TerminatedInvalidStartValue:
		return TerminatedInvalidStartValue
	case coretracker.TerminatedMaxIters:
		return TerminatedMaxIterations
	case coretracker.TerminatedStepSizeTooSmall:
		return TerminatedStepSizeTooSmall
	case coretracker.TerminatedSingularity:
		return TerminatedSingularity
	case coretracker.TerminatedIllConditioned:
		return TerminatedIllConditioned
	default:
		return TrackerFailed
	}
}
