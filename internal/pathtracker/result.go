package pathtracker

import (
	"math"

	"github.com/google/uuid"
	"github.com/san-kum/homotopy/internal/htvector"
)

// PathResult is the record the driver consumes, per spec.md §6. RunID
// lets a driver correlate a result with later retrack attempts during
// path-jumping mitigation (spec.md §4.9).
type PathResult struct {
	RunID             uuid.UUID
	ReturnCode        ReturnCode
	Solution          htvector.Raw
	T                 complex128
	Accuracy          float64
	Residual          float64
	ConditionJacobian float64
	WindingNumber     int
	EndgameZoneStart  *complex128
	AcceptedSteps     int
	RejectedSteps     int
	Valuation         []float64
	ValuationAccurate []bool
}

// SingularTolerance is the default condition-number threshold
// is_singular uses when a path isn't otherwise flagged by a winding
// number greater than one.
const SingularTolerance = 1e14

// RealTolerance is the default imaginary-part-norm threshold is_real
// uses.
const RealTolerance = 1e-8

func (r PathResult) IsSuccess() bool { return r.ReturnCode == Success }

func (r PathResult) IsAtInfinity() bool { return r.ReturnCode == AtInfinity }

func (r PathResult) IsFailed() bool {
	return !r.IsSuccess() && !r.IsAtInfinity()
}

// IsSingular reports winding_number > 1 or an excessive condition
// number, per spec.md §6.
func (r PathResult) IsSingular() bool {
	return r.WindingNumber > 1 || r.ConditionJacobian > SingularTolerance
}

func (r PathResult) IsNonsingular() bool {
	return r.IsSuccess() && !r.IsSingular()
}

// IsReal reports whether the solution's imaginary part has 2-norm
// below tol.
func (r PathResult) IsReal(tol float64) bool {
	sum := 0.0
	for _, c := range r.Solution {
		im := imag(c)
		sum += im * im
	}
	return math.Sqrt(sum) <= tol
}
