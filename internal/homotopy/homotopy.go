package homotopy

import (
	"github.com/san-kum/homotopy/internal/htvector"
	"github.com/san-kum/homotopy/internal/linalg"
)

// Homotopy evaluates H(x, t), its Jacobian with respect to x, and its
// Jacobian with respect to t, at a given extended vector and parameter.
// Implementations propagate NaN/Inf rather than failing; the corrector
// and step controller are responsible for catching that downstream.
type Homotopy interface {
	Eval(x htvector.Raw, t complex128) htvector.Raw
	JacobianX(x htvector.Raw, t complex128) *linalg.CMatrix
	JacobianT(x htvector.Raw, t complex128) htvector.Raw
	Size() int
}

// CombinedEvaluator is an optional capability: a homotopy may compute
// H, Jx, and Jt in one pass when doing so shares intermediate work. The
// core tracker checks for it with a type assertion, the same
// optional-capability idiom the teacher uses for energy computation
// (`if ec, ok := s.dyn.(EnergyComputer); ok`).
type CombinedEvaluator interface {
	EvalAndJacobian(x htvector.Raw, t complex128) (h htvector.Raw, jx *linalg.CMatrix, jt htvector.Raw)
}

// cache amortizes repeated evaluation at the same (x, t): the predictor
// and corrector often re-evaluate at a point they were just handed.
// Mirrors the teacher's scratch-reuse discipline in
// integrators.RK4.ensureScratch, adapted from "same length" to "same
// point" as the reuse condition.
type cache struct {
	x    htvector.Raw
	t    complex128
	h    htvector.Raw
	jx   *linalg.CMatrix
	jt   htvector.Raw
	full bool
}

func (c *cache) matches(x htvector.Raw, t complex128) bool {
	if !c.full || c.t != t || len(c.x) != len(x) {
		return false
	}
	for i := range x {
		if c.x[i] != x[i] {
			return false
		}
	}
	return true
}

func (c *cache) store(x htvector.Raw, t complex128, h htvector.Raw, jx *linalg.CMatrix, jt htvector.Raw) {
	c.x = x.Clone()
	c.t = t
	c.h = h
	c.jx = jx
	c.jt = jt
	c.full = true
}

// Evaluator wraps a Homotopy with the last-(x,t) cache described above
// and exposes a single EvalAll entry point that uses the combined
// evaluator when available.
type Evaluator struct {
	H     Homotopy
	cache cache
}

func NewEvaluator(h Homotopy) *Evaluator {
	return &Evaluator{H: h}
}

// EvalAll returns H(x,t), Jx(x,t), and Jt(x,t), reusing the cached
// result when (x,t) matches the last call.
func (e *Evaluator) EvalAll(x htvector.Raw, t complex128) (htvector.Raw, *linalg.CMatrix, htvector.Raw) {
	if e.cache.matches(x, t) {
		return e.cache.h, e.cache.jx, e.cache.jt
	}

	var h, jt htvector.Raw
	var jx *linalg.CMatrix
	if ce, ok := e.H.(CombinedEvaluator); ok {
		h, jx, jt = ce.EvalAndJacobian(x, t)
	} else {
		h = e.H.Eval(x, t)
		jx = e.H.JacobianX(x, t)
		jt = e.H.JacobianT(x, t)
	}

	e.cache.store(x, t, h, jx, jt)
	return h, jx, jt
}

// Residual returns ‖H(x,t)‖ using the evaluator's shared cache.
func (e *Evaluator) Residual(x htvector.Raw, t complex128) float64 {
	h, _, _ := e.EvalAll(x, t)
	return h.Norm()
}
