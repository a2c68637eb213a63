// Package homotopy defines the evaluator contract the path-tracking
// core consumes: H(x, t), its x-Jacobian, and its t-Jacobian, plus an
// optional combined evaluator for efficiency. Construction of H itself
// (symbolic input parsing, variable ordering, start-system construction)
// is out of scope; see spec.md §1.
package homotopy
