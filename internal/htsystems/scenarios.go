package htsystems

import "github.com/san-kum/homotopy/internal/htvector"

// QuadraticWithLinearConstraint builds spec.md scenario S1:
// F = {x^2 - 2, x + y - 1}, two variables x, y. Its total-degree
// homotopy has D = 2*1 = 2 paths, converging to (x, y) = (±√2, 1∓√2).
func QuadraticWithLinearConstraint() (System, System, []htvector.Raw) {
	target := System{
		N: 2,
		Polys: []Polynomial{
			{Degree: 2, Terms: []Term{
				{Coeff: 1, Exponents: []int{2, 0}},
				{Coeff: -2, Exponents: []int{0, 0}},
			}},
			{Degree: 1, Terms: []Term{
				{Coeff: 1, Exponents: []int{1, 0}},
				{Coeff: 1, Exponents: []int{0, 1}},
				{Coeff: -1, Exponents: []int{0, 0}},
			}},
		},
	}
	start, solutions := TotalDegreeStart(target)
	return start, target, solutions
}

// DoubleRoot builds spec.md scenario S5: {(x-1)^2, y-2}, whose unique
// finite solution (x,y) = (1,2) has multiplicity 2 — a singular
// endpoint the Cauchy endgame should recover with winding_number = 2.
func DoubleRoot() (System, System, []htvector.Raw) {
	target := System{
		N: 2,
		Polys: []Polynomial{
			// (x-1)^2 = x^2 - 2x + 1
			{Degree: 2, Terms: []Term{
				{Coeff: 1, Exponents: []int{2, 0}},
				{Coeff: -2, Exponents: []int{1, 0}},
				{Coeff: 1, Exponents: []int{0, 0}},
			}},
			// y - 2
			{Degree: 1, Terms: []Term{
				{Coeff: 1, Exponents: []int{0, 1}},
				{Coeff: -2, Exponents: []int{0, 0}},
			}},
		},
	}
	start, solutions := TotalDegreeStart(target)
	return start, target, solutions
}
