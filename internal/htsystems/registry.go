package htsystems

import (
	"fmt"

	"github.com/san-kum/homotopy/internal/homotopy"
	"github.com/san-kum/homotopy/internal/htvector"
)

// Scenario bundles a homotopy together with the start solutions a
// driver should track it from, the shape cmd/trackpath needs to turn
// a --system flag into a runnable track!.
type Scenario struct {
	Name    string
	H       homotopy.Homotopy
	Starts  []htvector.Raw
	Comment string
}

// Resolve looks up one of the named systems this package knows how to
// build: the S1/S5 polynomial scenarios, S6's closed-form diverging
// line, and the Katsura-5 path-jumping stress test of S2-S4.
func Resolve(name string) (Scenario, error) {
	switch name {
	case "quadratic":
		start, target, solutions := QuadraticWithLinearConstraint()
		return Scenario{
			Name:    name,
			H:       NewStraightLine(start, target),
			Starts:  solutions,
			Comment: "x^2-2=0, x+y-1=0; 2 paths",
		}, nil
	case "double_root":
		start, target, solutions := DoubleRoot()
		return Scenario{
			Name:    name,
			H:       NewStraightLine(start, target),
			Starts:  solutions,
			Comment: "(x-1)^2=0, y-2=0; 1 finite solution of multiplicity 2",
		}, nil
	case "diverging":
		return Scenario{
			Name:    name,
			H:       DivergingLine{},
			Starts:  []htvector.Raw{DivergingStart()},
			Comment: "x*t-1=0; the unique path diverges to infinity as t->0",
		}, nil
	case "katsura5":
		start, target, solutions := Katsura5()
		return Scenario{
			Name:    name,
			H:       NewStraightLine(start, target),
			Starts:  solutions,
			Comment: "Katsura-5 benchmark; 32 paths, several crowd together near t=0",
		}, nil
	default:
		return Scenario{}, fmt.Errorf("htsystems: unknown system %q (want one of quadratic, double_root, diverging, katsura5)", name)
	}
}

func Names() []string {
	return []string{"quadratic", "double_root", "diverging", "katsura5"}
}
