package htsystems

import "testing"

func TestKatsura5HasThirtyTwoStartSolutions(t *testing.T) {
	start, target, solutions := Katsura5()
	if target.N != 6 {
		t.Fatalf("N = %d, want 6", target.N)
	}
	if len(solutions) != 32 {
		t.Fatalf("len(solutions) = %d, want 32 (degree product 1*2*2*2*2*2)", len(solutions))
	}
	for _, sol := range solutions {
		if len(sol) != 6 {
			t.Fatalf("solution has %d coordinates, want 6", len(sol))
		}
		res := start.Eval(sol)
		for i, r := range res {
			if abs2(r) > 1e-9 {
				t.Errorf("start system residual[%d] = %v, want ~0", i, r)
			}
		}
	}
}

func abs2(c complex128) float64 {
	re, im := real(c), imag(c)
	return re*re + im*im
}
