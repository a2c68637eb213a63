package htvector

import (
	"math"
	"testing"
)

func TestRawArithmetic(t *testing.T) {
	a := Raw{1 + 1i, 2 + 0i}
	b := Raw{0 + 1i, 1 + 1i}

	sum := a.Add(b)
	if sum[0] != 1+2i || sum[1] != 3+1i {
		t.Errorf("Add: got %v", sum)
	}

	diff := a.Sub(b)
	if diff[0] != 1+0i || diff[1] != 1-1i {
		t.Errorf("Sub: got %v", diff)
	}

	scaled := a.Scale(2)
	if scaled[0] != 2+2i || scaled[1] != 4+0i {
		t.Errorf("Scale: got %v", scaled)
	}
}

func TestRawNormAndValid(t *testing.T) {
	r := Raw{3, 4i}
	if got := r.Norm(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Norm: got %v, want 5", got)
	}

	if !r.IsValid() {
		t.Error("expected valid state")
	}

	bad := Raw{complex(math.NaN(), 0)}
	if bad.IsValid() {
		t.Error("expected NaN state to be invalid")
	}
}

func TestAffineVector(t *testing.T) {
	v := NewAffine(Raw{3, 4i})

	if v.IsProjective() {
		t.Error("expected affine vector")
	}
	if v.AffineLen() != 2 {
		t.Errorf("AffineLen: got %d, want 2", v.AffineLen())
	}
	if got := v.AffineNorm(); math.Abs(got-5) > 1e-12 {
		t.Errorf("AffineNorm: got %v, want 5", got)
	}

	deh := v.Dehomogenize()
	if deh[0] != 3 || deh[1] != 4i {
		t.Errorf("Dehomogenize identity on affine: got %v", deh)
	}
}

func TestProjectiveVectorDehomogenizes(t *testing.T) {
	// One group of 3: [x, y, z] with z the homogenization variable.
	// Affine point is (x/z, y/z).
	raw := Raw{4, 6, 2}
	groups := []Group{{Start: 0, End: 3, HomIndex: 2}}
	v := NewProjective(raw, groups, Raw{1, 1, 1})

	if !v.IsProjective() {
		t.Error("expected projective vector")
	}
	if v.AffineLen() != 2 {
		t.Errorf("AffineLen: got %d, want 2", v.AffineLen())
	}

	deh := v.Dehomogenize()
	if deh[0] != 2 || deh[1] != 3 {
		t.Errorf("Dehomogenize: got %v, want [2 3]", deh)
	}

	want := math.Sqrt(2*2 + 3*3)
	if got := v.AffineNorm(); math.Abs(got-want) > 1e-9 {
		t.Errorf("AffineNorm: got %v, want %v", got, want)
	}
}

func TestRenormalizePatchKeepsDotProductAtOne(t *testing.T) {
	groups := []Group{{Start: 0, End: 3, HomIndex: 2}}
	x := Raw{3, 4, 5}
	patch := Raw{1, 1, 1}

	got := RenormalizePatch(x, groups, patch)

	var dot complex128
	for i := range x {
		dot += got[i] * x[i]
	}
	if math.Abs(real(dot)-1) > 1e-9 || math.Abs(imag(dot)) > 1e-9 {
		t.Errorf("patch . x = %v, want 1", dot)
	}
}

func TestRenormalizePatchNilIsNoOp(t *testing.T) {
	if got := RenormalizePatch(Raw{1, 2}, nil, nil); got != nil {
		t.Errorf("expected nil patch to pass through unchanged, got %v", got)
	}
}

func TestProjectiveVectorAtInfinityWhenHomCoordZero(t *testing.T) {
	raw := Raw{1, 1, 0}
	groups := []Group{{Start: 0, End: 3, HomIndex: 2}}
	v := NewProjective(raw, groups, Raw{1, 1, 1})

	if !math.IsInf(v.AffineNorm(), 1) {
		t.Errorf("expected +Inf affine norm at the hyperplane at infinity, got %v", v.AffineNorm())
	}
}
