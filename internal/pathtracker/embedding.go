package pathtracker

import "github.com/san-kum/homotopy/internal/htvector"

// Embedding is the "out of this core's scope" collaborator contract
// of spec.md §6: it lifts a user start solution into the tracker's
// internal vector representation and maps a final internal vector back
// to user coordinates.
type Embedding interface {
	Embed(x htvector.Raw) htvector.Vector
	PullBack(v htvector.Vector) htvector.Raw
}

// AffineEmbedding is the identity embedding for systems with no
// projective structure: user coordinates are the tracker's
// coordinates verbatim.
type AffineEmbedding struct{}

func (AffineEmbedding) Embed(x htvector.Raw) htvector.Vector { return htvector.NewAffine(x) }

func (AffineEmbedding) PullBack(v htvector.Vector) htvector.Raw { return v.RawVector().Clone() }

// ProjectiveEmbedding lifts a user affine point into a single
// homogeneous group by appending a homogenization variable fixed at 1,
// and dehomogenizes on the way back.
type ProjectiveEmbedding struct {
	Patch htvector.Raw
}

func (e ProjectiveEmbedding) Embed(x htvector.Raw) htvector.Vector {
	raw := make(htvector.Raw, len(x)+1)
	copy(raw, x)
	raw[len(x)] = 1
	groups := []htvector.Group{{Start: 0, End: len(raw), HomIndex: len(x)}}
	return htvector.NewProjective(raw, groups, e.Patch)
}

func (e ProjectiveEmbedding) PullBack(v htvector.Vector) htvector.Raw {
	return v.Dehomogenize()
}
