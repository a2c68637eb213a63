package coretracker

// FixPatch temporarily disables patch updates (update_patch) for the
// duration of the returned restore call, the mechanism the Cauchy
// endgame (component C7) uses to hold the projective patch fixed around
// its polygon loop. Calling FixPatch while already fixed is a
// programming-invariant violation per spec.md §7 ("patch unfixed
// twice") and panics rather than returning an error.
func (tr *Tracker) FixPatch() func() {
	if tr.patchFixed {
		panic(ErrPatchAlreadyFixed)
	}
	tr.patchFixed = true
	prevUpdatePatch := tr.opts.UpdatePatch
	tr.opts.UpdatePatch = false
	return func() {
		if !tr.patchFixed {
			panic(ErrPatchNotFixed)
		}
		tr.patchFixed = false
		tr.opts.UpdatePatch = prevUpdatePatch
	}
}

// PatchFixed reports whether the patch is currently held fixed.
func (tr *Tracker) PatchFixed() bool {
	return tr.patchFixed
}
