// Package pathjump is a minimal driver-facing demo of spec.md §4.9's
// path-jumping mitigation workflow: run a batch of start solutions in
// parallel, detect which ended up on the same endpoint (a jump), and
// retrack the offending starts with tightened options. The actual
// collision policy belongs to a driver outside this core's scope; this
// package exists to exercise the core's reentrant track!/option-
// override contract end to end. Grounded on internal/sim/parallel.go's
// Ensemble.Run, generalized from sync.WaitGroup to
// golang.org/x/sync/errgroup.
package pathjump
