// Package htsystems supplements the out-of-scope "construct a homotopy"
// boundary (spec.md §1) with two small worked instances so the core is
// runnable end-to-end in tests and the CLI demo: a straight-line
// homotopy between two dense polynomial systems, and a total-degree
// start system for it. This is not a symbolic front end; each system
// here is a closed-form [homotopy.Homotopy] implementation, the same
// way internal/physics ships concrete [dynamo.System] models next to
// the generic interface.
package htsystems
