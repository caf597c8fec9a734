// Package engine implements Polyspring, the relaxation orchestrator:
// triangulate-if-needed, compute scale, compute forces, integrate,
// clamp to region, check convergence, refresh edges, decide
// re-triangulation.
//
// Engine is the single orchestrator in this repository, in the same
// spirit as builder.BuildGraph: one exported entry point (Iterate)
// resolves no further options at call time, runs its steps in a fixed
// order, and wraps any lower-layer error once at the boundary.
// Iterate is blocking, synchronous, and must never be called
// concurrently on the same Engine (spec §5).
package engine
