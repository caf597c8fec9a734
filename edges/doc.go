// Package edges derives a spring network from a Delaunay triangulation:
// for each unordered pair connected by a triangle edge it stores
// endpoint indices, the current edge vector and length, and a target
// density sample at the midpoint, then distributes spring forces to the
// endpoints' displacement accumulators.
//
// Edges are not deduplicated: a triangulation with M triangles produces
// exactly 3M entries in the EdgeSet, one per triangle side (ab, bc, ca)
// in order, even though most undirected edges are shared by two
// triangles and so appear twice. EdgeCorrection compensates for this in
// ScalingFactor, and the doubled force contribution per physical edge
// is the intended behavior, not a bug (spec §4.4/§9). A caller that
// wants deduplicated edges may do so, provided both compensations are
// removed consistently; this package keeps the spec's default
// convention.
package edges

// EdgeCorrection is the compensation factor spec.md calls
// edge_correction, applied in the ScalingFactor denominator to account
// for the 3-edges-per-triangle, no-deduplication convention. It is a
// constant 1 for that convention; it only needs to change if a
// different edge-construction convention (e.g. deduplicated edges) is
// adopted alongside it.
const EdgeCorrection = 1
