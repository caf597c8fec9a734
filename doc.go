// Package polyspring implements a 2D Delaunay/spring point-relaxation
// engine: given a scattered point cloud, it derives a triangulation,
// treats each triangle edge as a spring whose rest length follows a
// target density function, and iterates a force-directed relaxation
// until the cloud settles into a well-spaced layout.
//
// Everything is organized under per-concern subpackages:
//
//	region/      — the relaxation domain (currently the unit square) and its inner box
//	points/      — the live point cloud: ingestion, pre-uniformization, integration
//	density/     — target density functions sampled at edge midpoints
//	triangulate/ — the pluggable Delaunay triangulator and its coordinate snapshot
//	edges/       — the spring network derived from a triangulation
//	engine/      — Engine, the orchestrator wiring the above into SetPoints/Iterate
//	transport/   — an optional UDP broadcaster for streaming live sessions, never imported by engine
//	cmd/polyspringd/ — a CLI that drives a session and streams it over transport
//
// A session is: construct an Engine, call SetPoints once with the
// initial cloud, then call Iterate repeatedly until it reports no
// further work is warranted.
package polyspring
