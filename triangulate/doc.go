// Package triangulate wraps an external Delaunay triangulation routine
// behind a small interface, and keeps a snapshot of the coordinates the
// last time triangulation ran so drift can be measured against it.
//
// The external routine is treated as a black box: given N interleaved
// coordinates it returns triangles as a flat sequence of 3M vertex
// indices (any winding order; callers must not rely on orientation).
// Delaunay2D, the default Triangulator, satisfies that contract using
// github.com/fogleman/delaunay.
package triangulate

// Triangulator computes a 2D Delaunay triangulation over a point set
// given as parallel coordinate slices (xs[i], ys[i] is point i).
// Implementations must return a flat-index contract: Triangulate
// returns len(triangles) triples of indices into xs/ys.
type Triangulator interface {
	Triangulate(xs, ys []float64) (triangles [][3]int, err error)
}
