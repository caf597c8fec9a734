package triangulate

import (
	"fmt"

	"github.com/fogleman/delaunay"
)

// Delaunay2D is the default Triangulator, wrapping
// github.com/fogleman/delaunay. The library requires double-precision
// coordinates, which is already PointSet's native representation, so
// no conversion beyond repacking into delaunay.Point is needed.
type Delaunay2D struct{}

// Triangulate runs the external Delaunay routine and unpacks its flat
// Triangles slice (already 3M indices, one triple per triangle) into
// [][3]int triples. Returns ErrTooFewPoints, ErrMismatchedAxes, or
// ErrTriangulationFailed (wrapping the library's own error, or
// signaling zero triangles back from a nominally successful call).
func (Delaunay2D) Triangulate(xs, ys []float64) ([][3]int, error) {
	if len(xs) != len(ys) {
		return nil, ErrMismatchedAxes
	}
	if len(xs) < 3 {
		return nil, ErrTooFewPoints
	}

	pts := make([]delaunay.Point, len(xs))
	for i := range xs {
		pts[i] = delaunay.Point{X: xs[i], Y: ys[i]}
	}

	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTriangulationFailed, err)
	}
	if len(tri.Triangles) < 3 {
		return nil, ErrTriangulationFailed
	}

	triangles := make([][3]int, len(tri.Triangles)/3)
	for t := range triangles {
		base := t * 3
		triangles[t] = [3]int{tri.Triangles[base], tri.Triangles[base+1], tri.Triangles[base+2]}
	}

	return triangles, nil
}
