// Package region defines the 2D domain a point cloud is relaxed inside.
//
// A Region is a small tagged-variant value (picked by name via ByName),
// not an open interface hierarchy: new variants are added by implementing
// Region and registering a constructor in the byName table, exactly like
// a new graph behavior is added in core by composing GraphOption values
// rather than subclassing Graph.
//
// The only variant implemented today is Square, the axis-aligned unit
// square [0,1]x[0,1]. Square.InnerBox reports an inset sub-rectangle used
// to seed points away from the boundary during pre-uniformization.
package region

// Region is the capability set a relaxation engine needs from a 2D domain:
// its area, an inset box for initial point placement, membership testing,
// and projection of an out-of-bounds point back onto the closest boundary
// point.
type Region interface {
	// Area returns the region's area (always > 0).
	Area() float64

	// InnerBox returns an axis-aligned inset rectangle (xmin, ymin, xmax, ymax)
	// strictly inside the region, used to seed pre-uniformized points.
	InnerBox() (xmin, ymin, xmax, ymax float64)

	// Contains reports whether (x, y) lies within the region under the
	// closed boundary test (points on the boundary are inside).
	Contains(x, y float64) bool

	// Project returns the closest point to (x, y) that lies within the
	// region. If (x, y) is already inside, Project returns it unchanged.
	Project(x, y float64) (px, py float64)
}
