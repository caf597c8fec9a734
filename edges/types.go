package edges

// Edge is one derived spring: endpoint indices A and B into the live
// point array, the current vector B-A, its length, and the target
// density sampled at the edge midpoint.
type Edge struct {
	A, B   int
	Dx, Dy float64
	Len    float64
	H      float64
}

// Pusher accumulates a displacement contribution for a point index.
// points.PointSet implements Pusher via AddPush; edges never imports
// the points package, so any displacement-accumulating type can drive
// ApplyForce.
type Pusher interface {
	AddPush(i int, dx, dy float64)
}

// EdgeSet is the spring network derived from the most recent
// triangulation.
type EdgeSet struct {
	edges []Edge
}

// New returns an empty EdgeSet. Call Build before Refresh/ApplyForce.
func New() *EdgeSet {
	return &EdgeSet{}
}

// Len returns the number of edges currently held (3 per triangle).
func (es *EdgeSet) Len() int { return len(es.edges) }

// At returns a copy of edge i's current state.
func (es *EdgeSet) At(i int) Edge { return es.edges[i] }
