package triangulate

// Triangulation drives a Triangulator and retains the coordinate copy
// ("snapshot") taken the moment it last ran, for drift measurement.
// The snapshot never aliases the live point array: the Triangulator
// receives xs/ys as given, and Retriangulate stores copies of them once
// it succeeds.
type Triangulation struct {
	tri Triangulator

	snapshotX, snapshotY []float64
	triangles            [][3]int
	count                int
}

// New returns a Triangulation driven by tri. A nil tri defaults to
// Delaunay2D.
func New(tri Triangulator) *Triangulation {
	if tri == nil {
		tri = Delaunay2D{}
	}
	return &Triangulation{tri: tri}
}

// Retriangulate invokes the Triangulator on xs/ys and, on success,
// copies xs/ys as the new snapshot, stores the resulting triangles, and
// increments the triangulation counter. On failure the previous snapshot/triangles/
// counter are left untouched (non-destructive propagation, per spec
// §7: "errors during iterate leave the engine in a non-destructive
// state").
func (t *Triangulation) Retriangulate(xs, ys []float64) error {
	triangles, err := t.tri.Triangulate(xs, ys)
	if err != nil {
		return err
	}

	t.snapshotX = append([]float64(nil), xs...)
	t.snapshotY = append([]float64(nil), ys...)
	t.triangles = triangles
	t.count++

	return nil
}

// Triangles returns the most recent triangulation's triangle triples.
func (t *Triangulation) Triangles() [][3]int { return t.triangles }

// SnapshotAt returns the recorded position of point i as of the last
// Retriangulate call.
func (t *Triangulation) SnapshotAt(i int) (x, y float64) {
	return t.snapshotX[i], t.snapshotY[i]
}

// SnapshotXS and SnapshotYS expose the live snapshot slices so callers
// (engine.Iterate, via points.PointSet.DistSinceTriangulation) can
// batch-query drift without a
// per-point method-call indirection.
func (t *Triangulation) SnapshotXS() []float64 { return t.snapshotX }
func (t *Triangulation) SnapshotYS() []float64 { return t.snapshotY }

// Count returns how many times Retriangulate has succeeded.
func (t *Triangulation) Count() int { return t.count }
