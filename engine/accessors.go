package engine

// Iterations returns how many Iterate calls have completed since the
// last SetPoints.
func (e *Engine) Iterations() int { return e.iterations }

// Triangulations returns how many times Iterate has re-triangulated
// since the last SetPoints.
func (e *Engine) Triangulations() int {
	if e.tri == nil {
		return 0
	}
	return e.tri.Count()
}

// Points returns the current point cloud as interleaved (x, y) pairs.
// See points.PointSet.Points for the scaled/normalized distinction.
// Returns nil if SetPoints has not succeeded yet.
func (e *Engine) Points(scaled bool) []float64 {
	if e.pts == nil {
		return nil
	}
	return e.pts.Points(scaled)
}

// Triangles returns the most recent triangulation's triangle triples,
// for external rendering. Returns nil before the first Iterate call
// that triangulates.
func (e *Engine) Triangles() [][3]int {
	if e.tri == nil {
		return nil
	}
	return e.tri.Triangles()
}
