package engine

import "fmt"

// Iterate performs one relaxation step and reports whether another
// iteration is warranted (true = keep going). The steps, in order
// (spec §4.5):
//
//  1. Re-triangulate, rebuild and refresh edges if the stale flag is set.
//  2. hscale = ell0 * EdgeSet.ScalingFactor().
//  3. For each edge, compute signed spring magnitude; apply only if positive (repulsive).
//  4. Integrate: P += push.
//  5. Per point: if inside the region, check convergence; else project back.
//  6. Refresh edges against the post-step geometry.
//  7. If any point has drifted past the re-triangulation threshold, set stale.
//  8. Zero push, increment the iteration counter, return keep_going.
//
// A fatal triangulator error leaves the engine's point/counter state
// untouched and is returned to the caller; the engine then refuses
// further Iterate calls (returning ErrFailed wrapping the same cause)
// until SetPoints is called again.
func (e *Engine) Iterate() (bool, error) {
	if !e.initialized {
		return false, ErrNotInitialized
	}
	if e.failed != nil {
		return false, e.failed
	}

	h := e.densityFunc()

	if e.stale {
		if err := e.tri.Retriangulate(e.pts.XS(), e.pts.YS()); err != nil {
			e.failed = fmt.Errorf("engine: %w: %w", ErrFailed, err)
			return false, e.failed
		}
		e.es.Build(e.tri.Triangles())
		e.es.Refresh(e.pts.XS(), e.pts.YS(), h)
		e.stale = false
	}

	hscale := e.ell0 * e.es.ScalingFactor()

	for i := 0; i < e.es.Len(); i++ {
		edge := e.es.At(i)
		f := e.cfg.params.K * (e.cfg.params.IntPres*hscale/edge.H - edge.Len)
		if f > 0 {
			e.es.ApplyForce(i, e.cfg.params.DT*f, e.pts)
		}
	}

	e.pts.Integrate()

	keepGoing := false
	for i := 0; i < e.pts.N(); i++ {
		if e.pts.WithinRegion(i, e.region) {
			if e.pts.DistMoved(i)/e.ell0 > e.cfg.params.StopTol {
				keepGoing = true
			}
		} else {
			e.pts.MovePointBack(i, e.region)
		}
	}

	e.es.Refresh(e.pts.XS(), e.pts.YS(), h)

	for i := 0; i < e.pts.N(); i++ {
		if e.pts.DistSinceTriangulation(i, e.tri.SnapshotXS(), e.tri.SnapshotYS())/e.ell0 > e.cfg.params.TriTol {
			e.stale = true
			break
		}
	}

	e.pts.EndIteration()
	e.iterations++

	return keepGoing, nil
}
