package points

import "sort"

// Region is the minimal capability PreUniformize needs: an inset box to
// seed points into. Defined here (rather than imported from the region
// package) so points has no dependency on region; region.Region
// satisfies it structurally.
type Region interface {
	InnerBox() (xmin, ymin, xmax, ymax float64)
}

// PreUniformize replaces each axis's values with the rank-based uniform
// map into r's inner box: for each axis independently, points are
// sorted by value and assigned position rank/(D-1)*L + L0, where rank
// is the dense rank among the D distinct values and [L0, L0+L] is the
// inner box's projection on that axis. An axis whose values are all
// equal is spread by sorted position instead, rank/(N-1). Either way
// the smallest value lands on L0 and the largest on L0+L. The joint
// distribution retains whatever rank correlation the input had; each
// marginal is uniform over the inner box apart from tied values, which
// share one position. An input whose points all share one x or one y
// value is therefore spread across the box rather than left collinear.
//
// PreUniformize requires N >= 2 (Set already enforces N >= 3); it
// operates in place and is idempotent only in the sense that repeating
// it re-derives the same ranks from the already-uniformized values.
func (ps *PointSet) PreUniformize(r Region) {
	xmin, ymin, xmax, ymax := r.InnerBox()
	ps.x = rankUniformize(ps.x, xmin, xmax)
	ps.y = rankUniformize(ps.y, ymin, ymax)
}

// rankUniformize returns a new slice where the value at each original
// index is replaced by its dense rank among the distinct input values,
// mapped linearly onto [lo, hi]. Ties share the same rank (and so the
// same output value): a value repeated by several points is never
// artificially split across the output range just because other points
// happen to take distinct values elsewhere in the axis. When every value
// is the same, points are instead spread over [lo, hi] by their position
// in the (stable) sort order.
func rankUniformize(vs []float64, lo, hi float64) []float64 {
	n := len(vs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return vs[idx[a]] < vs[idx[b]] })

	// Assign dense ranks: equal consecutive values (after sorting)
	// receive the same rank.
	ranks := make([]int, n)
	rank := 0
	for pos, originalIdx := range idx {
		if pos > 0 && vs[idx[pos-1]] != vs[originalIdx] {
			rank++
		}
		ranks[originalIdx] = rank
	}
	distinctCount := rank + 1

	out := make([]float64, n)
	span := hi - lo
	last := distinctCount - 1
	if last == 0 {
		for pos, originalIdx := range idx {
			out[originalIdx] = lo + span*float64(pos)/float64(n-1)
		}
		return out
	}
	for i, r := range ranks {
		out[i] = lo + span*float64(r)/float64(last)
	}
	return out
}
