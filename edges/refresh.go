package edges

import (
	"math"

	"github.com/polyspring/polyspring/density"
)

// Refresh recomputes (dx, dy), length, and midpoint density for every
// edge from the current point positions xs/ys, so that a subsequent
// ScalingFactor/ApplyForce call sees post-step geometry. Fixed
// iteration order (0..len-1) keeps the pass deterministic, following
// the kernel style of matrix's Add/Sub: a single allocation-free loop,
// no temporaries carried across iterations.
func (es *EdgeSet) Refresh(xs, ys []float64, h density.Func) {
	if h == nil {
		h = density.DefaultFunc
	}
	for i := range es.edges {
		e := &es.edges[i]
		dx := xs[e.B] - xs[e.A]
		dy := ys[e.B] - ys[e.A]
		e.Dx, e.Dy = dx, dy
		e.Len = math.Hypot(dx, dy)

		midX := (xs[e.A] + xs[e.B]) / 2
		midY := (ys[e.A] + ys[e.B]) / 2
		e.H = h(midX, midY)
	}
}
