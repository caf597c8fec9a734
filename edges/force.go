package edges

import "math"

// ApplyForce distributes a signed magnitude f for edge i to its
// endpoints' push accumulators. theta = atan2(dy, dx) is taken from the
// edge's last Refresh; positive f pushes endpoints apart (repulsion):
//
//	push[a] += (-f*cos(theta), -f*sin(theta))
//	push[b] += (+f*cos(theta), +f*sin(theta))
//
// This is the corrected sign convention spec §9 calls out (an earlier
// revision the spec was distilled from had it backwards). Equal and
// opposite contributions mean sum(push) over all points is invariant
// to any single ApplyForce call.
func (es *EdgeSet) ApplyForce(i int, f float64, pusher Pusher) {
	e := es.edges[i]
	theta := math.Atan2(e.Dy, e.Dx)
	fx := f * math.Cos(theta)
	fy := f * math.Sin(theta)

	pusher.AddPush(e.A, -fx, -fy)
	pusher.AddPush(e.B, fx, fy)
}
