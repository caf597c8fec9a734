package points

// Integrate performs the explicit forward step P += push for every
// point. There is no velocity carried between steps; EndIteration
// zeroes push right after, so the system is overdamped by construction
// (spec: "Do not introduce momentum").
func (ps *PointSet) Integrate() {
	for i := range ps.x {
		ps.x[i] += ps.pushX[i]
		ps.y[i] += ps.pushY[i]
	}
}

// EndIteration zeroes the push accumulator for every point, the last
// step of each relaxation iteration.
func (ps *PointSet) EndIteration() {
	for i := range ps.pushX {
		ps.pushX[i] = 0
		ps.pushY[i] = 0
	}
}
