package points

// Set concatenates one or more input buffers of (x, y) rows into the
// PointSet, replacing any previous contents. Coordinates are left in
// original units; per-axis minimum and range are recorded for later use
// by Points(true). Call PreUniformize afterwards to obtain a sane
// initial condition for relaxation.
//
// Returns ErrTooFewPoints if the total row count across all buffers is
// below 3 (a triangulation needs at least three points), ErrNilBuffer
// for a buffer with nil Data, ErrBadStride for a non-positive Stride or
// an XCol/YCol outside [0, Stride), and ErrRaggedBuffer if Data's
// length is not an exact multiple of Stride.
func (ps *PointSet) Set(buffers ...Buffer) error {
	total := 0
	for _, b := range buffers {
		if b.Data == nil {
			return pointsErrorf("Set", ErrNilBuffer)
		}
		if b.Stride <= 0 || b.XCol < 0 || b.XCol >= b.Stride || b.YCol < 0 || b.YCol >= b.Stride {
			return pointsErrorf("Set", ErrBadStride)
		}
		if len(b.Data)%b.Stride != 0 {
			return pointsErrorf("Set", ErrRaggedBuffer)
		}
		total += b.rows()
	}
	if total < 3 {
		return pointsErrorf("Set", ErrTooFewPoints)
	}

	x := make([]float64, 0, total)
	y := make([]float64, 0, total)
	for _, b := range buffers {
		rows := b.rows()
		for r := 0; r < rows; r++ {
			base := r * b.Stride
			x = append(x, b.Data[base+b.XCol])
			y = append(y, b.Data[base+b.YCol])
		}
	}

	minX, maxX := minMax(x)
	minY, maxY := minMax(y)

	ps.x = x
	ps.y = y
	ps.pushX = make([]float64, total)
	ps.pushY = make([]float64, total)
	ps.origMinX, ps.origRangeX = minX, maxX-minX
	ps.origMinY, ps.origRangeY = minY, maxY-minY

	return nil
}

func minMax(vs []float64) (min, max float64) {
	min, max = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Points returns the current point cloud as interleaved (x, y) pairs.
// If scaled is false, normalized [0,1]x[0,1] coordinates are returned.
// If scaled is true, coordinates are mapped back into the original
// units recorded at Set time: orig = min + normalized*range (range 0
// maps every point to min, avoiding a divide-by-zero for a
// single-valued axis).
func (ps *PointSet) Points(scaled bool) []float64 {
	n := ps.N()
	out := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		x, y := ps.x[i], ps.y[i]
		if scaled {
			x = ps.origMinX + x*ps.origRangeX
			y = ps.origMinY + y*ps.origRangeY
		}
		out = append(out, x, y)
	}
	return out
}
