package region

import "math"

// Square is the axis-aligned unit square [0,1] x [0,1]. It is the only
// Region variant this repository implements; behavior for any other
// region name is undefined (spec: "Non-square regions are declared in
// the interface but unimplemented").
type Square struct{}

// innerBoxFraction is the fraction of sqrt(Area) used as the inner box's
// half-side, so that for the unit square the inset margin is
// (1 - 2/3)/2 ~= 0.167 per side.
const innerBoxFraction = 1.0 / 3.0

// NewSquare returns the unit square region.
func NewSquare() Square { return Square{} }

// Area returns 1 for the unit square.
func (Square) Area() float64 { return 1 }

// InnerBox returns a box centered at (0.5, 0.5) with half-side
// sqrt(Area)/3, i.e. [0.167, 0.833] on each axis for the unit square.
func (s Square) InnerBox() (xmin, ymin, xmax, ymax float64) {
	half := math.Sqrt(s.Area()) * innerBoxFraction
	return 0.5 - half, 0.5 - half, 0.5 + half, 0.5 + half
}

// Contains is the closed membership test 0 <= x <= 1 && 0 <= y <= 1.
func (Square) Contains(x, y float64) bool {
	return x >= 0 && x <= 1 && y >= 0 && y <= 1
}

// Project clamps each coordinate independently into [0, 1].
func (Square) Project(x, y float64) (px, py float64) {
	return clamp01(x), clamp01(y)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
