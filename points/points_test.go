package points_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyspring/polyspring/points"
	"github.com/polyspring/polyspring/region"
)

func buildBuffer(rows [][2]float64) points.Buffer {
	data := make([]float64, 0, len(rows)*2)
	for _, r := range rows {
		data = append(data, r[0], r[1])
	}
	return points.Buffer{Data: data, Stride: 2, XCol: 0, YCol: 1}
}

func TestSet_TooFewPoints(t *testing.T) {
	ps := points.New()
	err := ps.Set(buildBuffer([][2]float64{{0, 0}, {1, 1}}))
	assert.ErrorIs(t, err, points.ErrTooFewPoints)
}

func TestSet_NilBuffer(t *testing.T) {
	ps := points.New()
	err := ps.Set(points.Buffer{Data: nil, Stride: 2})
	assert.ErrorIs(t, err, points.ErrNilBuffer)
}

func TestSet_BadStride(t *testing.T) {
	ps := points.New()
	err := ps.Set(points.Buffer{Data: []float64{1, 2, 3}, Stride: 2, XCol: 0, YCol: 2})
	assert.ErrorIs(t, err, points.ErrBadStride)
}

func TestSet_RaggedBuffer(t *testing.T) {
	ps := points.New()
	err := ps.Set(points.Buffer{Data: []float64{1, 2, 3, 4, 5}, Stride: 2, XCol: 0, YCol: 1})
	assert.ErrorIs(t, err, points.ErrRaggedBuffer)
}

func TestSet_MultiBuffer(t *testing.T) {
	ps := points.New()
	b1 := buildBuffer([][2]float64{{0, 0}, {1, 0}})
	b2 := buildBuffer([][2]float64{{0, 1}})
	require.NoError(t, ps.Set(b1, b2))
	assert.Equal(t, 3, ps.N())
}

func TestPreUniformize_Bounds(t *testing.T) {
	ps := points.New()
	rows := [][2]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	require.NoError(t, ps.Set(buildBuffer(rows)))

	sq := region.NewSquare()
	ps.PreUniformize(sq)

	xmin, ymin, xmax, ymax := sq.InnerBox()
	gotMinX, gotMaxX := ps.X(0), ps.X(0)
	gotMinY, gotMaxY := ps.Y(0), ps.Y(0)
	for i := 0; i < ps.N(); i++ {
		x, y := ps.X(i), ps.Y(i)
		if x < gotMinX {
			gotMinX = x
		}
		if x > gotMaxX {
			gotMaxX = x
		}
		if y < gotMinY {
			gotMinY = y
		}
		if y > gotMaxY {
			gotMaxY = y
		}
	}
	assert.InDelta(t, xmin, gotMinX, 1e-9)
	assert.InDelta(t, xmax, gotMaxX, 1e-9)
	assert.InDelta(t, ymin, gotMinY, 1e-9)
	assert.InDelta(t, ymax, gotMaxY, 1e-9)
}

// TestPreUniformize_TiesShareRank pins down dense-rank tie-breaking: two
// points sharing a value on an axis must land on the same output value,
// not be split across the inner box by their position in the input.
func TestPreUniformize_TiesShareRank(t *testing.T) {
	ps := points.New()
	rows := [][2]float64{{0, 0}, {1, 0}, {0, 1}}
	require.NoError(t, ps.Set(buildBuffer(rows)))

	sq := region.NewSquare()
	ps.PreUniformize(sq)

	lo, _, hi, _ := sq.InnerBox()

	assert.InDelta(t, lo, ps.X(0), 1e-9)
	assert.InDelta(t, lo, ps.Y(0), 1e-9)
	assert.InDelta(t, hi, ps.X(1), 1e-9)
	assert.InDelta(t, lo, ps.Y(1), 1e-9)
	assert.InDelta(t, lo, ps.X(2), 1e-9)
	assert.InDelta(t, hi, ps.Y(2), 1e-9)
}

func TestIntegrateAndEndIteration(t *testing.T) {
	ps := points.New()
	require.NoError(t, ps.Set(buildBuffer([][2]float64{{0, 0}, {1, 0}, {0, 1}})))
	ps.PreUniformize(region.NewSquare())

	x0, y0 := ps.X(0), ps.Y(0)
	ps.AddPush(0, 0.1, -0.2)
	assert.Greater(t, ps.DistMoved(0), 0.0)

	ps.Integrate()
	assert.InDelta(t, x0+0.1, ps.X(0), 1e-9)
	assert.InDelta(t, y0-0.2, ps.Y(0), 1e-9)

	ps.EndIteration()
	px, py := ps.Push(0)
	assert.Equal(t, 0.0, px)
	assert.Equal(t, 0.0, py)
}

func TestWithinRegionAndMoveBack(t *testing.T) {
	ps := points.New()
	require.NoError(t, ps.Set(buildBuffer([][2]float64{{0, 0}, {1, 0}, {0, 1}})))
	sq := region.NewSquare()
	ps.PreUniformize(sq)

	ps.AddPush(0, -10, -10)
	ps.Integrate()
	assert.False(t, ps.WithinRegion(0, sq))

	ps.MovePointBack(0, sq)
	assert.True(t, ps.WithinRegion(0, sq))
	x, y := ps.X(0), ps.Y(0)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestDistSinceTriangulation(t *testing.T) {
	ps := points.New()
	require.NoError(t, ps.Set(buildBuffer([][2]float64{{0, 0}, {1, 0}, {0, 1}})))
	ps.PreUniformize(region.NewSquare())

	snapX := append([]float64(nil), ps.XS()...)
	snapY := append([]float64(nil), ps.YS()...)

	assert.Equal(t, 0.0, ps.DistSinceTriangulation(0, snapX, snapY))

	ps.AddPush(0, 0.05, 0)
	ps.Integrate()
	assert.InDelta(t, 0.05, ps.DistSinceTriangulation(0, snapX, snapY), 1e-9)
}

func TestPoints_ScaledAppliesRecordedMinAndRange(t *testing.T) {
	ps := points.New()
	require.NoError(t, ps.Set(buildBuffer([][2]float64{{10, 100}, {20, 200}, {30, 150}})))
	scaled := ps.Points(true)
	// Set records min 10 / range 20 on x and min 100 / range 100 on y.
	// Before PreUniformize the stored values are still the raw input, and
	// Points(true) maps each of them through min + v*range.
	assert.InDeltaSlice(t, []float64{210, 10100, 410, 20100, 610, 15100}, scaled, 1e-9)
}

func TestAt_OutOfRange(t *testing.T) {
	ps := points.New()
	require.NoError(t, ps.Set(buildBuffer([][2]float64{{0, 0}, {1, 0}, {0, 1}})))
	_, _, err := ps.At(99)
	assert.ErrorIs(t, err, points.ErrIndexOutOfRange)
}
