package bresenham_test

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lbptrace/bresenham"
	"github.com/katalvlaran/lbptrace/grid"
)

// LineSuite exercises the integer rasterizer.
type LineSuite struct {
	suite.Suite
}

// TestDiagonal checks the canonical 45° case.
func (s *LineSuite) TestDiagonal() {
	want := []grid.Cell{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	require.Equal(s.T(), want, bresenham.Line(0, 0, 3, 3))
}

// TestShallowSlope checks a known x-major run and its reverse walk.
func (s *LineSuite) TestShallowSlope() {
	want := []grid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 2}, {X: 5, Y: 2}}
	require.Equal(s.T(), want, bresenham.Line(0, 0, 5, 2))

	rev := slices.Clone(want)
	slices.Reverse(rev)
	require.Equal(s.T(), rev, bresenham.Line(5, 2, 0, 0))
}

// TestAxisAligned covers horizontal and vertical runs in both directions.
func (s *LineSuite) TestAxisAligned() {
	require.Equal(s.T(), []grid.Cell{{X: -1, Y: 4}, {X: 0, Y: 4}, {X: 1, Y: 4}}, bresenham.Line(-1, 4, 1, 4))
	require.Equal(s.T(), []grid.Cell{{X: 2, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: -1}}, bresenham.Line(2, 1, 2, -1))
}

// TestDegenerate verifies that start == end yields exactly that cell.
func (s *LineSuite) TestDegenerate() {
	for _, c := range []grid.Cell{{X: 0, Y: 0}, {X: -7, Y: 3}, {X: 1000, Y: -1000}} {
		require.Equal(s.T(), []grid.Cell{c}, bresenham.Line(c.X, c.Y, c.X, c.Y))
	}
}

// TestSymmetryAndConnectivity sweeps every segment inside a small window.
func (s *LineSuite) TestSymmetryAndConnectivity() {
	const r = 4
	for x0 := -r; x0 <= r; x0++ {
		for y0 := -r; y0 <= r; y0++ {
			for x1 := -r; x1 <= r; x1++ {
				for y1 := -r; y1 <= r; y1++ {
					fwd := bresenham.Line(x0, y0, x1, y1)
					bwd := bresenham.Line(x1, y1, x0, y0)

					require.Equal(s.T(), grid.Cell{X: x0, Y: y0}, fwd[0])
					require.Equal(s.T(), grid.Cell{X: x1, Y: y1}, fwd[len(fwd)-1])
					require.Len(s.T(), fwd, bresenham.Steps(x0, y0, x1, y1))

					fs, err := grid.FromCells(fwd)
					require.NoError(s.T(), err, "duplicate cell in %v", fwd)
					bs, err := grid.FromCells(bwd)
					require.NoError(s.T(), err)
					require.True(s.T(), fs.Equal(bs), "asymmetric: %v vs %v", fwd, bwd)

					for i := 1; i < len(fwd); i++ {
						require.True(s.T(), fwd[i-1].Adjacent(fwd[i]),
							"gap between %v and %v in %v", fwd[i-1], fwd[i], fwd)
					}
				}
			}
		}
	}
}

// TestLineFloat_Integral accepts whole-number floats and matches Line.
func (s *LineSuite) TestLineFloat_Integral() {
	got, err := bresenham.LineFloat(0, 0, -3, 7)
	require.NoError(s.T(), err)
	if diff := cmp.Diff(bresenham.Line(0, 0, -3, 7), got); diff != "" {
		s.T().Errorf("LineFloat mismatch (-want +got):\n%s", diff)
	}
}

// TestLineFloat_Fractional makes every non-empty subset of arguments
// fractional and expects rejection each time.
func (s *LineSuite) TestLineFloat_Fractional() {
	for mask := 1; mask < 1<<4; mask++ {
		args := [4]float64{0, 0, 10, 10}
		for i := 0; i < 4; i++ {
			if mask&(1<<i) != 0 {
				args[i] += 0.5
			}
		}
		cells, err := bresenham.LineFloat(args[0], args[1], args[2], args[3])
		require.ErrorIs(s.T(), err, bresenham.ErrInvalidArgument, "args=%v", args)
		require.Nil(s.T(), cells)
	}
}

// TestLineFloat_NonFinite rejects NaN, infinities and out-of-range values.
func (s *LineSuite) TestLineFloat_NonFinite() {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e300, -1e300} {
		_, err := bresenham.LineFloat(0, 0, v, 0)
		require.ErrorIs(s.T(), err, bresenham.ErrInvalidArgument, "v=%v", v)
	}
}

// TestLineFloat_HugeSpan rejects finite integral endpoints whose segment
// would overflow or exceed MaxSteps cells.
func (s *LineSuite) TestLineFloat_HugeSpan() {
	for _, xs := range [][2]float64{{-9e18, 9e18}, {0, 1e15}, {0, bresenham.MaxSteps}} {
		cells, err := bresenham.LineFloat(xs[0], 0, xs[1], 0)
		require.ErrorIs(s.T(), err, bresenham.ErrSegmentTooLong, "xs=%v", xs)
		require.Nil(s.T(), cells)
		_, err = bresenham.LineFloat(0, xs[0], 0, xs[1])
		require.ErrorIs(s.T(), err, bresenham.ErrSegmentTooLong, "ys=%v", xs)
	}
}

// TestCheck covers the limit boundary and spans wider than int.
func (s *LineSuite) TestCheck() {
	require.NoError(s.T(), bresenham.Check(0, 0, bresenham.MaxSteps-1, 0))
	require.Equal(s.T(), bresenham.MaxSteps, bresenham.Steps(0, 0, bresenham.MaxSteps-1, 0))
	require.NoError(s.T(), bresenham.Check(math.MaxInt, math.MinInt, math.MaxInt-5, math.MinInt+7))

	require.ErrorIs(s.T(), bresenham.Check(0, 0, bresenham.MaxSteps, 0), bresenham.ErrSegmentTooLong)
	require.ErrorIs(s.T(), bresenham.Check(0, bresenham.MaxSteps, 0, 0), bresenham.ErrSegmentTooLong)
	require.ErrorIs(s.T(), bresenham.Check(math.MinInt, 0, math.MaxInt, 0), bresenham.ErrSegmentTooLong)
	require.ErrorIs(s.T(), bresenham.Check(0, math.MaxInt, 0, math.MinInt), bresenham.ErrSegmentTooLong)
}

func TestLineSuite(t *testing.T) {
	suite.Run(t, new(LineSuite))
}
