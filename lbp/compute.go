// SPDX-License-Identifier: MIT

package lbp

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lbptrace/bresenham"
	"github.com/katalvlaran/lbptrace/grid"
)

// Result bundles a histogram with the intermediate data it was built from.
type Result struct {
	Histogram Histogram
	// Cells is the filled set: the union of all rasterized segments.
	Cells *grid.CellSet
	// Points is the trajectory length; Segments = max(Points−1, 0).
	Points   int
	Segments int
}

// ComputeHistogram returns the LBP histogram of the trajectory (xs[i], ys[i]).
//
// Steps:
//  1. Reject slices of different length (ErrLengthMismatch).
//  2. Truncate every coordinate toward zero: 2.9 → 2, −2.9 → −2.
//  3. Rasterize each consecutive pair and union the cells.
//  4. Run the extractor once over the union.
//
// Trajectories with fewer than two points yield an all-zero histogram.
// Coordinates that cannot be truncated to an int (NaN, ±Inf, out of range)
// yield ErrInvalidArgument, as do segments longer than bresenham.MaxSteps
// cells (the error also matches bresenham.ErrSegmentTooLong).
func ComputeHistogram(xs, ys []float64, opts ...Option) (Histogram, error) {
	res, err := Compute(xs, ys, opts...)
	if err != nil {
		return Histogram{}, err
	}
	return res.Histogram, nil
}

// Compute is ComputeHistogram that also returns the filled set and sizes.
func Compute(xs, ys []float64, opts ...Option) (*Result, error) {
	cells, err := Trace(xs, ys, opts...)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Histogram: HistogramOf(cells),
		Cells:     cells,
		Points:    len(xs),
		Segments:  max(len(xs)-1, 0),
	}
	Logger().Debug("lbp: histogram computed",
		"points", res.Points, "segments", res.Segments,
		"cells", cells.Len(), "patterns", res.Histogram.Total())

	return res, nil
}

// Trace truncates and rasterizes the trajectory, returning the filled set
// without extracting patterns. Errors as for ComputeHistogram.
func Trace(xs, ys []float64, opts ...Option) (*grid.CellSet, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: len(xs)=%d, len(ys)=%d", ErrLengthMismatch, len(xs), len(ys))
	}
	pts, err := truncatePoints(xs, ys)
	if err != nil {
		return nil, err
	}
	if len(pts) < 2 {
		return grid.NewCellSet(0), nil
	}
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		if err := bresenham.Check(a.X, a.Y, b.X, b.Y); err != nil {
			return nil, fmt.Errorf("%w: segment %d: %w", ErrInvalidArgument, i, err)
		}
	}

	cfg := newConfig(opts...)
	if cfg.workers > 1 && len(pts) > 2 {
		return traceParallel(pts, cfg.workers)
	}

	filled := grid.NewCellSet(len(pts))
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		filled.AddAll(bresenham.Line(a.X, a.Y, b.X, b.Y))
	}
	return filled, nil
}

// traceParallel rasterizes segments concurrently, then merges the per-segment
// runs in segment order. Extraction never starts before the merge finishes.
func traceParallel(pts []grid.Cell, workers int) (*grid.CellSet, error) {
	runs := make([][]grid.Cell, len(pts)-1)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range runs {
		g.Go(func() error {
			a, b := pts[i], pts[i+1]
			runs[i] = bresenham.Line(a.X, a.Y, b.X, b.Y)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filled := grid.NewCellSet(len(pts))
	for _, run := range runs {
		filled.AddAll(run)
	}
	return filled, nil
}

// truncatePoints converts the raw coordinates to lattice cells.
func truncatePoints(xs, ys []float64) ([]grid.Cell, error) {
	pts := make([]grid.Cell, len(xs))
	for i := range xs {
		x, err := truncate(xs[i])
		if err != nil {
			return nil, fmt.Errorf("%w: xs[%d]=%v", err, i, xs[i])
		}
		y, err := truncate(ys[i])
		if err != nil {
			return nil, fmt.Errorf("%w: ys[%d]=%v", err, i, ys[i])
		}
		pts[i] = grid.Cell{X: x, Y: y}
	}
	return pts, nil
}

// intLimit is 2^(bits-1), the first float64 above the int range.
var intLimit = -float64(math.MinInt)

// truncate rounds v toward zero. Go's float-to-int conversion already
// truncates; it is undefined for NaN, infinities and out-of-range values.
func truncate(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidArgument
	}
	t := math.Trunc(v)
	if t < -intLimit || t >= intLimit {
		return 0, ErrInvalidArgument
	}
	return int(t), nil
}
