// SPDX-License-Identifier: MIT

package lbp

import (
	"fmt"

	"github.com/katalvlaran/lbptrace/grid"
)

// Extract visits every distinct window center of filled exactly once and
// calls fn with the center and its pattern code.
//
// Behavior:
//  1. Filled cells are taken in row-major order (grid.CellSet.Cells).
//  2. Each filled cell nominates the 9 centers at offsets −1..+1 in X and Y.
//  3. A center already in the visited set is skipped; otherwise its
//     pattern is read and reported.
//
// The visiting order is deterministic for a given set. An empty or nil set
// produces no calls.
//
// Complexity: O(C log C) time, O(C) memory, C = filled.Len().
func Extract(filled *grid.CellSet, fn func(center grid.Cell, code int)) {
	if filled.Len() == 0 {
		return
	}
	centers := grid.NewCellSet(filled.Len() * 3)
	for _, c := range filled.Cells() {
		for oy := -1; oy <= 1; oy++ {
			for ox := -1; ox <= 1; ox++ {
				center := c.Add(ox, oy)
				if !centers.Add(center) {
					continue
				}
				fn(center, PatternAt(filled, center).Encode())
			}
		}
	}
	Logger().Debug("lbp: patterns extracted", "filled", filled.Len(), "centers", centers.Len())
}

// Patterns returns the codes Extract would report, in visiting order.
// Each call recomputes the sequence, so it can be consumed repeatedly.
func Patterns(filled *grid.CellSet) []int {
	var codes []int
	Extract(filled, func(_ grid.Cell, code int) {
		codes = append(codes, code)
	})
	return codes
}

// ExtractCells is Patterns for callers holding a plain cell list.
// The list must be a proper set: a repeated cell yields ErrInvalidArgument
// before any pattern is produced.
func ExtractCells(cells []grid.Cell) ([]int, error) {
	filled, err := grid.FromCells(cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return Patterns(filled), nil
}

// HistogramOf accumulates every pattern of filled into a fresh histogram.
// Running it twice on the same set yields identical histograms.
func HistogramOf(filled *grid.CellSet) Histogram {
	var h Histogram
	Extract(filled, func(_ grid.Cell, code int) {
		h[code]++
	})
	return h
}
