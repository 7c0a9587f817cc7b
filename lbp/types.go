// SPDX-License-Identifier: MIT

package lbp

// PatternSize is the number of cells in a 3×3 neighborhood.
const PatternSize = 9

// Buckets is the number of distinct 9-bit codes and the histogram length.
const Buckets = 1 << PatternSize

// Pattern is the occupancy of a 3×3 neighborhood in scan order:
// rows top to bottom (dy = −1, 0, +1), columns right to left
// (dx = +1, 0, −1) within each row. Element 0 is the most significant bit.
type Pattern [PatternSize]bool

// windowOffsets lists (dx, dy) in pattern scan order.
var windowOffsets = [PatternSize][2]int{
	{1, -1}, {0, -1}, {-1, -1},
	{1, 0}, {0, 0}, {-1, 0},
	{1, 1}, {0, 1}, {-1, 1},
}

// Histogram counts pattern occurrences: index = code, value = count.
// The array type fixes the length at Buckets.
type Histogram [Buckets]int

// Bucket is one non-empty histogram entry.
type Bucket struct {
	Code  int `json:"code"`
	Count int `json:"count"`
}
