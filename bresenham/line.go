// SPDX-License-Identifier: MIT

package bresenham

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lbptrace/grid"
)

// Line returns the Bresenham cells from (x0,y0) to (x1,y1), both inclusive.
//
// Algorithm:
//  1. Pick the canonical endpoint (smaller X, then smaller Y) as the walk
//     origin so that swapping the endpoints visits the same cells.
//  2. Let the dominant (major) axis be the one with the larger |delta|.
//  3. Keep the doubled error d = 2·dminor − dmajor. On each of the dmajor
//     unit steps along the major axis, first step the minor axis if d > 0
//     (d −= 2·dmajor), then add 2·dminor.
//  4. Reverse the walk if the caller's start was not the canonical origin,
//     so the result always runs from (x0,y0) to (x1,y1).
//
// The path is 8-connected and contains no repeated cell.
//
// Line does not validate its input: the segment must pass Check, otherwise
// the delta arithmetic can overflow or the allocation can fail.
//
// Complexity: O(max(|dx|,|dy|)) time and memory.
func Line(x0, y0, x1, y1 int) []grid.Cell {
	reversed := x1 < x0 || (x1 == x0 && y1 < y0)
	if reversed {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	swap := dy > dx
	dmajor, dminor := dx, dy
	if swap {
		dmajor, dminor = dy, dx
	}

	out := make([]grid.Cell, 0, dmajor+1)
	x, y := x0, y0
	out = append(out, grid.Cell{X: x, Y: y})

	d := 2*dminor - dmajor
	for i := 0; i < dmajor; i++ {
		if d > 0 {
			if swap {
				x += sx
			} else {
				y += sy
			}
			d -= 2 * dmajor
		}
		d += 2 * dminor
		if swap {
			y += sy
		} else {
			x += sx
		}
		out = append(out, grid.Cell{X: x, Y: y})
	}

	if reversed {
		slices.Reverse(out)
	}
	return out
}

// MaxSteps is the largest number of cells a single segment may produce.
const MaxSteps = 1 << 22

// Check reports whether Line(x0,y0,x1,y1) is safe to call: both spans must
// be representable and the segment must produce at most MaxSteps cells.
// Returns ErrSegmentTooLong otherwise.
// Complexity: O(1).
func Check(x0, y0, x1, y1 int) error {
	dx, dy := span(x0, x1), span(y0, y1)
	if dx >= MaxSteps || dy >= MaxSteps {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d) exceeds %d cells", ErrSegmentTooLong, x0, y0, x1, y1, MaxSteps)
	}
	return nil
}

// Steps returns the number of cells Line(x0,y0,x1,y1) produces.
// The segment must pass Check.
// Complexity: O(1).
func Steps(x0, y0, x1, y1 int) int {
	return max(abs(x1-x0), abs(y1-y0)) + 1
}

// span returns |b−a| without overflow. Unsigned subtraction of the two's
// complement values is exact once the larger operand comes first.
func span(a, b int) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(b) - uint64(a)
}

// LineFloat is Line for callers holding untyped numeric values.
// Every argument must already be an integer: fractional values, NaN, ±Inf
// and values outside the int range are rejected with ErrInvalidArgument.
// Values are never truncated here; truncation is the caller's decision.
// Segments that fail Check are rejected with ErrSegmentTooLong.
//
// All four arguments are validated before any cell is produced.
func LineFloat(x0, y0, x1, y1 float64) ([]grid.Cell, error) {
	args := [4]struct {
		name string
		v    float64
	}{{"x0", x0}, {"y0", y0}, {"x1", x1}, {"y1", y1}}

	var ints [4]int
	for i, a := range args {
		n, err := toInt(a.v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%v", err, a.name, a.v)
		}
		ints[i] = n
	}
	if err := Check(ints[0], ints[1], ints[2], ints[3]); err != nil {
		return nil, err
	}
	return Line(ints[0], ints[1], ints[2], ints[3]), nil
}

// intLimit is 2^(bits-1), the first float64 above the int range.
var intLimit = -float64(math.MinInt)

// toInt converts v to int only if the conversion is exact.
func toInt(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, ErrInvalidArgument
	}
	if v < -intLimit || v >= intLimit {
		return 0, ErrInvalidArgument
	}
	return int(v), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
