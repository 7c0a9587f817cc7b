// Package bresenham rasterizes straight segments between integer lattice
// points with the classic incremental Bresenham algorithm.
//
// 🚀 What does it produce?
//
//	The ordered cells a segment passes through, start and end inclusive,
//	exactly one cell per unit step along the dominant axis. Consecutive
//	cells are always 8-adjacent, so the path has no gaps.
//
// ✨ Key properties:
//   - integer-only arithmetic: deltas are doubled so the error term stays
//     integral; results are bit-exact on every platform
//   - endpoint symmetry: Line(a,b,c,d) and Line(c,d,a,b) cover the same
//     cells (the walk always starts from the canonical endpoint)
//   - degenerate segments (start == end) yield a single cell
//
// ⚙️ Usage:
//
//	cells := bresenham.Line(0, 0, 3, 3)
//	// [(0,0) (1,1) (2,2) (3,3)]
//
//	// Untyped numeric input (decoded JSON, CSV) goes through LineFloat,
//	// which rejects fractional values instead of truncating them:
//	cells, err := bresenham.LineFloat(0, 0, 10.5, 10)
//	// errors.Is(err, bresenham.ErrInvalidArgument) == true
//
// Performance:
//
//   - Time:   O(max(|dx|, |dy|))
//   - Memory: O(max(|dx|, |dy|)) for the output slice
package bresenham
