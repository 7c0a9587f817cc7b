// Package lbp computes a Local Binary Pattern (LBP) histogram signature of
// a 2-D trajectory.
//
// 🚀 What is the signature?
//
//	A trajectory (two equal-length coordinate slices) is truncated to the
//	integer lattice, every consecutive pair of points is rasterized with
//	Bresenham, and the union of those cells forms the filled set. A 3×3
//	window is then centered once on every cell adjacent to (or on) a filled
//	cell; the window's occupancy is read as a 9-bit number and counted in a
//	512-bucket histogram.
//
// ✨ Key properties:
//   - exact: integer rasterization, no floating point after truncation
//   - deduplicated: each window center is visited once, however many
//     filled cells nominate it
//   - deterministic: the same trajectory always yields the same histogram
//   - stateless: nothing is shared between calls; calls may run concurrently
//
// Window scan order (MSB first):
//
//	dy = −1:  (+1,−1) (0,−1) (−1,−1)   → bits 8 7 6
//	dy =  0:  (+1, 0) (0, 0) (−1, 0)   → bits 5 4 3
//	dy = +1:  (+1,+1) (0,+1) (−1,+1)   → bits 2 1 0
//
// ⚙️ Usage:
//
//	h, err := lbp.ComputeHistogram(xs, ys)
//	if errors.Is(err, lbp.ErrLengthMismatch) { ... }
//	for _, b := range h.NonZero() {
//		fmt.Println(b.Code, b.Count)
//	}
//
//	// Large trajectories: rasterize segments on 4 goroutines.
//	res, err := lbp.Compute(xs, ys, lbp.WithWorkers(4))
//
// Performance:
//
//   - Time:   O(P + C log C), P = rasterized cells, C = filled cells
//   - Memory: O(C)
//
// Logging goes through a package-level slog.Logger that is silent until
// SetLogger is called.
package lbp
