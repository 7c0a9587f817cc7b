// Package lbptrace turns 2-D trajectories into local binary pattern (LBP)
// histogram signatures that can be compared, stored and rendered.
//
// 🚀 What is lbptrace?
//
//	A small pipeline built from independent packages:
//		• Rasterizing: integer Bresenham lines with symmetric endpoints
//		• Grids: lattice cells, cell sets, 4/8-connected components
//		• Patterns: 3×3 neighbourhood windows encoded as 9-bit codes
//		• Histograms: 512-bucket signatures of a whole trajectory
//		• Similarity: L1, Euclidean, cosine, χ², Hellinger, JS and more
//		• Persistence: signatures in SQLite or PostgreSQL
//		• Rendering: occupancy PNGs and histogram bar charts
//
// ✨ Why choose lbptrace?
//
//   - Deterministic: the same trajectory always yields the same histogram,
//     whatever the worker count
//   - Small core: bresenham, grid and lbp need nothing beyond errgroup
//   - Sentinel errors: every failure is matchable with errors.Is
//
// Layout:
//
//	bresenham/   Line, LineFloat, Steps
//	grid/        Cell, CellSet, Components, Dense
//	lbp/         Pattern codes, Extract, ComputeHistogram, Compute
//	similarity/  Metric, Distance, Rank, Nearest
//	store/       signature repository over sqlx
//	render/      Occupancy PNG and HistogramChart
//	trajectory/  CSV input
//	config/      JSON configuration for cmd/lbpsig
//
// Quick ASCII example: the walk (0,0)→(2,0)→(0,1) paints
//
//	■ ■ ■
//	■ ■ ·
//
// and every lattice cell whose 3×3 window touches a painted cell
// contributes one code. The code of a window is read row by row from the
// top, right to left within a row, most significant bit first, so with x
// growing to the right the bit weights are:
//
//	 64 128 256
//	  8  16  32
//	  1   2   4
//
//	go install github.com/katalvlaran/lbptrace/cmd/lbpsig@latest
package lbptrace
