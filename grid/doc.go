// Package grid models the sparse integer lattice that trajectories are
// rasterized onto.
//
// What:
//
//   - Cell is a single lattice address (X, Y). It is a comparable value type
//     and is used directly as a map key.
//   - CellSet is an unordered set of cells with a deterministic enumeration
//     order (row-major: Y first, then X).
//   - Components splits a set into 4- or 8-connected regions.
//   - Dense renders a set into a rectangular occupancy matrix anchored at the
//     set's bounding box.
//
// Why:
//
//   - Rasterized polylines are sparse; a hash set keeps memory proportional
//     to the number of filled cells instead of the bounding box area.
//   - Neighborhood scans need O(1) membership tests at arbitrary offsets,
//     including negative coordinates.
//
// Complexity:
//
//   - Add, Has:   O(1) average.
//   - Cells:      O(n log n) for the sort.
//   - Components: O(n·d), d = 4 or 8.
//   - Dense:      O(n + W×H).
//
// Errors:
//
//   - ErrDuplicateCell: FromCells received the same cell twice.
//   - ErrEmptySet:      Bounds or Dense called on an empty set.
package grid
