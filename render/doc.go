// Package render draws LBP artifacts for inspection: the filled cell set as
// a grayscale raster, and the 512-bucket histogram as a bar chart.
//
// Occupancy images put one cell per pixel block with y growing downward,
// the same orientation the pattern scan uses (dy = −1 is the top row).
// Charts are gonum/plot plots and can be written in any format plot
// supports (png, svg, pdf, eps, ...).
package render
