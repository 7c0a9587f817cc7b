// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/lbptrace/grid"
	"github.com/katalvlaran/lbptrace/lbp"
)

// MaxPixels bounds the size of images produced by Occupancy.
const MaxPixels = 1 << 26

// Occupancy renders cells over their bounding box: filled cells are white,
// empty cells black, each cell a scale×scale block.
//
// Returns grid.ErrEmptySet for an empty set, ErrInvalidScale for scale < 1
// and ErrTooLarge when the result would exceed MaxPixels.
// Complexity: O(n + W×H×scale²).
func Occupancy(cells *grid.CellSet, scale int) (*image.Gray, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidScale, scale)
	}
	r, err := cells.Bounds()
	if err != nil {
		return nil, err
	}
	if r.Width() > MaxPixels/scale || r.Height() > MaxPixels/scale ||
		r.Width()*scale > MaxPixels/(r.Height()*scale) {
		return nil, fmt.Errorf("%w: %dx%d cells at scale %d", ErrTooLarge, r.Width(), r.Height(), scale)
	}
	d, err := cells.Dense()
	if err != nil {
		return nil, err
	}
	w, h := d.Width*scale, d.Height*scale

	src := image.NewGray(image.Rect(0, 0, d.Width, d.Height))
	for y, row := range d.Values {
		for x, v := range row {
			if v != 0 {
				src.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}
	lbp.Logger().Debug("render: occupancy", "cells", cells.Len(), "width", w, "height", h)
	if scale == 1 {
		return src, nil
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
