package render_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lbptrace/grid"
	"github.com/katalvlaran/lbptrace/lbp"
	"github.com/katalvlaran/lbptrace/render"
)

func TestOccupancy_Scaled(t *testing.T) {
	cells, err := lbp.Trace([]float64{-1, 1}, []float64{0, 2})
	require.NoError(t, err)

	img, err := render.Occupancy(cells, 4)
	require.NoError(t, err)
	require.Equal(t, 12, img.Bounds().Dx())
	require.Equal(t, 12, img.Bounds().Dy())

	// Diagonal (-1,0) (0,1) (1,2): blocks on the main diagonal are white.
	for by := 0; by < 3; by++ {
		for bx := 0; bx < 3; bx++ {
			want := uint8(0)
			if bx == by {
				want = 0xff
			}
			for _, off := range [][2]int{{0, 0}, {3, 3}, {1, 2}} {
				got := img.GrayAt(bx*4+off[0], by*4+off[1]).Y
				assert.Equal(t, want, got, "block (%d,%d) offset %v", bx, by, off)
			}
		}
	}
}

func TestOccupancy_Errors(t *testing.T) {
	cells, _ := grid.FromCells([]grid.Cell{{X: 0, Y: 0}})
	_, err := render.Occupancy(cells, 0)
	require.ErrorIs(t, err, render.ErrInvalidScale)

	_, err = render.Occupancy(grid.NewCellSet(0), 1)
	require.ErrorIs(t, err, grid.ErrEmptySet)

	wide, _ := grid.FromCells([]grid.Cell{{X: 0, Y: 0}, {X: 1 << 20, Y: 1 << 20}})
	_, err = render.Occupancy(wide, 1)
	require.ErrorIs(t, err, render.ErrTooLarge)
}

func TestEncodePNG(t *testing.T) {
	cells, _ := grid.FromCells([]grid.Cell{{X: 0, Y: 0}, {X: 2, Y: 1}})
	img, err := render.Occupancy(cells, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.EncodePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestHistogramChart(t *testing.T) {
	h, err := lbp.ComputeHistogram([]float64{0, 2, 0, 2, 0, 2}, []float64{0, 0, 1, 1, 2, 2})
	require.NoError(t, err)

	p, err := render.HistogramChart(h, "block")
	require.NoError(t, err)
	assert.Equal(t, "block", p.Title.Text)

	var svg bytes.Buffer
	require.NoError(t, render.WriteChart(&svg, p, 6*vg.Inch, 3*vg.Inch, "svg"))
	assert.True(t, strings.Contains(svg.String(), "<svg"))

	var raster bytes.Buffer
	require.NoError(t, render.WriteChart(&raster, p, 4*vg.Inch, 2*vg.Inch, "png"))
	_, err = png.Decode(&raster)
	require.NoError(t, err)

	require.Error(t, render.WriteChart(&raster, p, vg.Inch, vg.Inch, "bogus"))
}
