// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lbptrace/lbp"
)

// HistogramChart builds a bar chart with one bar per pattern code.
func HistogramChart(h lbp.Histogram, title string) (*plot.Plot, error) {
	values := make(plotter.Values, lbp.Buckets)
	for i, c := range h {
		values[i] = float64(c)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "pattern code"
	p.Y.Label.Text = "count"

	bars, err := plotter.NewBarChart(values, vg.Points(1))
	if err != nil {
		return nil, fmt.Errorf("render: bar chart: %w", err)
	}
	bars.Color = color.Black
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.X.Min = 0
	p.X.Max = lbp.Buckets

	return p, nil
}

// WriteChart renders p in the given format ("png", "svg", "pdf", ...) to w.
func WriteChart(w io.Writer, p *plot.Plot, width, height vg.Length, format string) error {
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("render: chart writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write chart: %w", err)
	}
	return nil
}
