// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lbptrace/lbp"
)

// Normalize returns h scaled to unit L1 mass as a fresh slice of length
// lbp.Buckets. Returns ErrZeroHistogram when h has no counts.
func Normalize(h lbp.Histogram) ([]float64, error) {
	v := h.Floats()
	sum := floats.Sum(v)
	if sum == 0 {
		return nil, ErrZeroHistogram
	}
	floats.Scale(1/sum, v)
	return v, nil
}

// Distance compares a and b under m after normalising both.
// Identical histograms are at distance exactly 0.
func Distance(a, b lbp.Histogram, m Metric) (float64, error) {
	if m < 0 || int(m) >= len(metricNames) {
		return 0, fmt.Errorf("%w: %v", ErrUnknownMetric, m)
	}
	p, err := Normalize(a)
	if err != nil {
		return 0, fmt.Errorf("first histogram: %w", err)
	}
	q, err := Normalize(b)
	if err != nil {
		return 0, fmt.Errorf("second histogram: %w", err)
	}
	if a == b {
		return 0, nil
	}
	return distance(p, q, m), nil
}

// distance applies m to two probability vectors of equal length.
func distance(p, q []float64, m Metric) float64 {
	switch m {
	case L1:
		return floats.Distance(p, q, 1)
	case Euclidean:
		return floats.Distance(p, q, 2)
	case Cosine:
		d := 1 - floats.Dot(p, q)/(floats.Norm(p, 2)*floats.Norm(q, 2))
		return math.Max(d, 0)
	case ChiSquare:
		var sum float64
		for i := range p {
			if s := p[i] + q[i]; s > 0 {
				diff := p[i] - q[i]
				sum += diff * diff / s
			}
		}
		return sum / 2
	case Intersection:
		var common float64
		for i := range p {
			common += math.Min(p[i], q[i])
		}
		return math.Max(1-common, 0)
	case Hellinger:
		d := stat.Hellinger(p, q)
		// Rounding can push the Bhattacharyya coefficient past 1.
		if math.IsNaN(d) {
			return 0
		}
		return d
	case JensenShannon:
		return math.Max(stat.JensenShannon(p, q), 0)
	}
	panic("similarity: unreachable metric")
}
