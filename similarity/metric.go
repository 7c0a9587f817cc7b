// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"
	"strings"
)

// Metric selects a histogram distance.
type Metric int

const (
	L1 Metric = iota
	Euclidean
	Cosine
	ChiSquare
	Intersection
	Hellinger
	JensenShannon
)

var metricNames = [...]string{
	L1:            "l1",
	Euclidean:     "euclidean",
	Cosine:        "cosine",
	ChiSquare:     "chisquare",
	Intersection:  "intersection",
	Hellinger:     "hellinger",
	JensenShannon: "jensenshannon",
}

// Metrics lists every supported metric in declaration order.
func Metrics() []Metric {
	out := make([]Metric, len(metricNames))
	for i := range metricNames {
		out[i] = Metric(i)
	}
	return out
}

// String implements fmt.Stringer.
func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

// ParseMetric resolves a case-insensitive metric name.
func ParseMetric(name string) (Metric, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range metricNames {
		if s == n {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}
