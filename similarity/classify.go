// SPDX-License-Identifier: MIT

package similarity

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lbptrace/lbp"
)

// Reference is a labelled signature to classify against.
type Reference struct {
	Label     string
	Histogram lbp.Histogram
}

// Match is a reference's distance from a query.
type Match struct {
	Index    int     `json:"index"`
	Label    string  `json:"label"`
	Distance float64 `json:"distance"`
}

// Rank returns every reference ordered by increasing distance from query.
// Ties keep reference order. Returns ErrNoReferences for an empty list and
// wraps any Distance error with the reference index.
// Complexity: O(R·B + R log R), B = lbp.Buckets.
func Rank(query lbp.Histogram, refs []Reference, m Metric) ([]Match, error) {
	if len(refs) == 0 {
		return nil, ErrNoReferences
	}
	out := make([]Match, len(refs))
	for i, r := range refs {
		d, err := Distance(query, r.Histogram, m)
		if err != nil {
			return nil, fmt.Errorf("reference %d (%s): %w", i, r.Label, err)
		}
		out[i] = Match{Index: i, Label: r.Label, Distance: d}
	}
	slices.SortStableFunc(out, func(a, b Match) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return out, nil
}

// Nearest is the 1-nearest-neighbor classification of query.
func Nearest(query lbp.Histogram, refs []Reference, m Metric) (Match, error) {
	ranked, err := Rank(query, refs, m)
	if err != nil {
		return Match{}, err
	}
	lbp.Logger().Debug("similarity: nearest reference",
		"metric", m.String(), "label", ranked[0].Label, "distance", ranked[0].Distance)
	return ranked[0], nil
}
