// SPDX-License-Identifier: MIT

package similarity

import "errors"

var (
	// ErrZeroHistogram indicates a histogram with no counted patterns.
	ErrZeroHistogram = errors.New("similarity: histogram has no counts")
	// ErrUnknownMetric indicates an unsupported metric name or value.
	ErrUnknownMetric = errors.New("similarity: unknown metric")
	// ErrNoReferences indicates an empty reference list.
	ErrNoReferences = errors.New("similarity: no reference signatures")
)
