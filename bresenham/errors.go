// SPDX-License-Identifier: MIT

package bresenham

import "errors"

var (
	// ErrInvalidArgument indicates an endpoint that is not an integer: a
	// fractional value, NaN, ±Inf, or a value outside the int range.
	ErrInvalidArgument = errors.New("bresenham: all arguments must be integers")

	// ErrSegmentTooLong indicates a segment that would produce more than
	// MaxSteps cells, including spans too wide to represent as an int.
	ErrSegmentTooLong = errors.New("bresenham: segment too long")
)
