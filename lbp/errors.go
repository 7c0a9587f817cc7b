// SPDX-License-Identifier: MIT
// Package: lbp
//
// errors.go: sentinel errors for the lbp package.
//
// Callers branch with errors.Is; every returned error wraps one of these
// with call-site context via %w.

package lbp

import "errors"

var (
	// ErrInvalidArgument indicates a malformed input: a pattern of the wrong
	// arity or with a non-binary element, a code outside [0,511], a cell list
	// that repeats a cell, or a coordinate that cannot be truncated to int.
	ErrInvalidArgument = errors.New("lbp: invalid argument")

	// ErrLengthMismatch indicates x and y coordinate slices of unequal length.
	ErrLengthMismatch = errors.New("lbp: coordinate sequences differ in length")
)
