// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrDuplicateCell indicates a cell list that is not a proper set.
	ErrDuplicateCell = errors.New("grid: duplicate cell")
	// ErrEmptySet indicates an operation that needs at least one cell.
	ErrEmptySet = errors.New("grid: cell set is empty")
)
