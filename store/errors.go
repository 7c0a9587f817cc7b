// SPDX-License-Identifier: MIT

package store

import "errors"

var (
	// ErrNotFound indicates no signature with the requested ID.
	ErrNotFound = errors.New("store: signature not found")
	// ErrCorruptHistogram indicates a stored histogram that is not 512 non-negative counts.
	ErrCorruptHistogram = errors.New("store: corrupt histogram payload")
	// ErrUnsupportedDriver indicates a database driver other than sqlite or postgres.
	ErrUnsupportedDriver = errors.New("store: unsupported driver")
)
