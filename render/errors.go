// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrInvalidScale indicates a pixel scale below 1.
	ErrInvalidScale = errors.New("render: scale must be >= 1")
	// ErrTooLarge indicates an output image above MaxPixels.
	ErrTooLarge = errors.New("render: image exceeds pixel limit")
)
