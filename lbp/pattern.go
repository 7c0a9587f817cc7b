// SPDX-License-Identifier: MIT

package lbp

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lbptrace/grid"
)

// PatternAt reads the 3×3 neighborhood of center from filled.
// Complexity: O(1).
func PatternAt(filled *grid.CellSet, center grid.Cell) Pattern {
	var p Pattern
	for i, d := range windowOffsets {
		p[i] = filled.Has(center.Add(d[0], d[1]))
	}
	return p
}

// Encode returns the MSB-first integer value of p, in [0, Buckets).
func (p Pattern) Encode() int {
	code := 0
	for _, bit := range p {
		code <<= 1
		if bit {
			code |= 1
		}
	}
	return code
}

// String renders p as nine '0'/'1' characters in scan order.
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(PatternSize)
	for _, bit := range p {
		if bit {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// EncodePattern encodes a slice of exactly PatternSize booleans, first element
// as the most significant bit. Returns ErrInvalidArgument for any other length.
func EncodePattern(bits []bool) (int, error) {
	if len(bits) != PatternSize {
		return 0, fmt.Errorf("%w: pattern has %d elements, want %d", ErrInvalidArgument, len(bits), PatternSize)
	}
	var p Pattern
	copy(p[:], bits)
	return p.Encode(), nil
}

// ParsePattern reads a textual pattern such as "010111010".
// Every element must be '0' or '1'; any other element, or a length other
// than PatternSize, yields ErrInvalidArgument.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	if len(s) != PatternSize {
		return p, fmt.Errorf("%w: pattern %q has %d elements, want %d", ErrInvalidArgument, s, len(s), PatternSize)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			p[i] = true
		default:
			return Pattern{}, fmt.Errorf("%w: element %d of %q is not binary", ErrInvalidArgument, i, s)
		}
	}
	return p, nil
}

// DecodePattern is the inverse of Encode.
// Returns ErrInvalidArgument when code is outside [0, Buckets).
func DecodePattern(code int) (Pattern, error) {
	var p Pattern
	if code < 0 || code >= Buckets {
		return p, fmt.Errorf("%w: code %d outside [0,%d)", ErrInvalidArgument, code, Buckets)
	}
	for i := PatternSize - 1; i >= 0; i-- {
		p[i] = code&1 == 1
		code >>= 1
	}
	return p, nil
}
