// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"slices"
)

// CellSet is a set of unique cells. The zero value is not usable; create
// sets with NewCellSet or FromCells.
//
// A CellSet is not safe for concurrent mutation. Concurrent reads are fine
// once construction has finished.
type CellSet struct {
	m map[Cell]struct{}
}

// NewCellSet returns an empty set with room for about n cells.
func NewCellSet(n int) *CellSet {
	if n < 0 {
		n = 0
	}
	return &CellSet{m: make(map[Cell]struct{}, n)}
}

// FromCells builds a set from cells, rejecting lists that repeat a cell.
// Returns ErrDuplicateCell wrapped with the offending cell.
// Complexity: O(n).
func FromCells(cells []Cell) (*CellSet, error) {
	s := NewCellSet(len(cells))
	for _, c := range cells {
		if !s.Add(c) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateCell, c)
		}
	}
	return s, nil
}

// Add inserts c and reports whether it was not already present.
func (s *CellSet) Add(c Cell) bool {
	if _, ok := s.m[c]; ok {
		return false
	}
	s.m[c] = struct{}{}
	return true
}

// AddAll inserts every cell of cells, ignoring repeats.
// Returns the number of cells that were new.
func (s *CellSet) AddAll(cells []Cell) int {
	added := 0
	for _, c := range cells {
		if s.Add(c) {
			added++
		}
	}
	return added
}

// Has reports whether c is a member. A nil set has no members.
func (s *CellSet) Has(c Cell) bool {
	if s == nil {
		return false
	}
	_, ok := s.m[c]
	return ok
}

// Len returns the number of cells in the set. A nil set is empty.
func (s *CellSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// Cells returns the members in row-major order (Y, then X).
// The slice is freshly allocated on every call.
// Complexity: O(n log n).
func (s *CellSet) Cells() []Cell {
	if s.Len() == 0 {
		return nil
	}
	out := make([]Cell, 0, len(s.m))
	for c := range s.m {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCells)

	return out
}

// Equal reports whether s and o hold exactly the same cells.
func (s *CellSet) Equal(o *CellSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	if s.Len() == 0 {
		return true
	}
	for c := range s.m {
		if !o.Has(c) {
			return false
		}
	}
	return true
}

// Bounds returns the smallest Rect containing every member.
// Returns ErrEmptySet for an empty set.
// Complexity: O(n).
func (s *CellSet) Bounds() (Rect, error) {
	if s.Len() == 0 {
		return Rect{}, ErrEmptySet
	}
	first := true
	var r Rect
	for c := range s.m {
		if first {
			r = Rect{Min: c, Max: c}
			first = false
			continue
		}
		r.Min.X = min(r.Min.X, c.X)
		r.Min.Y = min(r.Min.Y, c.Y)
		r.Max.X = max(r.Max.X, c.X)
		r.Max.Y = max(r.Max.Y, c.Y)
	}
	return r, nil
}

func compareCells(a, b Cell) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
