// SPDX-License-Identifier: MIT

package grid

// Dense is a rectangular occupancy view of a CellSet.
// Values[y][x] is 1 when the cell (Origin.X+x, Origin.Y+y) is a member, else 0.
type Dense struct {
	Origin        Cell
	Width, Height int
	Values        [][]int
}

// Dense materializes the set over its bounding box.
// Returns ErrEmptySet if the set has no members.
// Complexity: O(n + W×H) time and memory.
func (s *CellSet) Dense() (*Dense, error) {
	r, err := s.Bounds()
	if err != nil {
		return nil, err
	}
	w, h := r.Width(), r.Height()
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
	}
	for c := range s.m {
		values[c.Y-r.Min.Y][c.X-r.Min.X] = 1
	}
	return &Dense{Origin: r.Min, Width: w, Height: h, Values: values}, nil
}

// InBounds reports whether the local index (x,y) lies within the view.
func (d *Dense) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// At reports occupancy of the absolute cell c; cells outside the view are empty.
func (d *Dense) At(c Cell) bool {
	x, y := c.X-d.Origin.X, c.Y-d.Origin.Y
	if !d.InBounds(x, y) {
		return false
	}
	return d.Values[y][x] != 0
}
