// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor offsets for c. Unknown values fall back to Conn4.
// The returned slice must not be modified.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Cell is a lattice address. Equality is by value.
type Cell struct {
	X, Y int
}

// Add returns the cell translated by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Adjacent reports whether c and o differ by at most one in each axis
// and are not the same cell (8-adjacency).
func (c Cell) Adjacent(o Cell) bool {
	if c == o {
		return false
	}
	return abs(c.X-o.X) <= 1 && abs(c.Y-o.Y) <= 1
}

// Less orders cells row-major: by Y, then by X.
func (c Cell) Less(o Cell) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Rect is an inclusive bounding box of cells.
type Rect struct {
	Min, Max Cell
}

// Width is the number of columns covered by r.
func (r Rect) Width() int { return r.Max.X - r.Min.X + 1 }

// Height is the number of rows covered by r.
func (r Rect) Height() int { return r.Max.Y - r.Min.Y + 1 }

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Cell) bool {
	return c.X >= r.Min.X && c.X <= r.Max.X && c.Y >= r.Min.Y && c.Y <= r.Max.Y
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
