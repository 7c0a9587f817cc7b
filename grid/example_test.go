// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lbptrace/grid"
)

// ExampleCellSet_Components demonstrates how diagonal contact joins cells
// under Conn8 but not under Conn4.
//
//	. # .
//	# . .
//	. . #
func ExampleCellSet_Components() {
	s, _ := grid.FromCells([]grid.Cell{{1, 0}, {0, 1}, {2, 2}})

	fmt.Println("conn4:", len(s.Components(grid.Conn4)))
	for i, comp := range s.Components(grid.Conn8) {
		fmt.Printf("conn8 component %d: %v\n", i, comp)
	}

	// Output:
	// conn4: 3
	// conn8 component 0: [(1,0) (0,1)]
	// conn8 component 1: [(2,2)]
}
