// SPDX-License-Identifier: MIT

package grid

// Components finds all contiguous regions of the set under the given
// connectivity. Each component lists its cells in BFS discovery order;
// components are ordered by their smallest cell (row-major), so the result
// is deterministic for a given set.
//
// A rasterized trajectory is a chain of 8-connected segments that share
// endpoints, so it always forms exactly one Conn8 component. Under Conn4,
// diagonal steps split it.
//
// Time:   O(n·d), where d = 4 or 8.
// Memory: O(n) for visited flags and output.
func (s *CellSet) Components(conn Connectivity) [][]Cell {
	if s.Len() == 0 {
		return nil
	}
	seen := make(map[Cell]struct{}, s.Len())
	var comps [][]Cell
	offsets := conn.Offsets()

	for _, c0 := range s.Cells() {
		if _, ok := seen[c0]; ok {
			continue
		}
		// BFS to collect component
		queue := []Cell{c0}
		seen[c0] = struct{}{}

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range offsets {
				v := u.Add(d[0], d[1])
				if !s.Has(v) {
					continue
				}
				if _, ok := seen[v]; !ok {
					seen[v] = struct{}{}
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
