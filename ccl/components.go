package ccl

import (
	"sort"

	"github.com/katalvlaran/labelgrid/grid"
)

// Components groups the active cells of an already-labeled grid by canonical
// label. Each component is a slice of row-major cell indices in scan order;
// components are ordered by ascending canonical label, so the enumeration is
// fully deterministic for a given grid and mode.
//
// To convert an index back to (x,y), use g.Coordinate(idx).
//
// Call Label first: an unlabeled grid yields no components.
//
// Time:   O(W×H + R log R), R = number of regions.
// Memory: O(W×H) for the output.
func Components(g *grid.Grid) [][]int {
	byLabel := make(map[int][]int)
	cells := g.Cells()
	for i := range cells {
		if cells[i].Active && cells[i].Label != grid.Unlabeled {
			byLabel[cells[i].Label] = append(byLabel[cells[i].Label], i)
		}
	}

	labels := make([]int, 0, len(byLabel))
	for l := range byLabel {
		labels = append(labels, l)
	}
	sort.Ints(labels)

	comps := make([][]int, 0, len(labels))
	for _, l := range labels {
		comps = append(comps, byLabel[l])
	}

	return comps
}
