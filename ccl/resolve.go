package ccl

import "github.com/katalvlaran/labelgrid/grid"

// resolve is the second labeling pass. It rewrites every active cell's
// provisional label to its canonical root and returns the number of distinct
// canonical labels encountered — the area count.
// Complexity: O(W×H) time, O(regions) memory.
func resolve(g *grid.Grid, uf *UnionFind) int {
	cells := g.Cells()
	seen := make(map[int]struct{})

	for i := range cells {
		c := &cells[i]
		if !c.Active || c.Label == grid.Unlabeled {
			continue
		}
		c.Label = uf.Find(c.Label)
		seen[c.Label] = struct{}{}
	}

	return len(seen)
}
