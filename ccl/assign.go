package ccl

import "github.com/katalvlaran/labelgrid/grid"

// assign is the first labeling pass. It scans active cells in row-major
// order and, for each, collects the labels of its active causal neighbors:
//
//   - no labeled causal neighbor → allocate a fresh provisional label;
//   - one or more → assign the minimum collected label, then union the
//     collected labels' classes into the one with the smallest root.
//
// The merge direction is decided by root, not by raw label: the collected
// minimum's class can already be rooted above another collected class, and
// attaching by raw value would hang a smaller root under a larger one.
// Unioning into the smallest root on every merge event is the tie-break
// that keeps the numerically smallest label canonical for the whole
// component regardless of merge order.
//
// Mutates Cell.Label in place and registers equivalences in uf.
// Complexity: O(W×H×d) time, d = len(offsets).
func assign(g *grid.Grid, offsets [][2]int, uf *UnionFind) {
	cells := g.Cells()
	collected := make([]int, 0, len(offsets))

	for i := range cells {
		c := &cells[i]
		if !c.Active {
			c.Label = grid.Unlabeled
			continue
		}

		// Collect labels of active, already-labeled causal neighbors.
		// Causal offsets point strictly backwards in scan order, so every
		// active neighbor reached here has been labeled by this same loop.
		collected = collected[:0]
		for _, d := range offsets {
			nx, ny := c.X+d[0], c.Y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			n := &cells[g.Index(nx, ny)]
			if n.Active && n.Label != grid.Unlabeled {
				collected = append(collected, n.Label)
			}
		}

		if len(collected) == 0 {
			c.Label = uf.MakeSet()
			continue
		}

		minLabel := collected[0]
		for _, l := range collected[1:] {
			if l < minLabel {
				minLabel = l
			}
		}
		c.Label = minLabel

		minRoot := uf.Find(collected[0])
		for _, l := range collected[1:] {
			if r := uf.Find(l); r < minRoot {
				minRoot = r
			}
		}
		for _, l := range collected {
			uf.Union(minRoot, l)
		}
	}
}
