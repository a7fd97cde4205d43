// Package ccl provides the two-pass connected-component labeling pipeline.
// Cells with Active == false always end a run with label 0; active cells end
// with the canonical label of their region, numbered from 1.
package ccl

import "github.com/katalvlaran/labelgrid/grid"

// Label runs a full relabeling of g under the given connectivity mode and
// returns the number of distinct connected regions among active cells.
//
// All label state (union-find, label counter, Cell.Label values) is rebuilt
// from nothing on every call; no state survives between calls. Aside from
// rewriting the grid's label fields, Label is pure in its inputs.
//
// Error conditions:
//   - ErrNilGrid             : g is nil.
//   - ErrInvalidConnectivity : conn is neither Conn4 nor Conn8.
//
// On error the grid is left untouched.
//
// Complexity: O(W×H×d) time with near-constant amortized union-find work,
// O(active cells) memory.
func Label(g *grid.Grid, conn Connectivity) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	offsets, err := CausalOffsets(conn)
	if err != nil {
		return 0, err
	}

	// Fresh per-call state: a stale union-find from a previous run would
	// resurrect merged classes after the grid has changed.
	uf := NewUnionFind(g.ActiveCount())
	assign(g, offsets, uf)

	return resolve(g, uf), nil
}
