package board

import (
	"github.com/katalvlaran/labelgrid/ccl"
	"github.com/katalvlaran/labelgrid/grid"
)

// RecomputeAsync labels an immutable snapshot of the grid on a background
// goroutine and delivers the Result on the returned channel (buffered, then
// closed — receiving cannot block the worker).
//
// When the worker finishes, the computed labels are merged back into the
// live grid in one atomic step, and any mutations queued while the recompute
// was in flight are applied afterwards in arrival order. If the grid or mode
// changed between snapshot and merge (a synchronous Recompute or
// SetConnectivity ran in between), the stale labels are discarded instead of
// merged; the Result still describes the snapshot that was submitted.
//
// For identical input the delivered Result is identical to the synchronous
// path's. There is no cancellation: the task is bounded and fast.
// Complexity: O(W×H×d) off the caller's goroutine.
func (b *Board) RecomputeAsync() <-chan Result {
	b.mu.Lock()
	snap := b.grid.Clone()
	conn := b.conn
	gen := b.gen
	b.inflight++
	b.mu.Unlock()

	out := make(chan Result, 1)
	go func() {
		defer close(out)

		// conn was validated when it was committed, so Label cannot fail
		// on a snapshot of committed state.
		areas, err := ccl.Label(snap, conn)
		if err != nil {
			panic("board: recompute over committed state failed: " + err.Error())
		}

		b.merge(snap, areas, gen)
		out <- Result{Grid: snap, Areas: areas}
	}()

	return out
}

// merge commits labels computed from a snapshot taken at generation gen.
// The mutation queue drains only once the last in-flight recompute has
// merged, so overlapping flights never race a queued mutation. Stale results
// (generation moved on) skip the label commit but still count down.
func (b *Board) merge(labeled *grid.Grid, areas int, gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.gen == gen {
		// The live grid is cell-for-cell the snapshot's origin: mutations
		// were queued, not applied, so copying every cell commits exactly
		// the label fields in one step.
		copy(b.grid.Cells(), labeled.Cells())
		b.areas = areas
	}

	b.inflight--
	if b.inflight == 0 {
		b.drainPendingLocked()
	}
}
