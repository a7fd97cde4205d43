package board

import (
	"sync"

	"github.com/katalvlaran/labelgrid/ccl"
	"github.com/katalvlaran/labelgrid/grid"
)

// mutation is one queued SetCellActive call, replayed after an in-flight
// recompute merges.
type mutation struct {
	x, y   int
	active bool
}

// Board owns a grid and its connectivity mode. All exported methods are safe
// for concurrent use; internally a single mutex serializes every access so
// the labeling scan never observes a moving grid.
type Board struct {
	mu       sync.Mutex
	grid     *grid.Grid
	conn     ccl.Connectivity
	areas    int        // last committed region count
	gen      uint64     // bumped on every committed grid/mode change
	inflight int        // async recomputes currently holding snapshots
	pending  []mutation // mutations queued while any recompute is in flight
}

// New constructs a Board with an all-inactive width×height grid.
// Returns grid.ErrBadDimensions for non-positive sizes and
// ccl.ErrInvalidConnectivity if an option supplied an unsupported mode.
// Complexity: O(W×H).
func New(width, height int, opts ...Option) (*Board, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.Conn.Valid() {
		return nil, ccl.ErrInvalidConnectivity
	}
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}

	return &Board{grid: g, conn: o.Conn}, nil
}

// Connectivity returns the currently configured connectivity mode.
func (b *Board) Connectivity() ccl.Connectivity {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.conn
}

// Areas returns the region count committed by the most recent recompute.
func (b *Board) Areas() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.areas
}

// Snapshot returns a deep copy of the current grid, labels included.
// Complexity: O(W×H).
func (b *Board) Snapshot() *grid.Grid {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.grid.Clone()
}

// SetCellActive flips the active flag of cell (x,y) and zeroes its label.
// Out-of-bounds coordinates return grid.ErrOutOfBounds and change nothing.
// While an async recompute is in flight the mutation is queued and applied
// right after the merge; bounds are still checked immediately, since they
// depend only on the immutable dimensions.
// It never triggers a recompute by itself.
// Complexity: O(1).
func (b *Board) SetCellActive(x, y int, active bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.grid.InBounds(x, y) {
		return grid.ErrOutOfBounds
	}
	if b.inflight > 0 {
		b.pending = append(b.pending, mutation{x: x, y: y, active: active})
		return nil
	}
	b.gen++

	return b.grid.SetActive(x, y, active)
}

// SetConnectivity switches the connectivity mode and, on success, triggers a
// synchronous recompute. An invalid mode returns ccl.ErrInvalidConnectivity
// and retains the previous mode.
// Complexity: O(W×H).
func (b *Board) SetConnectivity(conn ccl.Connectivity) (Result, error) {
	if !conn.Valid() {
		return Result{}, ccl.ErrInvalidConnectivity
	}

	b.mu.Lock()
	b.conn = conn
	b.gen++
	b.mu.Unlock()

	return b.Recompute()
}

// Recompute rebuilds all region labels from scratch over the live grid and
// returns a labeled snapshot plus the region count. Runs to completion under
// the lock, so it never interleaves with mutations. Mutations queued behind
// an in-flight async recompute are committed first, so the result reflects
// every SetCellActive call that has already returned; any in-flight merge
// becomes stale and discards its labels.
// Complexity: O(W×H×d).
func (b *Board) Recompute() (Result, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.drainPendingLocked()

	areas, err := ccl.Label(b.grid, b.conn)
	if err != nil {
		return Result{}, err
	}
	b.areas = areas

	return Result{Grid: b.grid.Clone(), Areas: areas}, nil
}

// drainPendingLocked commits every queued mutation in arrival order.
// Caller must hold b.mu.
func (b *Board) drainPendingLocked() {
	for _, m := range b.pending {
		b.gen++
		_ = b.grid.SetActive(m.x, m.y, m.active)
	}
	b.pending = b.pending[:0]
}
