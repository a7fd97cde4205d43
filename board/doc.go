// Package board is the stateful front of the labeling pipeline: it owns one
// grid plus the configured connectivity mode, accepts cell mutations, and
// recomputes region labels either synchronously or on a background worker.
//
// What:
//
//   - SetCellActive toggles a cell; out-of-bounds coordinates are rejected
//     and leave the board unchanged.
//   - SetConnectivity switches between Conn4 and Conn8; an invalid mode is
//     rejected and the previous mode is retained; a valid switch triggers a
//     full recompute.
//   - Recompute relabels synchronously and returns a labeled snapshot plus
//     the region count.
//   - RecomputeAsync relabels an immutable snapshot on a goroutine and
//     merges the labels back atomically when done; it produces identical
//     output to the synchronous path for identical input.
//
// Concurrency model:
//
//   - All state is guarded by one mutex; the labeling scan never runs over a
//     grid that another goroutine can mutate.
//   - Workers only ever receive Clone() snapshots, never the live grid.
//   - Mutations arriving while an async recompute is in flight are queued in
//     arrival order and applied once the last in-flight merge completes —
//     never concurrently with a scan, and never dropped. A synchronous
//     Recompute commits the queue up front, so its result always reflects
//     every mutation already acknowledged.
//   - There is no cancellation: a recompute is linear in cell count and
//     always runs to completion.
//
// Why:
//
//   - Painting UIs: keep the UI thread responsive while regions are
//     recounted after every stroke.
//
// Errors:
//
//   - grid.ErrOutOfBounds, grid.ErrBadDimensions from the grid layer.
//   - ccl.ErrInvalidConnectivity from mode validation.
package board
