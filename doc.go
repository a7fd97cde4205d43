// Package labelgrid assigns connected-component labels to the active cells
// of a 2D grid and reports how many distinct regions exist, under a
// configurable 4- or 8-neighbor connectivity rule.
//
// 🚀 What is labelgrid?
//
//	A small, focused library built from three subpackages:
//		• grid/  — fixed-size row-major grid of cells (active flag + label)
//		• ccl/   — two-pass connected-component labeling over a union-find
//		• board/ — stateful front: mutations, mode switching, background recompute
//
// ✨ Why choose labelgrid?
//
//   - Deterministic labels — the canonical label of every region is the
//     smallest label ever assigned inside it, independent of scan or merge order
//   - Pure Go – no cgo, no hidden deps
//   - Snapshot-based offload — recompute on a background goroutine without
//     ever sharing a live grid across threads
//
// Quick ASCII example (1 = active, three regions under Conn4, one under Conn8):
//
//	1 . .
//	. 1 .
//	. . 1
//
// Typical flow: paint cells via board.SetCellActive, pick a connectivity via
// board.SetConnectivity, read back the labeled snapshot from board.Recompute
// and map each nonzero label to a display value.
//
//	go get github.com/katalvlaran/labelgrid
package labelgrid
