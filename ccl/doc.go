// Package ccl implements two-pass connected-component labeling (CCL) over a
// grid.Grid, assigning a shared label to every maximal connected group of
// active cells and counting the distinct regions.
//
// What:
//
//   - CausalOffsets yields, per connectivity mode, the neighbor offsets that
//     precede the current cell in row-major scan order. Restricting the first
//     pass to these "causal" neighbors is what makes a single forward scan
//     sufficient: every neighbor consulted is already labeled.
//   - UnionFind tracks equivalence classes of provisional labels with
//     two-pass path compression over a dense, label-indexed parent slice.
//   - Label runs the pipeline: a forward assignment pass that allocates
//     provisional labels and records equivalences, then a resolution pass
//     that rewrites every label to its canonical root and counts regions.
//
// Why:
//
//   - Painting/editor grids: recount regions after every cell toggle.
//   - Game maps: island detection with a deterministic label per island.
//   - Display mapping: canonical labels are stable, so a hue derived from a
//     label is stable too.
//
// Determinism:
//
//	The canonical label of every component is the smallest provisional label
//	ever assigned inside it, independent of scan or merge order. The assigner
//	enforces this by always assigning the minimum causal-neighbor label and
//	unioning every other collected label into that minimum.
//
// Errors:
//
//   - ErrInvalidConnectivity: mode is neither Conn4 nor Conn8.
//   - ErrNilGrid: Label received a nil grid.
//   - Passing an unregistered label to UnionFind.Find or Union panics: it
//     signals a bookkeeping bug in the assigner, not bad caller input.
//
// Complexity (N = W×H, d = 2 or 4 causal neighbors):
//
//   - Label: O(N×d) time with near-constant amortized union-find operations,
//     O(active cells) memory for the parent slice.
package ccl
