// Package grid provides the cell container the labeling pipeline runs over:
// a fixed-size, row-major 2D grid of cells carrying an active flag and a
// component label.
//
// What:
//
//   - Grid owns a rectangular Width×Height collection of Cells; dimensions
//     are set at construction and never change.
//   - SetActive flips a cell's active flag and zeroes its label; it never
//     triggers recomputation by itself.
//   - Clone produces a deep copy, the immutable snapshot handed to a
//     background recompute.
//
// Why:
//
//   - Painting UIs: toggle cells, then hand the grid to ccl.Label.
//   - Offload safety: workers only ever see Clone() output, never the live grid.
//
// Label convention:
//
//   - Label 0 means "unlabeled or inactive"; after a full recompute every
//     active cell holds a label ≥ 1 and every inactive cell holds 0.
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
//   - ErrOutOfBounds: a coordinate lies outside [0,Width)×[0,Height).
//
// Complexity:
//
//   - Construction and Clone: O(W×H) time and memory.
//   - All accessors and SetActive: O(1).
package grid
