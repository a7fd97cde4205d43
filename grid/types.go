// Package grid defines the core cell/grid types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/labelgrid.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates width or height is not positive.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Unlabeled is the reserved label of inactive or not-yet-labeled cells.
const Unlabeled = 0

// Cell represents a single grid cell: its coordinates, whether it takes part
// in component labeling, and the label assigned by the most recent recompute.
type Cell struct {
	X, Y   int  // Coordinates within the grid
	Active bool // Whether the cell belongs to a region
	Label  int  // Component label; Unlabeled (0) when inactive or unassigned
}

// Grid is a fixed-size, row-major collection of Cells. Width and Height are
// immutable after New; only the Active and Label fields of cells mutate.
type Grid struct {
	Width, Height int
	cells         []Cell
}
