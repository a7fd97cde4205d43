package grid

// New constructs a Grid of inactive, unlabeled cells with fixed positions.
// Returns ErrBadDimensions if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	cells := make([]Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[y*width+x] = Cell{X: x, Y: y}
		}
	}

	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// SetActive sets the active flag of cell (x,y) and zeroes its label.
// It does not trigger any recomputation. Returns ErrOutOfBounds and leaves
// the grid unchanged if (x,y) is outside the grid.
// Complexity: O(1).
func (g *Grid) SetActive(x, y int, active bool) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	c := &g.cells[g.Index(x, y)]
	c.Active = active
	c.Label = Unlabeled

	return nil
}

// Active reports whether cell (x,y) is active; out-of-bounds cells are not.
// Complexity: O(1).
func (g *Grid) Active(x, y int) bool {
	return g.InBounds(x, y) && g.cells[g.Index(x, y)].Active
}

// Label returns the label of cell (x,y), or Unlabeled for out-of-bounds
// coordinates.
// Complexity: O(1).
func (g *Grid) Label(x, y int) int {
	if !g.InBounds(x, y) {
		return Unlabeled
	}

	return g.cells[g.Index(x, y)].Label
}

// Cells exposes the backing slice so the labeling passes can read flags and
// write labels directly, in row-major order.
// Complexity: O(1).
func (g *Grid) Cells() []Cell { return g.cells }

// ActiveCount returns the number of active cells.
// Complexity: O(W×H).
func (g *Grid) ActiveCount() int {
	var n int
	for i := range g.cells {
		if g.cells[i].Active {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of the grid. The copy shares no memory with the
// original, making it safe to hand to a background recompute.
// Complexity: O(W×H) time and memory.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}
