// Package board defines configuration options and the result type
// for the board subpackage of github.com/katalvlaran/labelgrid.
package board

import (
	"github.com/katalvlaran/labelgrid/ccl"
	"github.com/katalvlaran/labelgrid/grid"
)

// Result carries the outcome of one recompute: a labeled snapshot of the
// grid and the number of distinct regions. Grid never aliases the board's
// live grid, so callers may keep or mutate it freely.
type Result struct {
	Grid  *grid.Grid
	Areas int
}

// Options holds the tunable parameters of a Board.
// Use DefaultOptions() to get a default setup (Conn4).
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn ccl.Connectivity
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithConnectivity returns an Option that sets the initial connectivity mode.
func WithConnectivity(conn ccl.Connectivity) Option {
	return func(o *Options) {
		o.Conn = conn
	}
}

// DefaultOptions returns Options initialized with Conn4 connectivity.
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{Conn: ccl.Conn4}
}
