// Package ccl defines the connectivity mode and sentinel errors
// for the ccl subpackage of github.com/katalvlaran/labelgrid.
package ccl

import "errors"

// Sentinel errors for labeling operations.
var (
	// ErrInvalidConnectivity indicates a mode other than Conn4 or Conn8.
	ErrInvalidConnectivity = errors.New("ccl: connectivity must be Conn4 or Conn8")
	// ErrNilGrid indicates a nil grid was passed to Label.
	ErrNilGrid = errors.New("ccl: grid is nil")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including
// diagonals (Conn8).
type Connectivity int

const (
	// Conn4 treats edge-adjacent neighbors as connected: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 additionally treats diagonal neighbors as connected.
	Conn8
)

// Valid reports whether c is a supported connectivity mode.
func (c Connectivity) Valid() bool { return c == Conn4 || c == Conn8 }

// String returns a human-readable mode name for diagnostics.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "Conn4"
	case Conn8:
		return "Conn8"
	default:
		return "Connectivity(invalid)"
	}
}
