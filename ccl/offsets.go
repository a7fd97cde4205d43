package ccl

// Causal neighbor offsets, precomputed per mode. Only neighbors that occur
// strictly earlier in row-major scan order are listed: the row above and the
// cell to the left. The forward pass therefore never needs lookahead.
var (
	// N, W
	causal4 = [][2]int{{0, -1}, {-1, 0}}
	// N, W, NE, NW
	causal8 = [][2]int{{0, -1}, {-1, 0}, {1, -1}, {-1, -1}}
)

// CausalOffsets returns the ordered causal neighbor offsets for the given
// connectivity mode. Returns ErrInvalidConnectivity for any other mode.
// Callers must treat the returned slice as read-only.
// Complexity: O(1).
func CausalOffsets(conn Connectivity) ([][2]int, error) {
	switch conn {
	case Conn4:
		return causal4, nil
	case Conn8:
		return causal8, nil
	default:
		return nil, ErrInvalidConnectivity
	}
}
