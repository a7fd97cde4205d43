package ccl

import "fmt"

// UnionFind is a disjoint-set structure over a dense, positive integer label
// space. Labels are allocated sequentially starting at 1; index 0 is reserved
// for grid.Unlabeled and never registered. The parent slice is indexed by
// label, which keeps find/union allocation-free after construction.
//
// A UnionFind is created fresh for every labeling run and discarded
// afterwards; it carries no cross-run state.
type UnionFind struct {
	// parent[l] is the parent of label l; parent[l] == l marks a root.
	// parent[0] is a placeholder for the reserved unlabeled value.
	parent []int
}

// NewUnionFind returns an empty UnionFind with capacity for about `capacity`
// labels (a sizing hint only; the structure grows as labels are allocated).
// Complexity: O(1) amortized per later MakeSet.
func NewUnionFind(capacity int) *UnionFind {
	if capacity < 0 {
		capacity = 0
	}

	return &UnionFind{parent: make([]int, 1, capacity+1)}
}

// MakeSet allocates the next dense label, registers it as its own parent and
// returns it. The first call returns 1.
// Complexity: O(1) amortized.
func (uf *UnionFind) MakeSet() int {
	label := len(uf.parent)
	uf.parent = append(uf.parent, label)

	return label
}

// Registered reports whether label has been allocated by MakeSet.
// Label 0 is never registered.
// Complexity: O(1).
func (uf *UnionFind) Registered(label int) bool {
	return label >= 1 && label < len(uf.parent)
}

// Find returns the root label of label's equivalence class, compressing the
// path in two passes: walk up to the root, then rewrite every visited node's
// parent to that root. Idempotent: Find(Find(l)) == Find(l).
//
// Panics on an unregistered label (including 0). That is an invariant
// violation in the assigner's bookkeeping, not a recoverable input error.
//
// Complexity: amortized near-constant (inverse Ackermann).
func (uf *UnionFind) Find(label int) int {
	if !uf.Registered(label) {
		panic(fmt.Sprintf("ccl: Find on unregistered label %d", label))
	}
	// First pass: locate the root.
	root := label
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// Second pass: flatten the walked path.
	for uf.parent[label] != root {
		next := uf.parent[label]
		uf.parent[label] = root
		label = next
	}

	return root
}

// Union merges b's equivalence class into a's by attaching Find(b) under
// Find(a); a's root at call time becomes the class ancestor. There is
// deliberately no rank or size heuristic: the caller always passes the label
// with the smallest root as a, and that choice is what keeps the numerically
// smallest label canonical. Panics if either label is unregistered.
// Complexity: amortized near-constant.
func (uf *UnionFind) Union(a, b int) {
	rootA, rootB := uf.Find(a), uf.Find(b)
	if rootA == rootB {
		return
	}
	uf.parent[rootB] = rootA
}

// Classes returns the number of distinct roots among all registered labels.
// Complexity: O(n) over registered labels.
func (uf *UnionFind) Classes() int {
	var n int
	for label := 1; label < len(uf.parent); label++ {
		if uf.parent[label] == label {
			n++
		}
	}

	return n
}
