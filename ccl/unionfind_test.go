package ccl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestUnionFind_MakeSetDense verifies labels are allocated densely from 1
// and registered as their own parents.
func TestUnionFind_MakeSetDense(t *testing.T) {
	uf := NewUnionFind(4)
	for want := 1; want <= 4; want++ {
		got := uf.MakeSet()
		assert.Equal(t, want, got, "labels must be dense starting at 1")
		assert.Equal(t, got, uf.Find(got), "fresh label must be its own root")
	}
	assert.Equal(t, 4, uf.Classes(), "four singleton classes expected")
}

// TestUnionFind_Registered checks the registration predicate, including the
// reserved label 0.
func TestUnionFind_Registered(t *testing.T) {
	uf := NewUnionFind(0)
	assert.False(t, uf.Registered(0), "label 0 is reserved, never registered")
	assert.False(t, uf.Registered(1), "no label allocated yet")

	l := uf.MakeSet()
	assert.True(t, uf.Registered(l))
	assert.False(t, uf.Registered(l+1))
	assert.False(t, uf.Registered(-3))
}

// TestUnionFind_FindIdempotent asserts Find(Find(x)) == Find(x) for every
// registered label after a chain of unions.
func TestUnionFind_FindIdempotent(t *testing.T) {
	uf := NewUnionFind(8)
	for i := 0; i < 8; i++ {
		uf.MakeSet()
	}
	// Chain: 1←2, 2←3, ..., forming one deep class rooted at 1.
	for l := 2; l <= 8; l++ {
		uf.Union(l-1, l)
	}
	for l := 1; l <= 8; l++ {
		root := uf.Find(l)
		assert.Equal(t, root, uf.Find(root), "Find must be idempotent for label %d", l)
		assert.Equal(t, 1, root, "chain must collapse to the minimum label")
	}
	assert.Equal(t, 1, uf.Classes())
}

// TestUnionFind_UnionKeepsFirstRoot verifies Union attaches b's root under
// a's root, so calling with the minimum first keeps the minimum canonical.
func TestUnionFind_UnionKeepsFirstRoot(t *testing.T) {
	uf := NewUnionFind(3)
	uf.MakeSet() // 1
	uf.MakeSet() // 2
	uf.MakeSet() // 3

	uf.Union(2, 3)
	assert.Equal(t, 2, uf.Find(3), "3 must resolve to 2")

	uf.Union(1, 2)
	assert.Equal(t, 1, uf.Find(2))
	assert.Equal(t, 1, uf.Find(3), "transitive member must follow the new root")
	assert.Equal(t, 1, uf.Classes())
}

// TestUnionFind_UnionSameClassNoop ensures unioning two members of one class
// changes nothing.
func TestUnionFind_UnionSameClassNoop(t *testing.T) {
	uf := NewUnionFind(2)
	uf.MakeSet()
	uf.MakeSet()
	uf.Union(1, 2)
	uf.Union(1, 2)
	uf.Union(2, 1)
	assert.Equal(t, 1, uf.Find(2))
	assert.Equal(t, 1, uf.Classes())
}

// TestUnionFind_PathCompression exercises the two-pass flatten: after one
// Find on the deepest node of a chain, every node on the walked path points
// directly at the root.
func TestUnionFind_PathCompression(t *testing.T) {
	uf := NewUnionFind(5)
	for i := 0; i < 5; i++ {
		uf.MakeSet()
	}
	for l := 2; l <= 5; l++ {
		uf.Union(l-1, l)
	}

	assert.Equal(t, 1, uf.Find(5))
	for l := 2; l <= 5; l++ {
		assert.Equal(t, 1, uf.parent[l], "parent of %d must point straight at the root after compression", l)
	}
}

// TestUnionFind_UnregisteredPanics treats unregistered-label access as an
// invariant violation, not an error value.
func TestUnionFind_UnregisteredPanics(t *testing.T) {
	uf := NewUnionFind(1)
	uf.MakeSet()

	assert.Panics(t, func() { uf.Find(0) }, "label 0 must panic")
	assert.Panics(t, func() { uf.Find(2) }, "unallocated label must panic")
	assert.Panics(t, func() { uf.Union(1, 2) }, "union with unregistered label must panic")
	assert.Panics(t, func() { uf.Union(0, 1) }, "union with reserved label must panic")
}
