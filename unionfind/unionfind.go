// Package unionfind provides an array-indexed disjoint-set forest over the
// integers [0,n).
//
// Find compresses the path it walks so later lookups are close to O(1).
// Union attaches the root of its second argument under the root of its
// first; no rank is kept because the maze lattices it serves are small.
package unionfind

// UnionFind partitions [0,n) into disjoint sets.
type UnionFind struct {
	parent []int
	sets   int
}

// New returns n singleton sets.
func New(n int) *UnionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &UnionFind{parent: parent, sets: n}
}

// Len returns the number of elements.
func (u *UnionFind) Len() int { return len(u.parent) }

// Sets returns the number of disjoint sets remaining.
func (u *UnionFind) Sets() int { return u.sets }

// Find returns the root of the set containing i and points every element
// on the walked path directly at it.
// Panics if i is outside [0,Len()).
func (u *UnionFind) Find(i int) int {
	root := i
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[i] != root {
		next := u.parent[i]
		u.parent[i] = root
		i = next
	}
	return root
}

// Union merges the sets containing a and b. It reports false when they
// were already the same set.
func (u *UnionFind) Union(a, b int) bool {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false
	}
	u.parent[rb] = ra
	u.sets--
	return true
}

// Connected reports whether a and b share a set.
func (u *UnionFind) Connected(a, b int) bool {
	return u.Find(a) == u.Find(b)
}
