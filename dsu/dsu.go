package dsu

import "fmt"

// DisjointSet is a parent-pointer forest with subtree size counters.
// The zero value is not usable; construct with New.
type DisjointSet struct {
	parent []int // parent[i] == i marks a root
	size   []int // size[i] is meaningful only while i is a root
}

// New creates a disjoint-set structure with n singleton sets, one per
// element 0..n-1.
//
// Complexity: O(n).
func New(n int) *DisjointSet {
	// 1) Every element starts as its own root with subtree size 1.
	parent := make([]int, n)
	size := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		parent[i] = i
		size[i] = 1
	}

	return &DisjointSet{parent: parent, size: size}
}

// Find returns the canonical representative (root) of the set containing x.
// Path compression rewrites parent pointers along the walk so that future
// calls are cheaper.
//
// Find panics if x is out of range: an invalid index means the caller handed
// over an element never declared to New.
func (d *DisjointSet) Find(x int) int {
	if x < 0 || x >= len(d.parent) {
		panic(fmt.Sprintf("dsu: index %d out of range [0,%d)", x, len(d.parent)))
	}

	// 1) Iterative walk with two-pointer compression: each visited element
	//    is pointed at its grandparent, halving the chain per pass.
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing a and b using union-by-size: the root of
// the larger set absorbs the smaller, ties broken in favor of a's root.
// It returns true if a merge actually occurred, false if a and b were
// already in the same set.
func (d *DisjointSet) Union(a, b int) bool {
	// 1) Resolve both roots (Find panics on out-of-range input).
	ra := d.Find(a)
	rb := d.Find(b)
	if ra == rb {
		return false
	}

	// 2) Attach the smaller tree below the larger root. On equal sizes a's
	//    root wins, keeping merge order deterministic for callers.
	if d.size[ra] >= d.size[rb] {
		d.parent[rb] = ra
		d.size[ra] += d.size[rb]
	} else {
		d.parent[ra] = rb
		d.size[rb] += d.size[ra]
	}

	return true
}

// Len reports the number of elements managed by the structure.
func (d *DisjointSet) Len() int { return len(d.parent) }
