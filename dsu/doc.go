// Package dsu implements a disjoint-set forest (union-find) over a dense
// integer universe 0..n-1.
//
// What & Why
//
//   - A disjoint-set structure tracks a partition of n elements into disjoint
//     sets, supporting two operations: Find (which set does x belong to?) and
//     Union (merge the sets of a and b). With path compression and
//     union-by-size both run in near-constant amortized time O(α(n)), where α
//     is the inverse Ackermann function.
//
//   - In this module the structure is a leaf dependency of mst.Kruskal: it is
//     rebuilt fresh for every spanning-tree computation and has no existence
//     outside a single algorithm run.
//
// Contract
//
//   - New(n) creates n singleton sets.
//   - Find(x) returns the canonical representative of x's set. Passing an
//     out-of-range index is a caller bug, not bad input, and panics.
//   - Union(a, b) merges by size (the larger root absorbs the smaller, ties
//     favor a's root) and reports whether a merge actually happened.
//
// Complexity:
//
//   - Time:  O(α(n)) amortized per Find/Union.
//   - Space: O(n) for the parent and size slices.
package dsu
