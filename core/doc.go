// Package core defines the immutable Graph model shared by the search,
// measurement and experiment packages, together with the Result and
// StepEvent values produced by the Hamiltonian path searches.
//
// What & Why:
//
//	A Graph is an undirected simple graph on vertices 0..n-1. It is built
//	exactly once through NewGraph, validated at construction, and never
//	mutated afterwards, so a single instance can be handed to several
//	searches (or abandoned by a timed-out one) without copying.
//
// Invariants:
//
//   - n ≥ 1.
//   - Every edge {u,v} has 0 ≤ u,v < n and u ≠ v; duplicates are rejected.
//   - Adjacency is symmetric and every neighbor list is sorted ascending,
//     which fixes the exploration order of every search built on top of it.
//
// Errors:
//
//	ErrNilGraph          - a nil *Graph was passed where a graph is required.
//	ErrInvalidOrder      - vertex count is not positive.
//	ErrVertexOutOfRange  - an edge endpoint lies outside [0,n).
//	ErrSelfLoop          - an edge joins a vertex to itself.
//	ErrDuplicateEdge     - the same unordered pair appears twice.
//	ErrInvalidPath       - ValidatePath rejected a candidate path.
//
// Complexity:
//
//   - NewGraph: O(n + m log Δ) time, O(n + m) space.
//   - HasEdge:  O(1) expected.
//   - Neighbors/Degree: O(Δ) / O(1).
package core
