// Package heuristic implements a randomized greedy search for a Hamiltonian
// path: minimum-degree next-vertex selection with random restarts.
//
// For each start vertex, taken from a uniform shuffle of 0..n-1:
//
//	path := [start]
//	loop: among the unvisited neighbors of the current vertex pick the one
//	      with the smallest degree in g; stop when none is left.
//
// The degree is the static degree in the input graph, not the number of
// unvisited neighbors. Ties keep the first minimum found while scanning the
// adjacency list left to right, which is the lowest id because adjacency is
// sorted. There is no backtracking: a dead end abandons the start. The first
// start that reaches all n vertices wins.
//
// The heuristic is incomplete: Found=false does not prove that no path exists.
// Result.Steps is always 0 and no trace is produced.
//
// Determinism: the shuffle is the only source of randomness. The same seed
// (or the same *rand.Rand state) yields the same result.
//
// Complexity: O(n·(n+m)) time worst case, O(n) space.
package heuristic
