// Package exact implements exhaustive backtracking search for a Hamiltonian
// path in a core.Graph.
//
// Algorithm (deterministic, no randomness):
//
//  1. Candidate start vertices are tried in ascending id order.
//  2. From the current vertex, neighbors are explored in adjacency order
//     (ascending id, as guaranteed by core.NewGraph).
//  3. Entering a vertex marks it visited, appends it to the path and counts
//     one step. Reaching length n is a solution.
//  4. When no unvisited neighbor remains the vertex is undone (backtrack).
//  5. Every start attempt begins from fresh visited/path state; no
//     memoization is carried between attempts.
//
// Result.Steps counts vertices entered and accumulates across ALL start
// attempts, including the failed ones before the winning start.
//
// Recursion is replaced by an explicit stack of frames (vertex,
// next-neighbor-index). The same engine backs FindPath and the pull-based
// Tracer, so the two always agree on path and step count.
//
// Trace events (see core.EventKind):
//
//	Start      new start vertex, path = [start]
//	Visit      vertex entered, path after the append
//	Backtrack  vertex undone, path after the removal
//	Solution   terminal, full path
//	Fail       terminal, empty path
//
// Every event carries its own copy of the path.
//
// Cancellation: FindPath checks ctx every 1024 entered vertices and returns
// the partial step count together with an error wrapping ctx.Err().
//
// Complexity: O(n!) worst case time, O(n) space (O(events·n) with WithTrace).
package exact
