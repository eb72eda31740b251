// Package graphio reads and writes core.Graph values.
//
// Text format (one graph per file):
//
//	# optional comment lines and blank lines are ignored
//	n m
//	u v
//	...        (exactly m edge lines)
//
// Vertices are 0-based integers in [0,n). The reader validates the header,
// the edge count and every endpoint, then builds the graph through
// core.NewGraph so self-loops and duplicate pairs are rejected as well.
//
// The package also converts to and from gonum's simple.UndirectedGraph so
// that gonum's graph algorithms (components, traversal) can be run on an
// experiment graph.
package graphio
