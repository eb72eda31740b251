package core

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for graph construction and path validation.
var (
	// ErrNilGraph indicates a nil *Graph was passed to an operation.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrInvalidOrder indicates a non-positive vertex count.
	ErrInvalidOrder = errors.New("core: vertex count must be positive")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0,n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the same unordered pair was given twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrInvalidPath indicates a path that is not a Hamiltonian path of the graph.
	ErrInvalidPath = errors.New("core: invalid path")
)

// Edge is an unordered pair of vertex ids. {U,V} and {V,U} denote the same edge.
type Edge struct {
	U int
	V int
}

// canonical returns the edge with U ≤ V.
func (e Edge) canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// Graph is an immutable undirected simple graph on vertices 0..n-1.
//
// The zero value is not usable; construct through NewGraph.
type Graph struct {
	n     int
	edges []Edge            // input order, as given to NewGraph
	adj   [][]int           // adj[v] sorted ascending
	set   map[Edge]struct{} // canonical pairs for O(1) HasEdge
}

// NewGraph validates n and edges and returns the immutable graph.
//
// Contract:
//   - n ≥ 1 (else ErrInvalidOrder).
//   - endpoints in [0,n) (else ErrVertexOutOfRange).
//   - no self-loops (else ErrSelfLoop), no repeated pairs (else ErrDuplicateEdge).
//
// The edges slice is copied; the caller may reuse it afterwards.
func NewGraph(n int, edges []Edge) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrInvalidOrder)
	}

	g := &Graph{
		n:     n,
		edges: make([]Edge, 0, len(edges)),
		adj:   make([][]int, n),
		set:   make(map[Edge]struct{}, len(edges)),
	}

	var (
		i int
		e Edge
		c Edge
	)
	for i, e = range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("NewGraph: edge #%d (%d,%d) with n=%d: %w", i, e.U, e.V, n, ErrVertexOutOfRange)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("NewGraph: edge #%d (%d,%d): %w", i, e.U, e.V, ErrSelfLoop)
		}
		c = e.canonical()
		if _, dup := g.set[c]; dup {
			return nil, fmt.Errorf("NewGraph: edge #%d (%d,%d): %w", i, e.U, e.V, ErrDuplicateEdge)
		}
		g.set[c] = struct{}{}
		g.edges = append(g.edges, e)
		g.adj[e.U] = append(g.adj[e.U], e.V)
		g.adj[e.V] = append(g.adj[e.V], e.U)
	}

	// Ascending neighbor order makes exploration independent of edge-list order.
	for i = range g.adj {
		sort.Ints(g.adj[i])
	}

	return g, nil
}

// MustGraph is like NewGraph but panics on error. Intended for fixtures.
func MustGraph(n int, edges []Edge) *Graph {
	g, err := NewGraph(n, edges)
	if err != nil {
		panic(err)
	}

	return g
}
