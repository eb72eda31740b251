package core

import (
	"encoding/json"
	"fmt"
)

// Order returns the number of vertices n.
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges m.
func (g *Graph) Size() int { return len(g.edges) }

// Edges returns a copy of the edge list in construction order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns a copy of v's neighbor list (ascending), or nil when v is out of range.
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out
}

// NeighborsView returns v's neighbor list without copying.
// The returned slice is shared with the graph and MUST NOT be modified;
// it exists for search hot loops where a copy per step is prohibitive.
func (g *Graph) NeighborsView(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}

	return g.adj[v]
}

// Degree returns the number of neighbors of v, or 0 when v is out of range.
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= g.n {
		return 0
	}

	return len(g.adj[v])
}

// HasEdge reports whether {u,v} is an edge of g.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.set[Edge{U: u, V: v}.canonical()]

	return ok
}

// String renders a compact description, e.g. "Graph(n=4, m=4)".
func (g *Graph) String() string {
	if g == nil {
		return "Graph(nil)"
	}

	return fmt.Sprintf("Graph(n=%d, m=%d)", g.n, len(g.edges))
}

// graphJSON is the wire form: {"n":4,"edges":[[0,1],[1,2]]}.
type graphJSON struct {
	N     int      `json:"n"`
	Edges [][2]int `json:"edges"`
}

// MarshalJSON encodes the graph as its vertex count and edge list.
func (g *Graph) MarshalJSON() ([]byte, error) {
	w := graphJSON{N: g.n, Edges: make([][2]int, len(g.edges))}
	for i, e := range g.edges {
		w.Edges[i] = [2]int{e.U, e.V}
	}

	return json.Marshal(w)
}

// UnmarshalJSON decodes and re-validates a graph through NewGraph.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var w graphJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	edges := make([]Edge, len(w.Edges))
	for i, p := range w.Edges {
		edges[i] = Edge{U: p[0], V: p[1]}
	}
	built, err := NewGraph(w.N, edges)
	if err != nil {
		return err
	}
	*g = *built

	return nil
}
