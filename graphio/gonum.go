package graphio

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/hampath/core"
)

// ToGonum copies g into a gonum undirected graph. Vertex v becomes node ID v.
func ToGonum(g *core.Graph) (*simple.UndirectedGraph, error) {
	if g == nil {
		return nil, fmt.Errorf("ToGonum: %w", core.ErrNilGraph)
	}
	out := simple.NewUndirectedGraph()
	for v := 0; v < g.Order(); v++ {
		out.AddNode(simple.Node(int64(v)))
	}
	for _, e := range g.Edges() {
		out.SetEdge(out.NewEdge(simple.Node(int64(e.U)), simple.Node(int64(e.V))))
	}

	return out, nil
}

// Components returns the connected components of g, each sorted ascending,
// ordered by their smallest vertex. A graph with more than one component has
// no Hamiltonian path, which makes this a cheap pre-check.
func Components(g *core.Graph) ([][]int, error) {
	ug, err := ToGonum(g)
	if err != nil {
		return nil, fmt.Errorf("Components: %w", err)
	}
	raw := topo.ConnectedComponents(ug)
	out := make([][]int, len(raw))
	for i, comp := range raw {
		vs := make([]int, len(comp))
		for j, nd := range comp {
			vs[j] = int(nd.ID())
		}
		sort.Ints(vs)
		out[i] = vs
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out, nil
}
