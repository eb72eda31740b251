package graphio

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/hampath/core"
)

// FromGonum inverts ToGonum for tests. It accepts any gonum undirected graph
// whose node IDs are exactly 0..n-1 and emits edges in (u asc, v asc) order.
func FromGonum(src graph.Undirected) (*core.Graph, error) {
	nodes := graph.NodesOf(src.Nodes())
	ids := make([]int, len(nodes))
	for i, nd := range nodes {
		ids[i] = int(nd.ID())
	}
	sort.Ints(ids)
	for i, id := range ids {
		if id != i {
			return nil, fmt.Errorf("FromGonum: node ids are not 0..%d (found %d): %w",
				len(ids)-1, id, core.ErrVertexOutOfRange)
		}
	}

	var edges []core.Edge
	for _, u := range ids {
		for _, nb := range graph.NodesOf(src.From(int64(u))) {
			if v := int(nb.ID()); u < v {
				edges = append(edges, core.Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})

	g, err := core.NewGraph(len(ids), edges)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}

	return g, nil
}
