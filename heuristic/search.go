package heuristic

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hampath/core"
)

// FindPath runs the greedy minimum-degree search on g.
//
// Errors:
//   - core.ErrNilGraph for a nil graph.
//   - ctx.Err() (wrapped) when ctx is done; checked before each start.
func FindPath(ctx context.Context, g *core.Graph, opts ...Option) (core.Result, error) {
	if g == nil {
		return core.Result{}, fmt.Errorf("FindPath: %w", core.ErrNilGraph)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	n := g.Order()
	visited := make([]bool, n)
	path := make([]int, 0, n)
	for _, start := range startOrder(n, rng) {
		select {
		case <-ctx.Done():
			return core.Result{}, fmt.Errorf("FindPath: %w", ctx.Err())
		default:
		}

		clear(visited)
		path = walk(g, start, visited, path[:0])
		if len(path) == n {
			out := make([]int, n)
			copy(out, path)
			return core.Result{Path: out, Found: true}, nil
		}
	}

	return core.Result{}, nil
}

// walk extends [start] greedily until no unvisited neighbor remains.
func walk(g *core.Graph, start int, visited []bool, path []int) []int {
	visited[start] = true
	path = append(path, start)
	cur := start
	for {
		best, bestDeg := -1, 0
		for _, w := range g.NeighborsView(cur) {
			if visited[w] {
				continue
			}
			// Strict less keeps the first minimum.
			if d := g.Degree(w); best < 0 || d < bestDeg {
				best, bestDeg = w, d
			}
		}
		if best < 0 {
			return path
		}
		visited[best] = true
		path = append(path, best)
		cur = best
	}
}
