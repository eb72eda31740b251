// SPDX-License-Identifier: MIT
// Package: hampath/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order against a draft, freezes the draft via core.NewGraph.
//   - Constructors only touch the draft; the immutable graph is created once.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hampath/core"
)

// Constructor applies a deterministic topology to the draft using the
// resolved builderConfig. Constructors MUST validate parameters early and
// return sentinel errors (no panics).
type Constructor func(d *draft, cfg builderConfig) error

// draft accumulates vertices and edges before the graph is frozen.
type draft struct {
	n     int
	edges []core.Edge
	seen  map[core.Edge]struct{}
}

func newDraft() *draft {
	return &draft{seen: make(map[core.Edge]struct{})}
}

// grow ensures the draft has at least n vertices.
func (d *draft) grow(n int) {
	if n > d.n {
		d.n = n
	}
}

// addEdge appends {u,v}; a repeated pair is reported as core.ErrDuplicateEdge.
func (d *draft) addEdge(u, v int) error {
	key := core.Edge{U: u, V: v}
	if u > v {
		key = core.Edge{U: v, V: u}
	}
	if _, dup := d.seen[key]; dup {
		return fmt.Errorf("edge (%d,%d): %w", u, v, core.ErrDuplicateEdge)
	}
	d.seen[key] = struct{}{}
	d.edges = append(d.edges, core.Edge{U: u, V: v})

	return nil
}

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order to a fresh draft and returns the frozen graph.
// Any constructor error is wrapped with "BuildGraph: %w".
//
// Complexity: O(len(bopts)) + Σ cost of constructors + O(n + m log Δ) freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := newDraft()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	if d.n < 1 {
		return nil, fmt.Errorf("BuildGraph: empty draft: %w", ErrTooFewVertices)
	}

	g, err := core.NewGraph(d.n, d.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Sample draws one G(n,p) graph using rng. A nil rng is accepted only for
// p ∈ {0,1}, where no randomness is involved.
// This is the signature the experiment runner expects from a sampler.
func Sample(n int, p float64, rng *rand.Rand) (*core.Graph, error) {
	var bopts []BuilderOption
	if rng != nil {
		bopts = append(bopts, WithRand(rng))
	}

	return BuildGraph(bopts, Random(n, p))
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Empty(n)                  n isolated vertices (n ≥ 1).
// Path(n)                   P_n, edges i-i+1 (n ≥ 1).
// Cycle(n)                  C_n, edges i-(i+1)%n (n ≥ 3).
// Star(n)                   center 0, leaves 1..n-1 (n ≥ 2).
// Wheel(n)                  rim C_{n-1} on 0..n-2 plus hub n-1 (n ≥ 4).
// Complete(n)               K_n (n ≥ 1).
// CompleteBipartite(a, b)   K_{a,b}, left 0..a-1, right a..a+b-1 (a,b ≥ 1).
// Grid(rows, cols)          4-neighborhood grid, vertex r*cols+c (rows,cols ≥ 1).
// Random(n, p)              G(n,p) (n ≥ 1, 0 ≤ p ≤ 1, rng unless p ∈ {0,1}).
