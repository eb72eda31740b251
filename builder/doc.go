// SPDX-License-Identifier: MIT
// Package: hampath/builder
//
// Package builder produces core.Graph instances for experiments, tests and
// examples: the Erdős–Rényi sampler used by the experiment runner and a small
// family of deterministic fixtures with known Hamiltonian properties.
//
// The package offers:
//
//   - BuildGraph(bopts, cons...) - resolve options, run constructors in order
//     against a mutable draft, then freeze the draft through core.NewGraph.
//   - Random(n, p)            - G(n,p): each of the n·(n−1)/2 pairs i<j is kept
//     independently with probability p (trial order i asc, j asc).
//   - Sample(n, p, rng)       - one-call form of Random used as the runner's
//     default sampler.
//   - Empty, Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid -
//     deterministic topologies.
//
// Known Hamiltonian-path facts for the fixtures (handy as test oracles):
//
//	Path(n), Cycle(n), Wheel(n), Complete(n), Grid(r,c)  → always have one.
//	Star(n)                                            → only for n ≤ 3.
//	CompleteBipartite(a,b)                              → iff |a−b| ≤ 1.
//	Empty(n)                                           → only for n = 1.
//
// Determinism: same constructor order, options and seed ⇒ identical graphs.
// Errors are sentinels from errors.go wrapped with the constructor name.
package builder
