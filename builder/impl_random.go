// SPDX-License-Identifier: MIT
// Package: hampath/builder
//
// impl_random.go - Erdős–Rényi G(n,p) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • p ∈ [0,1] (else ErrInvalidProbability).
//   • If 0 < p < 1 → cfg.rng MUST be non-nil (else ErrNeedRandSource).
//   • Each unordered pair {i,j} is one Bernoulli trial: kept iff rng.Float64() < p.
//
// Determinism:
//   • Stable trial order: i asc, then j asc (i<j), one draw per trial.
//   • p=0 and p=1 consume no randomness and need no rng.
//
// Complexity: O(n²) trials, O(m) edges.

package builder

import (
	"fmt"
)

// Random returns a Constructor that samples G(n,p).
func Random(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodRandom, "n", n, MinVertices); err != nil {
			return err
		}
		if err := validateProbability(MethodRandom, p); err != nil {
			return err
		}
		stochastic := p > MinProbability && p < MaxProbability
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: p=%v: %w", MethodRandom, p, ErrNeedRandSource)
		}

		d.grow(n)
		if p == MinProbability {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if stochastic && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(d, MethodRandom, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
