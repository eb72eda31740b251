// SPDX-License-Identifier: MIT
// Package: hampath/builder
//
// validators.go - parameter checks shared by constructors. Each returns a
// sentinel wrapped with "<Method>: ..." context, or nil.

package builder

import (
	"fmt"
	"math"
)

// validateMin ensures got ≥ min, reporting ErrTooFewVertices otherwise.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%v not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// addEdge is the constructor-side wrapper around draft.addEdge.
func addEdge(d *draft, method string, u, v int) error {
	if err := d.addEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}
