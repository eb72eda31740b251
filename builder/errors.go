// SPDX-License-Identifier: MIT
// Package: hampath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` with the constructor name.
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrInvalidProbability → ErrNeedRandSource.

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols,
// partition size) is smaller than the allowed minimum for the constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1]
// (NaN included).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the draft could not be assembled
// (nil constructor, conflicting edges from stacked constructors).
var ErrConstructFailed = errors.New("builder: construction failed")
