// SPDX-License-Identifier: MIT
// Package: hampath/builder
//
// constants.go - method tags and parameter minima shared by constructors.

package builder

// Method name constants prefix errors with the constructor name.
const (
	MethodEmpty             = "Empty"
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandom            = "Random"
)

// Minimum sizes.
const (
	// MinVertices is the smallest order of any graph the package builds.
	MinVertices = 1
	// MinCycleNodes: a ring needs three vertices to avoid loops or multi-edges.
	MinCycleNodes = 3
	// MinStarNodes: one center plus one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a 3-cycle rim plus one hub.
	MinWheelNodes = 4
	// MinGridDim applies to rows and cols independently; 1×1 is valid.
	MinGridDim = 1
	// MinPartition applies to each side of K_{a,b}.
	MinPartition = 1
)

// Probability bounds for Random(n, p), both inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
