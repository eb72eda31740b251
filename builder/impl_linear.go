// SPDX-License-Identifier: MIT
// Package: hampath/builder
//
// impl_linear.go - Empty(n), Path(n) and Cycle(n).
//
// Contract:
//   • Vertices are 0..n-1; the draft grows to at least n.
//   • Edges are emitted in ascending i: Path i-i+1, Cycle adds (n-1)-0.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) time, O(1) extra space.

package builder

// Empty returns a Constructor for n isolated vertices.
// Only Empty(1) has a Hamiltonian path.
func Empty(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(MethodEmpty, "n", n, MinVertices); err != nil {
			return err
		}
		d.grow(n)

		return nil
	}
}

// Path returns a Constructor for the simple path P_n: 0-1-…-(n-1).
// The identity permutation is always a Hamiltonian path.
func Path(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinVertices); err != nil {
			return err
		}
		d.grow(n)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(d, MethodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		d.grow(n)
		for i := 0; i < n; i++ {
			if err := addEdge(d, MethodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
