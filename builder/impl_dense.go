// SPDX-License-Identifier: MIT
// Package: hampath/builder
//
// impl_dense.go - Complete(n), CompleteBipartite(a,b) and Grid(rows,cols).
//
// Determinism:
//   • Complete: pairs (i,j), i<j, i asc then j asc.
//   • CompleteBipartite: left 0..a-1, right a..a+b-1, i asc over left, j asc over right.
//   • Grid: vertex r*cols+c in row-major order; for each cell emit Right then Bottom.
//
// Complexity: Complete O(n²), CompleteBipartite O(a·b), Grid O(rows·cols).

package builder

// Complete returns a Constructor for K_n (n ≥ 1).
func Complete(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinVertices); err != nil {
			return err
		}
		d.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(d, MethodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{a,b}. It has a Hamiltonian
// path iff |a−b| ≤ 1, which makes it a useful negative fixture.
func CompleteBipartite(a, b int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "a", a, MinPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "b", b, MinPartition); err != nil {
			return err
		}
		d.grow(a + b)
		for i := 0; i < a; i++ {
			for j := a; j < a+b; j++ {
				if err := addEdge(d, MethodCompleteBipartite, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor for the rows×cols orthogonal grid with
// 4-neighborhood. Vertex (r,c) is r*cols+c; a boustrophedon walk is a
// Hamiltonian path.
func Grid(rows, cols int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		d.grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := addEdge(d, MethodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(d, MethodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
