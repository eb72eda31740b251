package core

import "fmt"

// ValidatePath checks that path is a Hamiltonian path of g: it has exactly
// n entries, each vertex in [0,n) appears once, and consecutive vertices are
// adjacent. It returns nil or an error wrapping ErrInvalidPath.
//
// Complexity: O(n) time, O(n) space.
func ValidatePath(g *Graph, path []int) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(path) != g.n {
		return fmt.Errorf("ValidatePath: length %d, want %d: %w", len(path), g.n, ErrInvalidPath)
	}

	seen := make([]bool, g.n)
	for i, v := range path {
		if v < 0 || v >= g.n {
			return fmt.Errorf("ValidatePath: position %d vertex %d out of range: %w", i, v, ErrInvalidPath)
		}
		if seen[v] {
			return fmt.Errorf("ValidatePath: vertex %d repeated at position %d: %w", v, i, ErrInvalidPath)
		}
		seen[v] = true
		if i > 0 && !g.HasEdge(path[i-1], v) {
			return fmt.Errorf("ValidatePath: no edge (%d,%d): %w", path[i-1], v, ErrInvalidPath)
		}
	}

	return nil
}

// Validate checks the internal consistency of r against g: Found must agree
// with the path length, and a found path must pass ValidatePath.
func (r Result) Validate(g *Graph) error {
	if !r.Found {
		if len(r.Path) != 0 {
			return fmt.Errorf("Result.Validate: not found but path has %d vertices: %w", len(r.Path), ErrInvalidPath)
		}
		return nil
	}

	return ValidatePath(g, r.Path)
}
