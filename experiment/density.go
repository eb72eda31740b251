package experiment

import (
	"fmt"
)

// Density labels.
const (
	Sparse = "sparse"
	Medium = "medium"
	Dense  = "dense"
)

var densityTable = map[string]float64{
	Sparse: 0.2,
	Medium: 0.5,
	Dense:  0.8,
}

// Labels returns the density labels in ascending probability order.
func Labels() []string {
	return []string{Sparse, Medium, Dense}
}

// Probability resolves a density label to its edge-inclusion probability.
func Probability(label string) (float64, error) {
	p, ok := densityTable[label]
	if !ok {
		return 0, fmt.Errorf("Probability(%q): %w", label, ErrUnknownDensity)
	}

	return p, nil
}
