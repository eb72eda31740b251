// SPDX-License-Identifier: MIT
// Package: hampath/builder
//
// impl_hub.go - Star(n) and Wheel(n), the hub-centred topologies.
//
// Canonical model:
//   • Star: center 0, leaves 1..n-1, edges emitted 0-i for i asc.
//   • Wheel: rim cycle over 0..n-2, hub n-1, rim edges first then spokes.
//
// A star with n ≥ 4 has at least three leaves and therefore no Hamiltonian
// path: every leaf except two would need to be an endpoint.

package builder

const starCenter = 0

// Star returns a Constructor for the star K_{1,n-1} (n ≥ 2).
func Star(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		d.grow(n)
		for leaf := 1; leaf < n; leaf++ {
			if err := addEdge(d, MethodStar, starCenter, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: a rim of n-1 vertices plus a hub
// adjacent to all of them (n ≥ 4).
func Wheel(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		d.grow(n)
		rim, hub := n-1, n-1
		for i := 0; i < rim; i++ {
			if err := addEdge(d, MethodWheel, i, (i+1)%rim); err != nil {
				return err
			}
		}
		for i := 0; i < rim; i++ {
			if err := addEdge(d, MethodWheel, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
