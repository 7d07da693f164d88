// SPDX-License-Identifier: MIT
// Package: eyesclosed/generate
//
// topologies.go - deterministic Path, Cycle, Complete and Star constructors.
// Every constructor reads n from the graph and emits edges in ascending order.

package generate

import (
	"fmt"

	"github.com/katalvlaran/eyesclosed/oracle"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"

	minCycleNodes = 3
	minStarNodes  = 1

	// starCenter is the hub vertex of Star.
	starCenter = 0
)

// Path connects i-i+1 for i = 0..n-2. Valid for any n.
func Path() Constructor {
	return func(g *oracle.Graph, _ config) error {
		for i := 0; i+1 < g.VertexCount(); i++ {
			if err := g.Connect(i, i+1); err != nil {
				return fmt.Errorf("%s: Connect(%d,%d): %w", methodPath, i, i+1, err)
			}
		}
		return nil
	}
}

// Cycle connects i-(i+1)%n for i = 0..n-1. Requires n ≥ 3.
func Cycle() Constructor {
	return func(g *oracle.Graph, _ config) error {
		n := g.VertexCount()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.Connect(i, (i+1)%n); err != nil {
				return fmt.Errorf("%s: Connect(%d,%d): %w", methodCycle, i, (i+1)%n, err)
			}
		}
		return nil
	}
}

// Complete connects every pair i<j. Valid for any n.
func Complete() Constructor {
	return func(g *oracle.Graph, _ config) error {
		n := g.VertexCount()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.Connect(i, j); err != nil {
					return fmt.Errorf("%s: Connect(%d,%d): %w", methodComplete, i, j, err)
				}
			}
		}
		return nil
	}
}

// Star connects vertex 0 to every other vertex. Requires n ≥ 1; with n == 1
// the star is a single isolated hub.
func Star() Constructor {
	return func(g *oracle.Graph, _ config) error {
		n := g.VertexCount()
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := g.Connect(starCenter, leaf); err != nil {
				return fmt.Errorf("%s: Connect(%d,%d): %w", methodStar, starCenter, leaf, err)
			}
		}
		return nil
	}
}
