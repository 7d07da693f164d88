// SPDX-License-Identifier: MIT
// Package: eyesclosed/matching
//
// engine.go - the priority-greedy matching over an adjacency oracle.
//
// Contract:
//   - order[0] has the highest priority; order must be a permutation of [0,n).
//   - The neighbor search rescans the full order for every vertex.
//   - "Not found" is an explicit flag; vertex 0 is an ordinary result.
//   - No partial result is returned on error.

package matching

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/eyesclosed/oracle"
)

const (
	methodCompute       = "Compute"
	methodComputeOrder  = "ComputeWithOrder"
	methodFirstNeighbor = "FirstNeighbor"
)

// Compute draws a uniformly random priority order from rng and returns the
// greedy matching for it. A nil rng uses the deterministic default stream.
//
// Errors: ErrNilGraph, ErrInvalidGraphState.
// Complexity: O(n²) oracle queries worst case.
func Compute(g oracle.Adjacency, rng *rand.Rand) (*Matching, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodCompute, ErrNilGraph)
	}
	n := g.VertexCount()
	if n < 0 {
		return nil, fmt.Errorf("%s: vertex count %d: %w", methodCompute, n, ErrInvalidGraphState)
	}

	return ComputeWithOrder(g, permutation(n, rng))
}

// ComputeWithOrder returns the greedy matching for a fixed priority order.
// The result depends only on g and order.
//
// Errors: ErrNilGraph, ErrInvalidOrder, ErrInvalidGraphState.
func ComputeWithOrder(g oracle.Adjacency, order []int) (*Matching, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodComputeOrder, ErrNilGraph)
	}
	n := g.VertexCount()
	if n < 0 {
		return nil, fmt.Errorf("%s: vertex count %d: %w", methodComputeOrder, n, ErrInvalidGraphState)
	}
	if err := checkOrder(order, n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodComputeOrder, err)
	}

	m := newMatching(n)
	matched := make([]bool, n)
	for _, v := range order {
		if matched[v] {
			continue
		}
		u, found, err := FirstNeighbor(g, matched, order, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodComputeOrder, err)
		}
		if !found {
			continue
		}
		// a committed pair must be visible from both sides
		ok, err := g.Adjacent(v, u)
		if err != nil {
			return nil, fmt.Errorf("%s: Adjacent(%d,%d): %w: %w", methodComputeOrder, v, u, ErrInvalidGraphState, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: %d~%d answered asymmetrically: %w", methodComputeOrder, u, v, ErrInvalidGraphState)
		}
		m.commit(v, u)
		matched[v] = true
		matched[u] = true
	}

	return m, nil
}

// FirstNeighbor scans order from the highest priority and returns the first
// vertex u with u != v, !matched[u] and Adjacent(u, v). found is false when no
// such vertex exists; u is meaningless in that case.
//
// It reads but never writes matched. len(matched) and len(order) must equal
// g.VertexCount().
//
// Errors: ErrNilGraph, ErrInvalidOrder, ErrInvalidGraphState.
func FirstNeighbor(g oracle.Adjacency, matched []bool, order []int, v int) (u int, found bool, err error) {
	if g == nil {
		return 0, false, fmt.Errorf("%s: %w", methodFirstNeighbor, ErrNilGraph)
	}
	n := g.VertexCount()
	if len(matched) != n || len(order) != n {
		return 0, false, fmt.Errorf("%s: len(matched)=%d len(order)=%d n=%d: %w",
			methodFirstNeighbor, len(matched), len(order), n, ErrInvalidOrder)
	}
	if v < 0 || v >= n {
		return 0, false, fmt.Errorf("%s: vertex %d not in [0,%d): %w", methodFirstNeighbor, v, n, ErrInvalidOrder)
	}

	for _, cand := range order {
		if cand < 0 || cand >= n {
			return 0, false, fmt.Errorf("%s: order entry %d not in [0,%d): %w",
				methodFirstNeighbor, cand, n, ErrInvalidOrder)
		}
		if cand == v || matched[cand] {
			continue
		}
		ok, qerr := g.Adjacent(cand, v)
		if qerr != nil {
			return 0, false, fmt.Errorf("%s: Adjacent(%d,%d): %w: %w",
				methodFirstNeighbor, cand, v, ErrInvalidGraphState, qerr)
		}
		if ok {
			return cand, true, nil
		}
	}

	return 0, false, nil
}

// checkOrder verifies that order is a permutation of [0, n).
func checkOrder(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("len(order)=%d, n=%d: %w", len(order), n, ErrInvalidOrder)
	}
	seen := make([]bool, n)
	for i, v := range order {
		if v < 0 || v >= n {
			return fmt.Errorf("order[%d]=%d not in [0,%d): %w", i, v, n, ErrInvalidOrder)
		}
		if seen[v] {
			return fmt.Errorf("order[%d]=%d repeated: %w", i, v, ErrInvalidOrder)
		}
		seen[v] = true
	}

	return nil
}
