// SPDX-License-Identifier: MIT
// Package: eyesclosed/matching
//
// validate.go - precomputed matchings and independent result checks.

package matching

import (
	"fmt"

	"github.com/katalvlaran/eyesclosed/oracle"
)

const (
	methodFromPairs = "FromPairs"
	methodValidate  = "Validate"
	methodIsMaximal = "IsMaximal"
)

// FromPairs wraps a precomputed set of pairs over n vertices. Pairs must be in
// range, have distinct endpoints and be vertex-disjoint. Adjacency is not
// checked here; use Validate against the graph for that.
//
// Errors: ErrInvalidMatching.
func FromPairs(n int, pairs []Pair) (*Matching, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodFromPairs, n, ErrInvalidMatching)
	}
	m := newMatching(n)
	for _, p := range pairs {
		if p.U < 0 || p.U >= n || p.V < 0 || p.V >= n {
			return nil, fmt.Errorf("%s: pair %v out of range [0,%d): %w", methodFromPairs, p, n, ErrInvalidMatching)
		}
		if p.U == p.V {
			return nil, fmt.Errorf("%s: pair %v is a loop: %w", methodFromPairs, p, ErrInvalidMatching)
		}
		if m.mate[p.U] != unmatched || m.mate[p.V] != unmatched {
			return nil, fmt.Errorf("%s: pair %v reuses a vertex: %w", methodFromPairs, p, ErrInvalidMatching)
		}
		m.commit(p.U, p.V)
	}

	return m, nil
}

// Validate checks m against g: same vertex count, every pair is an edge of g,
// and no vertex appears in two pairs.
//
// Errors: ErrNilGraph, ErrInvalidMatching (oracle errors are wrapped alongside).
func Validate(g oracle.Adjacency, m *Matching) error {
	if g == nil {
		return fmt.Errorf("%s: %w", methodValidate, ErrNilGraph)
	}
	if m == nil {
		return fmt.Errorf("%s: matching is nil: %w", methodValidate, ErrInvalidMatching)
	}
	n := g.VertexCount()
	if m.n != n {
		return fmt.Errorf("%s: matching over %d vertices, graph has %d: %w", methodValidate, m.n, n, ErrInvalidMatching)
	}

	seen := make(map[int]Pair, 2*len(m.pairs))
	for _, p := range m.pairs {
		ok, err := g.Adjacent(p.U, p.V)
		if err != nil {
			return fmt.Errorf("%s: Adjacent%v: %w: %w", methodValidate, p, ErrInvalidMatching, err)
		}
		if !ok {
			return fmt.Errorf("%s: pair %v is not an edge: %w", methodValidate, p, ErrInvalidMatching)
		}
		for _, x := range [2]int{p.U, p.V} {
			if prev, dup := seen[x]; dup {
				return fmt.Errorf("%s: vertex %d in %v and %v: %w", methodValidate, x, prev, p, ErrInvalidMatching)
			}
			seen[x] = p
		}
	}

	return nil
}

// IsMaximal reports whether no two unmatched vertices of g are adjacent,
// i.e. m cannot be extended by any edge.
// Complexity: O(k²) queries for k unmatched vertices.
func IsMaximal(g oracle.Adjacency, m *Matching) (bool, error) {
	if g == nil {
		return false, fmt.Errorf("%s: %w", methodIsMaximal, ErrNilGraph)
	}
	if m == nil || m.n != g.VertexCount() {
		return false, fmt.Errorf("%s: matching does not fit graph: %w", methodIsMaximal, ErrInvalidMatching)
	}

	free := m.Unmatched()
	for i, u := range free {
		for _, v := range free[i+1:] {
			ok, err := g.Adjacent(u, v)
			if err != nil {
				return false, fmt.Errorf("%s: Adjacent(%d,%d): %w", methodIsMaximal, u, v, err)
			}
			if ok {
				return false, nil
			}
		}
	}

	return true, nil
}
