// SPDX-License-Identifier: MIT
// Package: eyesclosed/matching
//
// types.go - sentinel errors, Pair and the immutable Matching result.

package matching

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/eyesclosed/oracle"
)

// Sentinel errors for matching operations.
var (
	// ErrNilGraph is returned when a nil oracle is supplied.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrInvalidOrder is returned when a priority order is not a permutation
	// of [0, n) or does not fit the supplied buffers.
	ErrInvalidOrder = errors.New("matching: invalid priority order")

	// ErrInvalidGraphState is returned when the oracle contradicts itself:
	// it rejects an index inside [0, VertexCount()) or answers a pair
	// asymmetrically. It also matches oracle.ErrInvalidGraphState.
	ErrInvalidGraphState = fmt.Errorf("matching: %w", oracle.ErrInvalidGraphState)

	// ErrInvalidMatching is returned when a set of pairs is not a valid
	// matching of the graph.
	ErrInvalidMatching = errors.New("matching: invalid matching")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")
)

// unmatched marks a free slot in Matching.mate.
const unmatched = -1

// Pair is a committed match. U is the vertex being processed when the pair
// was formed and V the neighbor it committed to; membership is unordered.
type Pair struct {
	U int
	V int
}

// Edge returns the normalized oracle edge for p.
func (p Pair) Edge() oracle.Edge { return oracle.NewEdge(p.U, p.V) }

// String renders the pair as "(u,v)".
func (p Pair) String() string { return fmt.Sprintf("(%d,%d)", p.U, p.V) }

// Matching is a set of vertex-disjoint pairs over [0, n).
// A Matching is immutable once returned.
type Matching struct {
	n     int
	pairs []Pair // commit order
	mate  []int  // mate[v] or unmatched
}

func newMatching(n int) *Matching {
	m := &Matching{n: n, mate: make([]int, n)}
	for i := range m.mate {
		m.mate[i] = unmatched
	}

	return m
}

// commit records {u, v}; callers guarantee both are free and distinct.
func (m *Matching) commit(u, v int) {
	m.pairs = append(m.pairs, Pair{U: u, V: v})
	m.mate[u] = v
	m.mate[v] = u
}

// VertexCount returns n of the graph the matching was computed over.
func (m *Matching) VertexCount() int { return m.n }

// Len returns the number of pairs.
func (m *Matching) Len() int { return len(m.pairs) }

// Pairs returns a copy of the pairs in commit order.
func (m *Matching) Pairs() []Pair {
	return append([]Pair(nil), m.pairs...)
}

// Edges returns the pairs as normalized edges sorted by (U, V).
func (m *Matching) Edges() []oracle.Edge {
	out := make([]oracle.Edge, len(m.pairs))
	for i, p := range m.pairs {
		out[i] = p.Edge()
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// Contains reports whether {u, v} is a pair, in either order.
func (m *Matching) Contains(u, v int) bool {
	if u < 0 || u >= m.n || v < 0 || v >= m.n {
		return false
	}

	return m.mate[u] == v
}

// Mate returns the partner of v and whether v is matched.
func (m *Matching) Mate(v int) (int, bool) {
	if v < 0 || v >= m.n || m.mate[v] == unmatched {
		return 0, false
	}

	return m.mate[v], true
}

// IsMatched reports whether v belongs to some pair.
func (m *Matching) IsMatched(v int) bool {
	_, ok := m.Mate(v)
	return ok
}

// Unmatched returns the free vertices in ascending order.
func (m *Matching) Unmatched() []int {
	var out []int
	for v, u := range m.mate {
		if u == unmatched {
			out = append(out, v)
		}
	}

	return out
}
