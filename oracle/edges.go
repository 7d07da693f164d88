// SPDX-License-Identifier: MIT
// Package: eyesclosed/oracle
//
// edges.go - oracle-only helpers: edge reconstruction and query counting.

package oracle

import (
	"fmt"
	"sync/atomic"
)

// Edges reconstructs the full edge set of a by querying every pair u < v.
// The result is sorted by (U, V) ascending. It is meant for presentation and
// export, not for algorithms that must treat the graph as an oracle.
// Complexity: O(n²) queries.
func Edges(a Adjacency) ([]Edge, error) {
	n := a.VertexCount()
	var out []Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			ok, err := a.Adjacent(u, v)
			if err != nil {
				return nil, fmt.Errorf("Edges: Adjacent(%d,%d): %w", u, v, err)
			}
			if ok {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out, nil
}

// Counting wraps an Adjacency and counts every Adjacent call.
// It is safe for concurrent use if the wrapped oracle is.
type Counting struct {
	inner   Adjacency
	queries atomic.Uint64
}

var _ Adjacency = (*Counting)(nil)

// NewCounting returns a counting decorator around a.
func NewCounting(a Adjacency) *Counting {
	return &Counting{inner: a}
}

// VertexCount forwards to the wrapped oracle.
func (c *Counting) VertexCount() int { return c.inner.VertexCount() }

// Adjacent forwards to the wrapped oracle and counts the query, including
// queries that fail.
func (c *Counting) Adjacent(u, v int) (bool, error) {
	c.queries.Add(1)

	return c.inner.Adjacent(u, v)
}

// Queries returns the number of Adjacent calls seen so far.
func (c *Counting) Queries() uint64 { return c.queries.Load() }

// Reset zeroes the query counter.
func (c *Counting) Reset() { c.queries.Store(0) }
