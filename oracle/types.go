// SPDX-License-Identifier: MIT
// Package: eyesclosed/oracle
//
// types.go - sentinel errors, the Adjacency contract and the Edge value type.

package oracle

import (
	"errors"
	"fmt"
)

// Sentinel errors for oracle operations.
var (
	// ErrOutOfRange indicates a vertex index outside [0, n).
	ErrOutOfRange = errors.New("oracle: vertex out of range")

	// ErrInvalidEdge indicates an attempt to connect a vertex to itself.
	ErrInvalidEdge = errors.New("oracle: invalid edge")

	// ErrInvalidGraphState indicates that the adjacency structure violates
	// its invariants (asymmetry, dangling neighbor, self-loop). It is a
	// programming-error signal and is never produced by correct use of Connect.
	ErrInvalidGraphState = errors.New("oracle: invalid graph state")

	// ErrInvalidVertexCount indicates a negative vertex count.
	ErrInvalidVertexCount = errors.New("oracle: invalid vertex count")
)

// Adjacency is the read-only oracle view of a graph.
//
// Implementations must answer Adjacent symmetrically and report ErrOutOfRange
// for any index outside [0, VertexCount()).
type Adjacency interface {
	// VertexCount returns n, the number of vertices.
	VertexCount() int

	// Adjacent reports whether u and v are connected.
	Adjacent(u, v int) (bool, error)
}

// Edge is an unordered vertex pair normalized so that U < V.
type Edge struct {
	U int
	V int
}

// NewEdge returns the normalized Edge for the pair {u, v}.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// String renders the edge as "u-v".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.U, e.V)
}

// outOfRange builds the wrapped ErrOutOfRange used by every bounds check.
func outOfRange(method string, idx, n int) error {
	return fmt.Errorf("%s: vertex %d not in [0,%d): %w", method, idx, n, ErrOutOfRange)
}
