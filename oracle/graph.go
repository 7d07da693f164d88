// SPDX-License-Identifier: MIT
// Package: eyesclosed/oracle
//
// graph.go - the set-based adjacency Graph.
//
// Contract:
//   - n is fixed at construction; vertices are never added or removed.
//   - Connect mirrors every edge (u in adj[v] ⇔ v in adj[u]).
//   - Edges are never removed.
//   - Failed calls leave the graph unchanged.

package oracle

import "fmt"

const (
	methodNewGraph = "NewGraph"
	methodConnect  = "Connect"
	methodAdjacent = "Adjacent"
	methodDegree   = "Degree"
	methodValidate = "Validate"
)

// Graph stores symmetric adjacency sets for the vertices [0, n).
//
// The zero value is an empty graph with n = 0.
type Graph struct {
	n     int
	edges int                // number of undirected edges
	adj   []map[int]struct{} // adj[u] = neighbor set of u
}

// compile-time check
var _ Adjacency = (*Graph)(nil)

// NewGraph creates a graph with n vertices and no edges.
// n == 0 yields a valid empty graph; n < 0 returns ErrInvalidVertexCount.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNewGraph, n, ErrInvalidVertexCount)
	}
	g := &Graph{
		n:   n,
		adj: make([]map[int]struct{}, n),
	}
	for i := 0; i < n; i++ {
		g.adj[i] = make(map[int]struct{})
	}

	return g, nil
}

// VertexCount returns the fixed number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Connect adds the undirected edge {u, v}.
//
// Errors:
//   - ErrOutOfRange: u or v outside [0, n).
//   - ErrInvalidEdge: u == v (self-loops are rejected, graph unchanged).
//
// Connecting an already connected pair is a no-op.
// Not safe for concurrent use.
func (g *Graph) Connect(u, v int) error {
	if err := g.check(methodConnect, u, v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%s: self-loop on %d: %w", methodConnect, u, ErrInvalidEdge)
	}
	if _, ok := g.adj[u][v]; ok {
		return nil
	}
	// both sides are written before returning; no error path in between
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges++

	return nil
}

// Adjacent reports whether u and v are connected.
// Returns ErrOutOfRange if either index is invalid.
func (g *Graph) Adjacent(u, v int) (bool, error) {
	if err := g.check(methodAdjacent, u, v); err != nil {
		return false, err
	}
	_, ok := g.adj[u][v]

	return ok, nil
}

// Degree returns the number of neighbors of u.
func (g *Graph) Degree(u int) (int, error) {
	if u < 0 || u >= g.n {
		return 0, outOfRange(methodDegree, u, g.n)
	}

	return len(g.adj[u]), nil
}

// Validate checks the structural invariants of the graph: one neighbor set
// per vertex, neighbors in range, no self-loops, symmetric adjacency and a
// consistent edge counter. Any violation is reported as ErrInvalidGraphState.
// Complexity: O(n + m).
func (g *Graph) Validate() error {
	if len(g.adj) != g.n {
		return fmt.Errorf("%s: %d neighbor sets for n=%d: %w",
			methodValidate, len(g.adj), g.n, ErrInvalidGraphState)
	}
	half := 0
	for u, set := range g.adj {
		for v := range set {
			if v < 0 || v >= g.n {
				return fmt.Errorf("%s: neighbor %d of %d out of range: %w",
					methodValidate, v, u, ErrInvalidGraphState)
			}
			if v == u {
				return fmt.Errorf("%s: self-loop on %d: %w", methodValidate, u, ErrInvalidGraphState)
			}
			if _, ok := g.adj[v][u]; !ok {
				return fmt.Errorf("%s: %d→%d has no mirror: %w",
					methodValidate, u, v, ErrInvalidGraphState)
			}
			half++
		}
	}
	if half != 2*g.edges {
		return fmt.Errorf("%s: edge counter %d, adjacency holds %d: %w",
			methodValidate, g.edges, half/2, ErrInvalidGraphState)
	}

	return nil
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		n:     g.n,
		edges: g.edges,
		adj:   make([]map[int]struct{}, len(g.adj)),
	}
	for u, set := range g.adj {
		cp := make(map[int]struct{}, len(set))
		for v := range set {
			cp[v] = struct{}{}
		}
		c.adj[u] = cp
	}

	return c
}

func (g *Graph) check(method string, u, v int) error {
	if u < 0 || u >= g.n {
		return outOfRange(method, u, g.n)
	}
	if v < 0 || v >= g.n {
		return outOfRange(method, v, g.n)
	}

	return nil
}
