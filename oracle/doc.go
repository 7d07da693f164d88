// SPDX-License-Identifier: MIT

// Package oracle provides the adjacency oracle used by the matching engine:
// a fixed set of integer vertices [0, n) whose edges are revealed only through
// pairwise queries.
//
// The Graph type deliberately stores adjacency sets instead of an edge list.
// Algorithms built on top see it through the read-only Adjacency interface
// and must discover edges by asking "are u and v connected?", which is the
// "closed-eyes" online setting of the randomized matching problem.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)       // O(n)
//	Connect(u, v int) error               // O(1) expected, idempotent
//	Adjacent(u, v int) (bool, error)      // O(1) expected
//	Degree(u int) (int, error)            // O(1)
//	Validate() error                      // O(n + m)
//	Clone() *Graph                        // O(n + m)
//
// Helpers:
//
//	Edges(a Adjacency) ([]Edge, error)    // O(n²) queries, sorted output
//	NewCounting(a Adjacency) *Counting    // query-counting decorator
//
// Errors:
//
//	ErrOutOfRange         – vertex index outside [0, n)
//	ErrInvalidEdge        – self-loop requested by Connect
//	ErrInvalidGraphState  – internal adjacency structure is inconsistent
//	ErrInvalidVertexCount – negative n passed to NewGraph
//
// Concurrency:
//
//	Graph is single-writer / read-many. Connect is not safe for concurrent use;
//	once construction is complete any number of goroutines may call Adjacent,
//	Degree and Edges concurrently. Counting is safe for concurrent use.
package oracle
