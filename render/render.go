// SPDX-License-Identifier: MIT

// Package render writes oracle graphs and matchings in Graphviz DOT format.
// https://en.wikipedia.org/wiki/DOT_%28graph_description_language%29
//
// There are two explicit entry points: Graph draws the plain graph, Matching
// draws a precomputed matching on top of it. Random is a shortcut that first
// computes a matching with matching.Compute.
//
// Styling of Matching:
//
//	matched vertices   filled red
//	unmatched vertices filled blue, translucent
//	matching edges     bold red
//	other edges        thin grey
//
// Output is deterministic: vertices ascending, edges sorted by (U, V).
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/eyesclosed/matching"
	"github.com/katalvlaran/eyesclosed/oracle"
)

// ErrSizeMismatch indicates a matching computed over a different vertex count.
var ErrSizeMismatch = errors.New("render: matching does not fit graph")

const (
	styleMatchedNode   = `style=filled, fillcolor="#ff0000cc"`
	styleUnmatchedNode = `style=filled, fillcolor="#0000ff4d"`
	styleMatchedEdge   = `color=red, penwidth=8`
	styleOtherEdge     = `color=grey, penwidth=1`
)

// Graph writes a as an undirected DOT graph.
func Graph(w io.Writer, a oracle.Adjacency, name string) error {
	edges, err := oracle.Edges(a)
	if err != nil {
		return fmt.Errorf("Graph: %w", err)
	}
	bw := bufio.NewWriter(w)
	header(bw, name)
	for v := 0; v < a.VertexCount(); v++ {
		fmt.Fprintf(bw, "\t%d;\n", v)
	}
	for _, e := range edges {
		fmt.Fprintf(bw, "\t%d -- %d;\n", e.U, e.V)
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

// Matching writes a with m highlighted. m must have been computed over a
// graph with the same vertex count.
func Matching(w io.Writer, a oracle.Adjacency, m *matching.Matching, name string) error {
	if m == nil || m.VertexCount() != a.VertexCount() {
		return fmt.Errorf("Matching: %w", ErrSizeMismatch)
	}
	edges, err := oracle.Edges(a)
	if err != nil {
		return fmt.Errorf("Matching: %w", err)
	}

	bw := bufio.NewWriter(w)
	header(bw, name)
	for v := 0; v < a.VertexCount(); v++ {
		style := styleUnmatchedNode
		if m.IsMatched(v) {
			style = styleMatchedNode
		}
		fmt.Fprintf(bw, "\t%d [%s];\n", v, style)
	}
	for _, e := range edges {
		style := styleOtherEdge
		if m.Contains(e.U, e.V) {
			style = styleMatchedEdge
		}
		fmt.Fprintf(bw, "\t%d -- %d [%s];\n", e.U, e.V, style)
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

// Random computes one matching of a with rng and renders it.
func Random(w io.Writer, a oracle.Adjacency, rng *rand.Rand, name string) error {
	m, err := matching.Compute(a, rng)
	if err != nil {
		return fmt.Errorf("Random: %w", err)
	}

	return Matching(w, a, m, name)
}

func header(bw *bufio.Writer, name string) {
	q := strconv.Quote(name)
	fmt.Fprintf(bw, "graph %s {\n", q)
	fmt.Fprintf(bw, "\tlabel=%s;\n", q)
	bw.WriteString("\tlayout=circo;\n")
	bw.WriteString("\tnode [shape=circle];\n")
}
