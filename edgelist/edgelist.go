// SPDX-License-Identifier: MIT

// Package edgelist loads and stores oracle graphs as YAML edge lists:
//
//	vertices: 4
//	edges:
//	  - [0, 1]
//	  - [1, 2]
//	  - [2, 3]
//
// Decoding goes through oracle.Graph.Connect, so out-of-range ids and
// self-loops are reported with the oracle's sentinel errors. Duplicate edges
// are accepted (Connect is idempotent).
package edgelist

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eyesclosed/oracle"
)

// ErrMalformed indicates a document that is not a valid edge list.
var ErrMalformed = errors.New("edgelist: malformed document")

// Document is the on-disk form of a graph.
type Document struct {
	Vertices int      `yaml:"vertices"`
	Edges    [][2]int `yaml:"edges,flow"`
}

// rawDocument keeps edges loose so bad arity is reported as ErrMalformed
// instead of a yaml type error.
type rawDocument struct {
	Vertices *int    `yaml:"vertices"`
	Edges    [][]int `yaml:"edges"`
}

// Decode reads one YAML document from r and builds the graph it describes.
func Decode(r io.Reader) (*oracle.Graph, error) {
	var raw rawDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Decode: empty document: %w", ErrMalformed)
		}
		return nil, fmt.Errorf("Decode: %w: %w", ErrMalformed, err)
	}
	if raw.Vertices == nil {
		return nil, fmt.Errorf("Decode: missing vertices: %w", ErrMalformed)
	}

	g, err := oracle.NewGraph(*raw.Vertices)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	for i, e := range raw.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("Decode: edge #%d has %d endpoints: %w", i, len(e), ErrMalformed)
		}
		if err := g.Connect(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("Decode: edge #%d: %w", i, err)
		}
	}

	return g, nil
}

// Load decodes the edge list stored at path.
func Load(path string) (*oracle.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes a as a YAML edge list. Edges are reconstructed through the
// oracle interface and written sorted.
func Encode(w io.Writer, a oracle.Adjacency) error {
	edges, err := oracle.Edges(a)
	if err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	doc := Document{Vertices: a.VertexCount(), Edges: make([][2]int, len(edges))}
	for i, e := range edges {
		doc.Edges[i] = [2]int{e.U, e.V}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return enc.Close()
}
