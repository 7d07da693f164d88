// SPDX-License-Identifier: MIT

// Package generate builds oracle graphs for tests, demos and sampling runs.
//
// A Constructor adds edges to an existing oracle.Graph; Build creates the
// graph with a fixed vertex count and applies constructors in order, so
// topologies can be layered (e.g. a Cycle plus RandomSparse noise).
//
//	g, err := generate.Build(20, []generate.Option{generate.WithSeed(7)},
//	    generate.Cycle(), generate.RandomSparse(0.1))
//
// Random(n, p, rng) is the one-call G(n,p) shortcut.
//
// All constructors are deterministic for a fixed seed: edge trials run in
// ascending (i, j) order with j > i.
package generate
