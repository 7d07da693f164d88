// SPDX-License-Identifier: MIT
// Package: eyesclosed/generate
//
// api.go - Constructor, Option and Build.

package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/eyesclosed/oracle"
)

const methodBuild = "Build"

// Constructor adds a topology to g. It must only call g.Connect and must not
// assume g is empty.
type Constructor func(g *oracle.Graph, cfg config) error

// config is resolved once per Build call and shared by all constructors.
type config struct {
	rng *rand.Rand
}

// Option customizes a Build call.
type Option func(*config)

// WithRand sets the randomness source for stochastic constructors.
// A nil r leaves the current source untouched.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed installs a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// Build creates a graph on n vertices and applies cons in order.
// No graph is returned if any constructor fails.
//
// Errors: ErrTooFewVertices for n < 0; otherwise the first constructor error.
func Build(n int, opts []Option, cons ...Constructor) (*oracle.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d < min=0: %w", methodBuild, n, ErrTooFewVertices)
	}
	g, err := oracle.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}

	return g, nil
}

// Random samples G(n, p) with rng; it is Build(n, WithRand(rng), RandomSparse(p)).
func Random(n int, p float64, rng *rand.Rand) (*oracle.Graph, error) {
	return Build(n, []Option{WithRand(rng)}, RandomSparse(p))
}
