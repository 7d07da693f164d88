// SPDX-License-Identifier: MIT
// Package: eyesclosed/matching
//
// sample.go - concurrent independent draws and their summary.
//
// Determinism:
//   - Draw i always uses the stream deriveSeed(seed, i), so the returned
//     slice is identical for a fixed seed whatever the worker count.

package matching

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/eyesclosed/oracle"
)

const methodSample = "Sample"

// Sample computes draws independent matchings of g concurrently.
// The oracle is shared read-only between workers and must not be mutated
// while Sample runs. Cancelling ctx stops scheduling and returns the
// cancellation cause.
//
// Errors: ErrNilGraph, ErrOptionViolation, any Compute error, ctx errors.
func Sample(ctx context.Context, g oracle.Adjacency, draws int, opts ...Option) ([]*Matching, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodSample, ErrNilGraph)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", methodSample, o.err)
	}
	if draws < 0 {
		return nil, fmt.Errorf("%s: draws=%d: %w", methodSample, draws, ErrOptionViolation)
	}
	seed := o.Seed
	if seed == 0 {
		seed = defaultRNGSeed
	}

	out := make([]*Matching, draws)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i := 0; i < draws; i++ {
		if egCtx.Err() != nil {
			break
		}
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			start := time.Now()
			m, err := Compute(g, rand.New(rand.NewSource(deriveSeed(seed, uint64(i)))))
			if err != nil {
				return fmt.Errorf("%s: draw %d: %w", methodSample, i, err)
			}
			out[i] = m
			if o.OnDraw != nil {
				o.OnDraw(Draw{Index: i, Matching: m, Elapsed: time.Since(start)})
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// the break above may skip draws without any worker failing
	for _, m := range out {
		if m == nil {
			return nil, fmt.Errorf("%s: %w", methodSample, context.Cause(ctx))
		}
	}

	return out, nil
}

// Stats summarizes a set of matchings over the same graph.
type Stats struct {
	Draws    int
	MinSize  int
	MaxSize  int
	MeanSize float64

	// EdgeCounts[e] is the number of draws whose matching contains e.
	EdgeCounts map[oracle.Edge]int
}

// EdgeFrequency returns the fraction of draws containing e.
func (s Stats) EdgeFrequency(e oracle.Edge) float64 {
	if s.Draws == 0 {
		return 0
	}
	return float64(s.EdgeCounts[oracle.NewEdge(e.U, e.V)]) / float64(s.Draws)
}

// Summarize aggregates sizes and per-edge counts. Nil entries are skipped.
func Summarize(ms []*Matching) Stats {
	s := Stats{EdgeCounts: make(map[oracle.Edge]int)}
	total := 0
	s.MinSize = math.MaxInt
	for _, m := range ms {
		if m == nil {
			continue
		}
		s.Draws++
		k := m.Len()
		total += k
		s.MinSize = min(s.MinSize, k)
		s.MaxSize = max(s.MaxSize, k)
		for _, p := range m.pairs {
			s.EdgeCounts[p.Edge()]++
		}
	}
	if s.Draws == 0 {
		s.MinSize = 0
		return s
	}
	s.MeanSize = float64(total) / float64(s.Draws)

	return s
}
