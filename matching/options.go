// SPDX-License-Identifier: MIT
// Package: eyesclosed/matching
//
// options.go - functional options for Sample.

package matching

import (
	"fmt"
	"runtime"
	"time"
)

// Option configures Sample. Invalid values are recorded and surfaced as
// ErrOptionViolation when Sample runs.
type Option func(*Options)

// Options holds the parameters of a sampling run.
type Options struct {
	// Seed is the base seed; draw i uses a stream derived from (Seed, i).
	// Zero selects the package default seed.
	Seed int64

	// Workers bounds the number of concurrent draws.
	Workers int

	// OnDraw, if set, is called once per finished draw.
	// It runs on worker goroutines and must be safe for concurrent use.
	OnDraw func(d Draw)

	err error
}

// DefaultOptions returns Options with the default seed, GOMAXPROCS workers
// and no hook.
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers bounds concurrency.
//
//	k > 0: at most k draws in flight
//	k == 0: GOMAXPROCS
//	k < 0: invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		switch {
		case k < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, k)
		case k == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = k
		}
	}
}

// Draw describes one finished draw of Sample.
type Draw struct {
	Index    int
	Matching *Matching
	Elapsed  time.Duration // time spent in Compute
}

// WithOnDraw registers a per-draw callback.
func WithOnDraw(fn func(d Draw)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDraw = fn
		}
	}
}
