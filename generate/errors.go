// SPDX-License-Identifier: MIT
// Package: eyesclosed/generate
//
// errors.go - sentinel errors for the generate package.
//
// Error policy:
//   • Only sentinel variables are exposed; check them with errors.Is.
//   • Implementations attach context with %w ("Cycle: n=2 < min=3: ...").
//   • Oracle errors from Connect are wrapped, never replaced.

package generate

import "errors"

// ErrTooFewVertices indicates that n is below the minimum of a constructor.
var ErrTooFewVertices = errors.New("generate: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("generate: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (see WithRand / WithSeed).
var ErrNeedRandSource = errors.New("generate: rng is required")
