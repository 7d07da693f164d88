// SPDX-License-Identifier: MIT
// Package: eyesclosed/generate
//
// random_sparse.go - implementation of the RandomSparse(p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): each unordered pair {i,j}, i<j, is an edge
//     independently with probability p.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: i asc, then j asc with j > i.

package generate

import (
	"fmt"

	"github.com/katalvlaran/eyesclosed/oracle"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that adds each missing pair of g with
// independent probability p.
func RandomSparse(p float64) Constructor {
	return func(g *oracle.Graph, cfg config) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if p == probMin {
			return nil
		}

		n := g.VertexCount()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p == 1 never consumes randomness
				if p < probMax && cfg.rng.Float64() > p {
					continue
				}
				if err := g.Connect(i, j); err != nil {
					return fmt.Errorf("%s: Connect(%d,%d): %w", methodRandomSparse, i, j, err)
				}
			}
		}

		return nil
	}
}
