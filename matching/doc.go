// SPDX-License-Identifier: MIT

// Package matching implements the priority-greedy random matching of
// "Matching with our Eyes Closed" over an adjacency oracle.
//
// The graph is seen only through oracle.Adjacency: the engine never
// enumerates edges, it asks "are u and v adjacent?" and commits as soon as the
// answer is yes.
//
// Algorithm (ComputeWithOrder):
//
//	order   := a permutation of [0,n); order[0] has the highest priority
//	matched := ∅
//	for v in order:
//	    if v ∈ matched: continue
//	    u, found := first u in order with u ∉ matched, u ≠ v, adjacent(u,v)
//	    if found: commit (v,u); matched ∪= {v,u}
//
// The neighbor search always rescans the whole order from the top, so a
// vertex may commit to a higher-priority neighbor as well as to a lower one.
// The resulting distribution over matchings depends on this scan order.
//
// Entry points:
//
//	Compute(g, rng)             // draw a random order, then ComputeWithOrder
//	ComputeWithOrder(g, order)  // deterministic for a fixed order
//	FirstNeighbor(...)          // the pure search step, exposed for testing
//	FromPairs(n, pairs)         // wrap a precomputed matching
//	Validate / IsMaximal        // independent result checks
//	Sample(ctx, g, draws, ...)  // concurrent independent draws
//
// Guarantees: every returned Matching is valid (each pair is an edge) and
// vertex-disjoint, and it is maximal: no two unmatched vertices are adjacent.
// Worst case O(n²) oracle queries plus one mirror query per committed pair.
//
// Concurrency: Compute holds no shared state; many computations may run over
// the same oracle concurrently as long as the oracle is not being mutated.
// A *rand.Rand must not be shared between goroutines.
package matching
