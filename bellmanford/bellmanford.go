// SPDX-License-Identifier: MIT
// Package bellmanford implements the relaxation passes and the negative-cycle
// verification pass.
//
// Notes on implementation choices:
//
//   - The engine walks the flat edge list; no adjacency is required.
//   - Each pass relaxes edges in list order. Order affects intermediate values
//     but not the converged result.
//   - The verification pass is always executed, also after an early exit.
//   - A candidate past MaxInt64 never improves a finite distance and is skipped.
//     Any other candidate outside int64 restarts the run on big.Int distances,
//     which separates a negative cycle from a true distance too large for int64.
package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/negpath/core"
)

// ShortestPaths computes distances from source to every vertex of g.
//
// Returns:
//
//   - dist: V entries; Unreached for vertices with no path from source.
//   - err:  ErrNilGraph, ErrVertexNotFound, ErrNegativeCycle or
//     core.ErrOverflow. dist is nil whenever err != nil.
//
// Complexity: O(V·E) time, O(V) space.
func ShortestPaths(g *core.Graph, source int, opts ...Option) (core.Distances, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d (V=%d)", ErrVertexNotFound, source, g.VertexCount())
	}

	return run(g.VertexCount(), g.Edges(), source, opts)
}

// FromEdges runs Bellman-Ford directly over a flat edge list on vertices
// 0..v-1, without building an adjacency view.
//
// Preconditions and validation (in order):
//  1. v must be ≥ 0 (core.ErrBadVertexCount).
//  2. source must lie in [0, v) (ErrVertexNotFound).
//  3. every endpoint must lie in [0, v) (core.ErrInvalidGraph).
//
// Complexity: O(V·E) time, O(V) space.
func FromEdges(v int, edges []core.Edge, source int, opts ...Option) (core.Distances, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: got %d", core.ErrBadVertexCount, v)
	}
	if source < 0 || source >= v {
		return nil, fmt.Errorf("%w: %d (V=%d)", ErrVertexNotFound, source, v)
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= v || e.To < 0 || e.To >= v {
			return nil, fmt.Errorf("%w: edge #%d %s with V=%d", core.ErrInvalidGraph, i, e, v)
		}
	}

	return run(v, edges, source, opts)
}

// run executes the algorithm on validated input.
func run(v int, edges []core.Edge, source int, opts []Option) (core.Distances, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) dist[source] = 0, everything else unreached.
	dist := core.NewDistances(v, source)

	// 3) At most V-1 relaxation passes.
	var (
		pass        int
		changed, ok bool
	)
	for pass = 1; pass < v; pass++ {
		if changed, ok = relaxAll(dist, edges); !ok {
			return runWide(v, edges, source, cfg)
		}
		if !changed && cfg.EarlyExit {
			break
		}
	}

	// 4) Verification pass: any further strict improvement means a reachable
	//    negative cycle.
	var (
		e    core.Edge
		cand core.Distance
	)
	for _, e = range edges {
		if !dist[e.From].IsFinite() {
			continue
		}
		if cand, ok = dist[e.From].Add(e.Weight); !ok {
			if overshoots(e, dist) {
				continue
			}
			return runWide(v, edges, source, cfg)
		}
		if cand.Less(dist[e.To]) {
			return nil, fmt.Errorf("%w: edge %s keeps relaxing", ErrNegativeCycle, e)
		}
	}

	return dist, nil
}

// relaxAll performs one pass over every edge and reports whether any
// distance decreased. ok is false when a candidate that could improve its
// target does not fit in int64.
func relaxAll(dist core.Distances, edges []core.Edge) (changed, ok bool) {
	var (
		e    core.Edge
		cand core.Distance
	)
	for _, e = range edges {
		// Never relax from an unreached vertex.
		if !dist[e.From].IsFinite() {
			continue
		}
		if cand, ok = dist[e.From].Add(e.Weight); !ok {
			if overshoots(e, dist) {
				continue
			}
			return changed, false
		}
		if cand.Less(dist[e.To]) {
			dist[e.To] = cand
			changed = true
		}
	}

	return changed, true
}

// overshoots reports whether an overflowing candidate along e lies above
// MaxInt64 while e.To already has a finite distance, so it cannot improve it.
func overshoots(e core.Edge, dist core.Distances) bool {
	return e.Weight > 0 && dist[e.To].IsFinite()
}
