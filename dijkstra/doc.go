// SPDX-License-Identifier: MIT
// Package dijkstra provides a precise, high-performance implementation of Dijkstra's
// shortest-path algorithm on weighted graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a frontier (priority structure) to always expand the next-closest vertex.
//   - Two frontiers are available: a binary heap with lazy decrease-key, and an ordered set
//     (red-black tree) that removes the stale entry when a vertex improves.
//   - Supports distance caps and “impassable” edge thresholds.
//
// When to use:
//
//   - In any scenario where you need guaranteed shortest paths on a static weighted graph
//     with non-negative weights.
//   - As the inner loop of Johnson's algorithm, on a reweighted graph.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithFrontier: FrontierHeap (default) or FrontierOrderedSet. Results are identical;
//     ties in distance may be broken differently, which never changes a distance.
//   - WithMaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - WithInfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//     Unset, no edge is impassable.
//   - WithTrustedWeights: skips the negative-weight pre-scan when weights are non-negative by
//     construction.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once (V extracts).
//   - Each edge relaxation may insert one new entry (up to E inserts).
//   - Space: O(V + E)
//   - O(V) for the distance vector and finalized flags.
//   - O(E) worst-case heap entries under “lazy decrease-key”; O(V) for the ordered set.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  the source vertex lies outside [0, V).
//   - ErrNegativeWeight:  any edge has a negative weight (detected by a fast O(E) pre-scan).
//   - ErrBadFrontier:     unknown Frontier value.
//   - ErrBadMaxDistance:  panics from WithMaxDistance with a negative value.
//   - ErrBadInfThreshold: panics from WithInfEdgeThreshold with zero or a negative value.
//   - core.ErrOverflow:   a reached vertex has no distance that fits in int64.
//
// Negative weights are a precondition violation. By default they are rejected
// explicitly; with WithTrustedWeights the result on such input is unspecified.
//
// API reference:
//
//	func ShortestPaths(
//	    g *core.Graph,
//	    source int,
//	    opts ...Option,
//	) (dist core.Distances, err error)
//
// Thread safety:
//
//   - core.Graph is immutable, so concurrent ShortestPaths calls on one graph are safe.
//
// See also:
//
//   - bellmanford: single source with negative weights.
//   - johnson: all pairs with negative weights, built on this package.
package dijkstra
