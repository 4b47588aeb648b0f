// SPDX-License-Identifier: MIT
// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm with negative-cycle detection.
//
// Overview:
//
//   - Edge weights may be negative.
//   - The engine runs at most V-1 relaxation passes over the flat edge list,
//     then one verification pass. If any edge still admits a strict
//     improvement, a negative cycle is reachable from the source and the run
//     fails with ErrNegativeCycle. No distance vector accompanies that error.
//   - Relaxation only starts from reached vertices: an unreached distance is
//     never used as an operand.
//
// When to use:
//
//   - Single-source queries on graphs with negative weights.
//   - Computing vertex potentials (Johnson's algorithm uses it exactly once,
//     from a synthetic root).
//   - Detecting negative cycles.
//
// Options:
//
//   - WithEarlyExit(bool): stop relaxing once a full pass changes nothing
//     (default true). The result is identical either way; only the number of
//     passes differs, and it never exceeds V-1.
//
// Performance and complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V)
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: source outside [0, V).
//   - ErrNegativeCycle:  a negative cycle is reachable from the source.
//   - core.ErrInvalidGraph: FromEdges received an out-of-range endpoint.
//   - core.ErrOverflow:  a shortest distance exists but does not fit in int64.
//
// API reference:
//
//	func ShortestPaths(g *core.Graph, source int, opts ...Option) (core.Distances, error)
//	func FromEdges(v int, edges []core.Edge, source int, opts ...Option) (core.Distances, error)
//
// Thread safety:
//
//   - Each call owns its distance vector; the graph is only read, so
//     concurrent calls on one graph are safe.
package bellmanford
