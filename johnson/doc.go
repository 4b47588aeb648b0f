// SPDX-License-Identifier: MIT
// Package johnson computes all-pairs shortest paths on sparse directed graphs
// whose edge weights may be negative.
//
// Overview:
//
//   - Augment the graph with a root vertex that reaches every vertex at cost 0.
//   - Run Bellman-Ford from the root. The distances h[v] are vertex potentials;
//     a negative cycle anywhere in the graph stops the computation here.
//   - Reweight every edge u→v to w + h[u] - h[v]. The new weights are
//     non-negative and shortest paths keep their shape.
//   - Run Dijkstra from every vertex on the reweighted graph.
//   - Restore each finite entry with d'(u,v) - h[u] + h[v].
//
// The augmented root never appears in a Result and unreached pairs stay
// unreached through the restoration step.
//
// Complexity:
//
//   - Time:  O(V·E + V·(V + E) log V)
//   - Space: O(V²) for the result, O(V + E) per Dijkstra run.
//
// Concurrency:
//
//   - The per-source runs are independent. WithWorkers(n) with n > 1 spreads
//     them over at most n goroutines; the result is identical to the
//     sequential run.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:                 nil *core.Graph.
//   - ErrVertexNotFound:           a query vertex lies outside [0, V).
//   - ErrBadPotentials:            Reweight got a vector of the wrong length.
//   - bellmanford.ErrNegativeCycle: propagated from the potential step (wrapped).
//   - core.ErrOverflow:            reweighting or restoration overflowed int64.
//
// API reference:
//
//	func Potentials(g *core.Graph) ([]int64, error)
//	func Reweight(g *core.Graph, h []int64) (*core.Graph, error)
//	func AllPairs(g *core.Graph, opts ...Option) (*Result, error)
//	func ShortestPath(g *core.Graph, src, dst int) (core.Distance, error)
package johnson
