// SPDX-License-Identifier: MIT
// Package converters provides two-way adapters between core.Graph and
// gonum/graph, and uses gonum's shortest-path code as an independent oracle
// for Johnson results.
//
// Mapping rules:
//   - Vertex v becomes simple.Node(v); node ids on import must be 0..n-1.
//   - Weights are int64 on our side and float64 on gonum's. Only weights of
//     magnitude ≤ 2^53 round-trip exactly; larger ones are rejected.
//   - simple graphs hold one edge per ordered pair and no self-loops, so
//     parallel edges collapse to their minimum and non-negative self-loops
//     are dropped. Neither changes a shortest distance.
package converters
