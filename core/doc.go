// SPDX-License-Identifier: MIT
// Package core defines the immutable Graph model shared by every shortest-path
// engine in negpath, together with the tagged Distance value the engines
// produce.
//
// Graph G = (V, E):
//
//   - Vertices are the integers 0..V-1; there is no separate vertex entity.
//   - Edges are directed triples (From, To, Weight) with int64 weights that
//     may be negative.
//   - The edge list keeps insertion order; EdgesOf(v) is an adjacency view
//     built once at construction.
//   - A Graph is never mutated after NewGraph returns, so one instance can be
//     shared by concurrent readers without locks.
//
// Construction options (GraphOption):
//
//	– WithUndirected()
//	    Inserts every input edge in both directions with the same weight.
//	    Directionality is a property of the graph instance, chosen by the
//	    caller, never by the algorithm that later reads it.
//
// Distances:
//
//	Distance is either a finite int64 or Unreached. There is no "very large
//	number" standing in for infinity: Add on an unreached value stays
//	unreached, and Add reports int64 overflow instead of wrapping.
//
// Augmentation:
//
//	Augment(g) returns a new graph with one extra root vertex (id V) and a
//	zero-weight edge from the root to every original vertex. Original ids are
//	unchanged; the root id and offset are carried explicitly in Augmented.
//
// Errors:
//
//	ErrBadVertexCount - negative vertex count passed to NewGraph.
//	ErrInvalidGraph   - an edge endpoint lies outside [0, V).
//	ErrOverflow       - a distance or weight computation overflowed int64.
//
// Complexity:
//
//	NewGraph is O(V + E) time and space; every accessor is O(1) except Edges
//	and Augment, which copy (O(E) and O(V + E)).
package core
