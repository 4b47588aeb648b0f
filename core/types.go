// SPDX-License-Identifier: MIT
// Package core declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrBadVertexCount - vertex count is negative.
//	ErrInvalidGraph   - an edge references a vertex outside [0, V).
//	ErrOverflow       - int64 overflow while combining weights or distances.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and arithmetic.
var (
	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrInvalidGraph indicates that an edge endpoint lies outside [0, V).
	// Construction aborts; no partially built graph is returned.
	ErrInvalidGraph = errors.New("core: edge references vertex outside [0, V)")

	// ErrOverflow indicates that adding a weight overflowed int64.
	ErrOverflow = errors.New("core: int64 overflow")
)

// Edge is a directed, weighted connection From → To.
type Edge struct {
	// From is the source vertex.
	From int

	// To is the destination vertex.
	To int

	// Weight is the edge cost; negative values are allowed.
	Weight int64
}

// String renders the edge as "u→v(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d(%d)", e.From, e.To, e.Weight)
}

// GraphOption configures a Graph before its edges are indexed.
type GraphOption func(*graphConfig)

// graphConfig collects construction-time flags.
type graphConfig struct {
	undirected bool // mirror every edge
}

// WithUndirected inserts each input edge (u,v,w) as the two directed edges
// (u,v,w) and (v,u,w). Self-loops are inserted once.
func WithUndirected() GraphOption {
	return func(c *graphConfig) { c.undirected = true }
}

// Graph is an immutable weighted directed graph over vertices 0..V-1.
//
// edges holds the flat list in insertion order (mirrored edges directly follow
// their originals). adj[v] lists the outgoing edges of v in the same order.
type Graph struct {
	n          int      // vertex count
	edges      []Edge   // flat edge list
	adj        [][]Edge // adjacency view: adj[from] = outgoing edges
	undirected bool     // built with WithUndirected
}

// NewGraph validates and indexes a graph with v vertices and the given edges.
//
// Preconditions and validation (in order):
//  1. v must be ≥ 0 (ErrBadVertexCount).
//  2. Every endpoint must lie in [0, v) (ErrInvalidGraph, wrapped with the
//     offending edge index).
//
// The edges slice is copied; later changes by the caller do not affect the
// Graph.
//
// Complexity: O(V + E) time and space.
func NewGraph(v int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	// 1) Apply options.
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate vertex count.
	if v < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadVertexCount, v)
	}

	// 3) Validate every endpoint before allocating anything.
	var (
		i int
		e Edge
	)
	for i, e = range edges {
		if e.From < 0 || e.From >= v || e.To < 0 || e.To >= v {
			return nil, fmt.Errorf("%w: edge #%d %s with V=%d", ErrInvalidGraph, i, e, v)
		}
	}

	// 4) Copy edges, mirroring when undirected.
	size := len(edges)
	if cfg.undirected {
		size *= 2
	}
	flat := make([]Edge, 0, size)
	for _, e = range edges {
		flat = append(flat, e)
		if cfg.undirected && e.From != e.To {
			flat = append(flat, Edge{From: e.To, To: e.From, Weight: e.Weight})
		}
	}

	return index(v, flat, cfg.undirected), nil
}

// index builds the adjacency view over an already validated edge list.
// It takes ownership of flat.
func index(v int, flat []Edge, undirected bool) *Graph {
	// Count out-degrees first so each adjacency slice is allocated once.
	deg := make([]int, v)
	for _, e := range flat {
		deg[e.From]++
	}
	adj := make([][]Edge, v)
	for u := 0; u < v; u++ {
		if deg[u] > 0 {
			adj[u] = make([]Edge, 0, deg[u])
		}
	}
	for _, e := range flat {
		adj[e.From] = append(adj[e.From], e)
	}

	return &Graph{n: v, edges: flat, adj: adj, undirected: undirected}
}
