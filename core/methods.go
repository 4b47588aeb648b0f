// SPDX-License-Identifier: MIT
// File: methods.go
// Role: Read-only queries on Graph and the Augment transform.
// Determinism:
//   - Edges() and EdgesOf() return edges in insertion order.
// Concurrency:
//   - Graph is immutable; every method is safe for concurrent use.

package core

// VertexCount returns V.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of directed edges, mirrored edges included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Undirected reports whether the graph was built with WithUndirected.
func (g *Graph) Undirected() bool { return g.undirected }

// HasVertex reports whether v lies in [0, V).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// EdgesOf returns the outgoing edges of v, or nil if v is out of range.
// The returned slice is shared with the graph and must not be modified.
// Complexity: O(1).
func (g *Graph) EdgesOf(v int) []Edge {
	if !g.HasVertex(v) {
		return nil
	}

	return g.adj[v]
}

// Edges returns a copy of the flat edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasNegativeWeights reports whether any edge weight is below zero.
// Complexity: O(E).
func (g *Graph) HasNegativeWeights() bool {
	for _, e := range g.edges {
		if e.Weight < 0 {
			return true
		}
	}

	return false
}

// MapWeights returns a new Graph with the same vertices and edge order, where
// each weight is replaced by fn(edge). An error from fn aborts the transform.
// The receiver is left untouched.
// Complexity: O(V + E).
func (g *Graph) MapWeights(fn func(Edge) (int64, error)) (*Graph, error) {
	flat := make([]Edge, len(g.edges))
	var (
		i   int
		e   Edge
		w   int64
		err error
	)
	for i, e = range g.edges {
		if w, err = fn(e); err != nil {
			return nil, err
		}
		flat[i] = Edge{From: e.From, To: e.To, Weight: w}
	}

	return index(g.n, flat, g.undirected), nil
}

// Augmented is a graph extended with a synthetic root vertex.
//
// Root is the id of the added vertex and always equals the original V, so it
// never collides with a real vertex. Offset is the shift applied to original
// vertex ids inside Graph; it is zero in this layout and is carried so that
// callers translate ids explicitly rather than by convention.
type Augmented struct {
	Graph  *Graph // V+1 vertices
	Root   int    // synthetic source
	Offset int    // original id v is Graph vertex v+Offset
}

// Original maps an augmented vertex id back to the original graph.
// ok is false for the root.
func (a *Augmented) Original(v int) (int, bool) {
	if v == a.Root {
		return 0, false
	}

	return v - a.Offset, true
}

// Augment returns a new graph with one extra vertex Root = V and a
// zero-weight edge Root → v for every original vertex v. The input graph is
// not modified.
//
// Complexity: O(V + E).
func Augment(g *Graph) *Augmented {
	root := g.n
	flat := make([]Edge, 0, len(g.edges)+g.n)
	flat = append(flat, g.edges...)
	for v := 0; v < g.n; v++ {
		flat = append(flat, Edge{From: root, To: v, Weight: 0})
	}

	return &Augmented{
		Graph:  index(g.n+1, flat, false),
		Root:   root,
		Offset: 0,
	}
}
