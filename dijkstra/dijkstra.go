// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a frontier,
// relaxing edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast,
//     unless the caller vouches for the weights with WithTrustedWeights.
//   - With WithInfEdgeThreshold set, any edge with weight ≥ the threshold is an impassable “wall”.
//     Without it every edge is traversable, including one of weight math.MaxInt64.
//   - A candidate past math.MaxInt64 is never shorter than a finite distance. It only
//     fails the run when its target is never reached by any other path.
//   - We stop exploring once the minimum distance in the frontier exceeds MaxDistance.
//   - With FrontierHeap we use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries. FrontierOrderedSet removes the stale entry instead.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/negpath/core"
)

// ShortestPaths computes shortest distances from source to all other vertices
// of g. It accepts functional options to customize behavior (Frontier,
// MaxDistance, InfEdgeThreshold, TrustedWeights).
//
// Returns:
//
//   - dist: V entries; Unreached for vertices with no path from source
//     (or beyond MaxDistance).
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie in [0, V) (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight), unless
//     WithTrustedWeights is set.
//  4. Frontier must be known (ErrBadFrontier).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths(g *core.Graph, source int, opts ...Option) (core.Distances, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate source lies in the vertex range.
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d (V=%d)", ErrVertexNotFound, source, g.VertexCount())
	}

	// 4) Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	if !cfg.TrustedWeights {
		if err := checkWeights(g); err != nil {
			return nil, err
		}
	}

	// 5) Prepare data structures for the algorithm.
	V := g.VertexCount()
	pq, err := newFrontier(cfg.Frontier, V)
	if err != nil {
		return nil, err
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    core.NewDistances(V, source),
		visited: make([]bool, V),
		pq:      pq,
	}

	// 6) Run the main loop.
	r.pq.improve(source, core.Unreached(), 0)
	if err = r.process(); err != nil {
		return nil, err
	}
	for _, v := range r.overflowed {
		if !r.dist[v].IsFinite() {
			return nil, fmt.Errorf("dijkstra: distance to %d: %w", v, core.ErrOverflow)
		}
	}

	return r.dist, nil
}

// checkWeights returns ErrNegativeWeight wrapped with the first offending edge.
func checkWeights(g *core.Graph) error {
	for v := 0; v < g.VertexCount(); v++ {
		for _, e := range g.EdgesOf(v) {
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %s", ErrNegativeWeight, e)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph    // The input graph; read-only within Dijkstra.
	options Options        // Configuration options (thresholds, frontier kind).
	dist    core.Distances // Vertex → current best distance from source.
	visited []bool         // Tracks if a vertex's distance is finalized.
	pq      frontier       // Tentatively reached vertices ordered by distance.

	overflowed []int // Targets of candidates that did not fit in int64.
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The frontier becomes empty (all reachable vertices processed).
//   - The minimum distance in the frontier exceeds MaxDistance.
func (r *runner) process() error {
	var (
		u int
		d int64
	)
	for r.pq.size() > 0 {
		// 1) Pop the smallest-distance entry.
		u, d = r.pq.popMin()

		// 2) If this vertex was already finalized, skip the stale entry.
		if r.visited[u] {
			continue
		}

		// 3) Past MaxDistance nothing else can be finalized.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Mark u as finalized. Its distance d is now immutable.
		r.visited[u] = true

		// 5) Relax all outgoing edges from u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from vertex u and attempts to improve distances to its neighbors.
// When InfEdgeThreshold is set it ignores any edge weight ≥ that threshold (treating them as impassable).
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) error {
	var (
		e    core.Edge
		cand core.Distance
		nd   int64
		ok   bool
	)
	for _, e = range r.g.EdgesOf(u) {
		// Finalized neighbors never improve.
		if r.visited[e.To] {
			continue
		}

		// Skip any edge that is marked as impassable by InfEdgeThreshold.
		if r.options.InfEdgeThreshold > 0 && e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		// Candidate distance source → … → u → v.
		if cand, ok = r.dist[u].Add(e.Weight); !ok {
			if e.Weight < 0 {
				return fmt.Errorf("dijkstra: relaxing %s: %w", e, core.ErrOverflow)
			}
			// Past MaxInt64: no improvement. Under a cap it is simply out of range.
			if r.options.MaxDistance == math.MaxInt64 {
				r.overflowed = append(r.overflowed, e.To)
			}
			continue
		}
		nd, _ = cand.Value()

		// Beyond the cap: do not record.
		if nd > r.options.MaxDistance {
			continue
		}

		// Strict improvement only; equal distances do not re-enter the frontier.
		if !cand.Less(r.dist[e.To]) {
			continue
		}

		r.pq.improve(e.To, r.dist[e.To], nd)
		r.dist[e.To] = cand
	}

	return nil
}
