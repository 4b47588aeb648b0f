// SPDX-License-Identifier: MIT
// Package johnson implements potentials, reweighting, and the per-source
// Dijkstra fan-out.
//
// Notes on implementation choices:
//
//   - The reweighted graph is immutable and shared by every Dijkstra run.
//   - Dijkstra runs with WithTrustedWeights: reweighted weights are
//     non-negative whenever the potentials come from Potentials.
//   - Each run owns exactly one row of the result, so concurrent runs never
//     write to the same memory.
package johnson

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/negpath/bellmanford"
	"github.com/katalvlaran/negpath/core"
	"github.com/katalvlaran/negpath/dijkstra"
)

// Potentials returns h[v], the Bellman-Ford distance to v from a synthetic
// root joined to every vertex by a zero-weight edge. The vector has exactly
// V entries and every entry is finite and ≤ 0.
//
// A negative cycle anywhere in g is reachable from the root, so it is always
// reported here as a wrapped bellmanford.ErrNegativeCycle.
//
// Complexity: O(V·E).
func Potentials(g *core.Graph) ([]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	aug := core.Augment(g)
	dist, err := bellmanford.ShortestPaths(aug.Graph, aug.Root)
	if err != nil {
		return nil, fmt.Errorf("johnson: potentials: %w", err)
	}

	h := make([]int64, g.VertexCount())
	var (
		v, orig int
		ok      bool
	)
	for v = range dist {
		if orig, ok = aug.Original(v); !ok {
			continue
		}
		h[orig], _ = dist[v].Value()
	}

	return h, nil
}

// Reweight returns a new graph with every edge u→v weighted
// w + h[u] - h[v]. g is not modified.
//
// With h from Potentials every new weight is ≥ 0. Any other h is accepted
// and applied as given.
//
// Complexity: O(V + E).
func Reweight(g *core.Graph, h []int64) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(h) != g.VertexCount() {
		return nil, fmt.Errorf("%w: got %d, V=%d", ErrBadPotentials, len(h), g.VertexCount())
	}

	return g.MapWeights(func(e core.Edge) (int64, error) {
		w, ok := shift(e.Weight, h[e.From], h[e.To])
		if !ok {
			return 0, fmt.Errorf("johnson: reweighting %s: %w", e, core.ErrOverflow)
		}

		return w, nil
	})
}

// AllPairs returns the shortest distance for every ordered pair (u, v).
//
// Returns:
//
//   - res: a V×V Result; At(u, v) is Unreached when v is not reachable from u.
//   - err: ErrNilGraph, a wrapped bellmanford.ErrNegativeCycle,
//     core.ErrOverflow, or dijkstra.ErrBadFrontier. res is nil whenever
//     err != nil.
//
// Complexity: O(V·E + V·(V + E) log V) time, O(V²) space.
func AllPairs(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Potentials and reweighting.
	h, err := Potentials(g)
	if err != nil {
		return nil, err
	}
	rw, err := Reweight(g, h)
	if err != nil {
		return nil, err
	}

	// 2) One Dijkstra run per source.
	n := g.VertexCount()
	rows := make([]core.Distances, n)
	if cfg.Workers <= 1 {
		for u := 0; u < n; u++ {
			if rows[u], err = row(rw, h, u, cfg.Frontier); err != nil {
				return nil, err
			}
		}

		return &Result{n: n, rows: rows}, nil
	}

	var eg errgroup.Group
	eg.SetLimit(cfg.Workers)
	for u := 0; u < n; u++ {
		eg.Go(func() error {
			r, err := row(rw, h, u, cfg.Frontier)
			if err != nil {
				return err
			}
			rows[u] = r

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return &Result{n: n, rows: rows}, nil
}

// ShortestPath answers a single (src, dst) query: potentials, one Dijkstra
// run from src, and restoration of the dst entry.
//
// Complexity: O(V·E + (V + E) log V).
func ShortestPath(g *core.Graph, src, dst int) (core.Distance, error) {
	if g == nil {
		return core.Unreached(), ErrNilGraph
	}
	for _, v := range [...]int{src, dst} {
		if !g.HasVertex(v) {
			return core.Unreached(), fmt.Errorf("%w: %d (V=%d)", ErrVertexNotFound, v, g.VertexCount())
		}
	}

	h, err := Potentials(g)
	if err != nil {
		return core.Unreached(), err
	}
	rw, err := Reweight(g, h)
	if err != nil {
		return core.Unreached(), err
	}
	r, err := row(rw, h, src, dijkstra.FrontierHeap)
	if err != nil {
		return core.Unreached(), err
	}

	return r[dst], nil
}

// row runs Dijkstra from u on the reweighted graph and restores the original
// distances in place. Unreached entries are left untouched.
func row(rw *core.Graph, h []int64, u int, f dijkstra.Frontier) (core.Distances, error) {
	d, err := dijkstra.ShortestPaths(rw, u, dijkstra.WithTrustedWeights(), dijkstra.WithFrontier(f))
	if err != nil {
		return nil, fmt.Errorf("johnson: source %d: %w", u, err)
	}

	var (
		x  int64
		ok bool
	)
	for v := range d {
		if x, ok = d[v].Value(); !ok {
			continue
		}
		if x, ok = shift(x, h[v], h[u]); !ok {
			return nil, fmt.Errorf("johnson: restoring (%d,%d): %w", u, v, core.ErrOverflow)
		}
		d[v] = core.Finite(x)
	}

	return d, nil
}

// shift returns x + plus - minus and whether it fits in int64.
func shift(x, plus, minus int64) (int64, bool) {
	if minus == math.MinInt64 {
		return 0, false
	}
	x, ok := core.AddInt64(x, plus)
	if !ok {
		return 0, false
	}

	return core.AddInt64(x, -minus)
}
