// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/negpath/core"
)

// maxExact is the largest magnitude a float64 holds without rounding.
const maxExact = int64(1) << 53

// ToGonum copies g into a weighted directed gonum graph over nodes 0..V-1.
// An undirected g yields both directions of every edge.
//
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.WeightedDirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	out := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for v := 0; v < g.VertexCount(); v++ {
		out.AddNode(simple.Node(v))
	}

	var (
		e   core.Edge
		cur float64
		ok  bool
	)
	for _, e = range g.Edges() {
		if e.Weight > maxExact || e.Weight < -maxExact {
			return nil, fmt.Errorf("%w: %s exceeds 2^53", ErrUnrepresentable, e)
		}
		if e.From == e.To {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: negative self-loop %s", ErrUnrepresentable, e)
			}
			continue
		}
		// Keep the cheapest of parallel edges.
		if cur, ok = out.Weight(int64(e.From), int64(e.To)); ok && cur <= float64(e.Weight) {
			continue
		}
		out.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(e.From),
			T: simple.Node(e.To),
			W: float64(e.Weight),
		})
	}

	return out, nil
}

// FromGonum copies a weighted gonum graph into a directed core.Graph.
// Edges are emitted by source id, then target id. Undirected gonum graphs
// report every edge from both ends and so yield both directions.
//
// Complexity: O((V + E) log V).
func FromGonum(src graph.Weighted) (*core.Graph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}

	nodes := graph.NodesOf(src.Nodes())
	n := len(nodes)
	for _, u := range nodes {
		if u.ID() < 0 || u.ID() >= int64(n) {
			return nil, fmt.Errorf("%w: id %d with %d nodes", ErrSparseIDs, u.ID(), n)
		}
	}
	slices.SortFunc(nodes, byID)

	var edges []core.Edge
	for _, u := range nodes {
		to := graph.NodesOf(src.From(u.ID()))
		slices.SortFunc(to, byID)
		for _, v := range to {
			w, _ := src.Weight(u.ID(), v.ID())
			iw, err := integral(w)
			if err != nil {
				return nil, fmt.Errorf("edge %d→%d: %w", u.ID(), v.ID(), err)
			}
			edges = append(edges, core.Edge{From: int(u.ID()), To: int(v.ID()), Weight: iw})
		}
	}

	return core.NewGraph(n, edges)
}

// integral converts w to int64 when it is a finite whole number in range.
func integral(w float64) (int64, error) {
	if math.IsNaN(w) || math.IsInf(w, 0) || w != math.Trunc(w) ||
		w >= math.MaxInt64 || w < math.MinInt64 {
		return 0, fmt.Errorf("%w: %v", ErrNonIntegralWeight, w)
	}

	return int64(w), nil
}

func byID(a, b graph.Node) int {
	switch {
	case a.ID() < b.ID():
		return -1
	case a.ID() > b.ID():
		return 1
	default:
		return 0
	}
}
