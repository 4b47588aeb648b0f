// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/negpath/core"
	"github.com/katalvlaran/negpath/johnson"
)

// VerifyJohnson recomputes all pairs of g with gonum's path.JohnsonAllPaths
// and compares every off-diagonal entry of res against it. Unreached entries
// must be +Inf on gonum's side.
//
// Returns nil on agreement, or ErrMismatch wrapped with the first
// disagreeing pair in row-major order.
//
// Complexity: O(V·E log V) for the oracle plus O(V²) for the comparison.
func VerifyJohnson(g *core.Graph, res *johnson.Result) error {
	if g == nil || res == nil {
		return ErrNilGraph
	}
	if res.VertexCount() != g.VertexCount() {
		return fmt.Errorf("%w: result has %d vertices, graph %d",
			ErrMismatch, res.VertexCount(), g.VertexCount())
	}

	gg, err := ToGonum(g)
	if err != nil {
		return err
	}
	oracle, ok := path.JohnsonAllPaths(gg)
	if !ok {
		return fmt.Errorf("%w: gonum reports a negative cycle", ErrMismatch)
	}

	var (
		u, v int
		want float64
		got  core.Distance
	)
	for u = 0; u < g.VertexCount(); u++ {
		for v = 0; v < g.VertexCount(); v++ {
			if u == v {
				continue
			}
			want = oracle.Weight(int64(u), int64(v))
			got = res.At(u, v)
			if !agree(got, want) {
				return fmt.Errorf("%w: (%d,%d) got %s, gonum %v", ErrMismatch, u, v, got, want)
			}
		}
	}

	return nil
}

// agree compares a tagged distance with gonum's float encoding.
func agree(d core.Distance, w float64) bool {
	x, ok := d.Value()
	if !ok {
		return math.IsInf(w, 1)
	}

	return !math.IsInf(w, 0) && float64(x) == w
}
