// SPDX-License-Identifier: MIT

package bellmanford

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/negpath/core"
)

// runWide repeats the passes and the verification pass on big.Int distances.
// A nil entry is unreached. The result is converted back to core.Distances
// only when every reached distance fits in int64.
//
// run switches to it when an int64 candidate underflows or overflows towards
// an unreached vertex. Within V passes a distance is the length of a walk of
// at most V edges, so the wide values stay bounded.
func runWide(v int, edges []core.Edge, source int, cfg Options) (core.Distances, error) {
	dist := make([]*big.Int, v)
	dist[source] = new(big.Int)

	var (
		cand = new(big.Int)
		w    = new(big.Int)
	)
	// improves leaves the candidate for e in cand.
	improves := func(e core.Edge) bool {
		if dist[e.From] == nil {
			return false
		}
		cand.Add(dist[e.From], w.SetInt64(e.Weight))

		return dist[e.To] == nil || cand.Cmp(dist[e.To]) < 0
	}

	var (
		pass    int
		changed bool
		e       core.Edge
	)
	for pass = 1; pass < v; pass++ {
		changed = false
		for _, e = range edges {
			if !improves(e) {
				continue
			}
			if dist[e.To] == nil {
				dist[e.To] = new(big.Int)
			}
			dist[e.To].Set(cand)
			changed = true
		}
		if !changed && cfg.EarlyExit {
			break
		}
	}

	for _, e = range edges {
		if improves(e) {
			return nil, fmt.Errorf("%w: edge %s keeps relaxing", ErrNegativeCycle, e)
		}
	}

	out := make(core.Distances, v)
	for i, d := range dist {
		if d == nil {
			continue
		}
		if !d.IsInt64() {
			return nil, fmt.Errorf("bellmanford: distance to %d: %w", i, core.ErrOverflow)
		}
		out[i] = core.Finite(d.Int64())
	}

	return out, nil
}
