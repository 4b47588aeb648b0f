// SPDX-License-Identifier: MIT

package johnson

import (
	"strings"

	"github.com/katalvlaran/negpath/core"
)

// Result is the V×V all-pairs distance table produced by AllPairs.
// It is read-only and safe for concurrent use.
type Result struct {
	n    int
	rows []core.Distances
}

// VertexCount returns V.
func (r *Result) VertexCount() int { return r.n }

// At returns the shortest distance from u to v. Out-of-range pairs are
// reported as Unreached.
func (r *Result) At(u, v int) core.Distance {
	if u < 0 || u >= r.n || v < 0 || v >= r.n {
		return core.Unreached()
	}

	return r.rows[u][v]
}

// Row returns a copy of the distances from u, or nil if u is out of range.
func (r *Result) Row(u int) core.Distances {
	if u < 0 || u >= r.n {
		return nil
	}
	out := make(core.Distances, r.n)
	copy(out, r.rows[u])

	return out
}

// Shortest returns the lowest-cost ordered pair u≠v among all reached pairs.
// Ties go to the smallest u, then the smallest v. ok is false when no pair
// of distinct vertices is connected.
//
// Complexity: O(V²).
func (r *Result) Shortest() (u, v int, d core.Distance, ok bool) {
	var i, j int
	for i = 0; i < r.n; i++ {
		for j = 0; j < r.n; j++ {
			if i == j {
				continue
			}
			if r.rows[i][j].Less(d) {
				u, v, d, ok = i, j, r.rows[i][j], true
			}
		}
	}

	return u, v, d, ok
}

// String renders one row per line, as printed by Distances.String.
func (r *Result) String() string {
	var sb strings.Builder
	for u := 0; u < r.n; u++ {
		if u > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.rows[u].String())
	}

	return sb.String()
}
