// SPDX-License-Identifier: MIT
// Package: negpath/builder
//
// impl_cycle.go - Cycle(n, w) and Path(n, w) constructors.
//
// Contract:
//   - Cycle: n ≥ 1 (n=1 is a self-loop), edges i→(i+1) mod n.
//   - Path:  n ≥ 1, edges i→i+1 for i < n-1.
//   - Every edge carries the constant weight w; cfg weights are ignored.
//
// Complexity: O(n) time and edges.

package builder

import "fmt"

const (
	methodCycle      = "Cycle"
	methodPath       = "Path"
	minCycleVertices = 1
	minPathVertices  = 1
)

// Cycle returns a Constructor for the directed ring 0→1→…→n-1→0 with weight w
// on every edge. The total cycle weight is n·w.
func Cycle(n int, w int64) Constructor {
	return func(b *edgeBuffer, _ builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		b.grow(n)
		for i := 0; i < n; i++ {
			b.add(i, (i+1)%n, w)
		}

		return nil
	}
}

// Path returns a Constructor for the directed chain 0→1→…→n-1 with weight w
// on every edge.
func Path(n int, w int64) Constructor {
	return func(b *edgeBuffer, _ builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		b.grow(n)
		for i := 0; i+1 < n; i++ {
			b.add(i, i+1, w)
		}

		return nil
	}
}
