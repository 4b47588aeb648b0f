// SPDX-License-Identifier: MIT
// Package: negpath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over ordered pairs (i,j), i≠j: each edge is
//     kept independently with probability p.
//   - Weight: base ∈ [0, maxWeight] plus potential difference pot[i]-pot[j],
//     pot ∈ [-spread, spread]. No cycle has negative total weight.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(n) for potentials plus the emitted edges.
//
// Determinism:
//   - Potentials are drawn first, for i asc.
//   - Trials then run for i asc, j asc; each kept edge draws its base weight
//     right after its trial.

package builder

import (
	"fmt"

	"github.com/katalvlaran/negpath/core"
)

// File-local constants (stable method tag and domains).
const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed graph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *edgeBuffer, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Declare vertices and draw potentials.
		b.grow(n)
		pot := cfg.potentials(n)

		// 3) Sample edges in stable order.
		var (
			i, j int
			w    int64
			ok   bool
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				if !keep(cfg, p) {
					continue
				}
				if w, ok = core.AddInt64(cfg.baseWeight(), pot[i]-pot[j]); !ok {
					return fmt.Errorf("%s: weight %d→%d: %w", methodRandomSparse, i, j, core.ErrOverflow)
				}
				b.add(i, j, w)
			}
		}

		return nil
	}
}

// keep runs one Bernoulli trial. p ∈ {0,1} never consumes randomness.
func keep(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
