// SPDX-License-Identifier: MIT
// Package: negpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil  (pure/deterministic unless seeded)
//   • maxWeight = 10
//   • spread    = 0    (non-negative weights)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/negpath/core"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultMaxWeight = int64(10)
	defaultSpread    = int64(0)
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng       *rand.Rand // nil means “no randomness”
	maxWeight int64      // base weights in [0, maxWeight]
	spread    int64      // potentials in [-spread, spread]
}

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		maxWeight: defaultMaxWeight,
		spread:    defaultSpread,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// baseWeight draws a base weight in [0, maxWeight]. Without an RNG it
// returns maxWeight, which keeps p=1 graphs deterministic.
func (c builderConfig) baseWeight() int64 {
	if c.rng == nil || c.maxWeight == 0 {
		return c.maxWeight
	}

	return c.rng.Int63n(c.maxWeight + 1)
}

// potentials draws one potential per vertex in [-spread, spread].
func (c builderConfig) potentials(n int) []int64 {
	pot := make([]int64, n)
	if c.rng == nil || c.spread == 0 {
		return pot
	}
	for i := range pot {
		pot[i] = c.rng.Int63n(2*c.spread+1) - c.spread
	}

	return pot
}

// edgeBuffer collects constructor output before core.NewGraph validates it.
type edgeBuffer struct {
	n     int
	edges []core.Edge
}

// grow makes sure vertices 0..n-1 exist.
func (b *edgeBuffer) grow(n int) {
	if n > b.n {
		b.n = n
	}
}

// add appends a directed edge.
func (b *edgeBuffer) add(from, to int, w int64) {
	b.edges = append(b.edges, core.Edge{From: from, To: to, Weight: w})
}
