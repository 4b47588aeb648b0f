// SPDX-License-Identifier: MIT
// Package: negpath/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes builder behavior by mutating a builderConfig before
// constructors run.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxWeight sets the upper bound of base edge weights. Panics on m < 0.
func WithMaxWeight(m int64) Option {
	if m < 0 {
		panic("builder: WithMaxWeight(negative)")
	}
	return func(c *builderConfig) {
		c.maxWeight = m
	}
}

// WithSpread sets the potential range [-k, k] used by RandomSparse to derive
// negative weights without negative cycles. Panics on k < 0.
func WithSpread(k int64) Option {
	if k < 0 {
		panic("builder: WithSpread(negative)")
	}
	return func(c *builderConfig) {
		c.spread = k
	}
}
