// SPDX-License-Identifier: MIT
// Package builder provides deterministic generators of weighted directed
// graphs for tests, benchmarks, and the negpath CLI.
//
// Every generator is a Constructor: a closure that emits vertices and edges
// into a buffer. BuildGraph runs one or more constructors in order and hands
// the result to core.NewGraph, so the generated graph is validated and
// immutable like any other.
//
// Constructors:
//
//	RandomSparse(n, p) – directed Erdős–Rényi sample over ordered pairs (i,j),
//	                     i≠j, each kept with probability p. Weights may be
//	                     negative, yet no cycle has negative total weight.
//	Cycle(n, w)        – directed ring 0→1→…→n-1→0, every edge weight w.
//	                     n·w < 0 yields a negative cycle on purpose.
//	Path(n, w)         – directed chain 0→1→…→n-1, every edge weight w.
//
// Negative weights without negative cycles:
//
//	RandomSparse draws a base weight b ∈ [0, MaxWeight] per edge and a
//	potential p(v) ∈ [-Spread, Spread] per vertex, then emits
//	w(u,v) = b + p(u) - p(v). Along any cycle the potentials telescope away,
//	so the cycle weight equals the sum of its non-negative base weights.
//	Spread = 0 (default) yields non-negative weights suitable for Dijkstra.
//
// Options:
//
//	WithSeed(seed)     – seeded *rand.Rand; required for 0 < p < 1.
//	WithRand(r)        – explicit RNG.
//	WithMaxWeight(m)   – upper bound of base weights (default 10).
//	WithSpread(k)      – potential range (default 0).
//
// Errors:
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//	ErrConstructFailed. Option constructors panic on meaningless input;
//	constructors never panic.
//
// Determinism:
//
//	Same constructors, options and seed ⇒ identical edge lists.
package builder
