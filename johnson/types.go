// SPDX-License-Identifier: MIT
// Package johnson defines sentinel errors and configuration options for the
// all-pairs engine.
package johnson

import (
	"errors"

	"github.com/katalvlaran/negpath/dijkstra"
)

// Sentinel errors returned by the Johnson implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("johnson: graph is nil")

	// ErrVertexNotFound indicates that a query vertex lies outside [0, V).
	ErrVertexNotFound = errors.New("johnson: vertex not found in graph")

	// ErrBadPotentials indicates a potential vector whose length differs from V.
	ErrBadPotentials = errors.New("johnson: potential vector length mismatch")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("johnson: workers must be at least 1")
)

// Options configures the all-pairs run.
//
// Workers  – upper bound on concurrent Dijkstra runs. Default 1 (sequential).
// Frontier – forwarded to every Dijkstra run. Default dijkstra.FrontierHeap.
type Options struct {
	Workers  int
	Frontier dijkstra.Frontier
}

// Option represents a functional option for configuring AllPairs.
type Option func(*Options)

// WithWorkers bounds the number of concurrent per-source runs.
// Panics with ErrBadWorkers when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrBadWorkers.Error())
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithFrontier selects the Dijkstra frontier used for every source.
func WithFrontier(f dijkstra.Frontier) Option {
	return func(o *Options) {
		o.Frontier = f
	}
}

// DefaultOptions returns sequential execution on the heap frontier.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Frontier: dijkstra.FrontierHeap,
	}
}
