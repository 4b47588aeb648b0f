// SPDX-License-Identifier: MIT
// Package bellmanford defines sentinel errors and configuration options for
// the Bellman-Ford engine.
package bellmanford

import "errors"

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the source lies outside [0, V).
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle indicates that the verification pass still found an
	// improvable edge: a cycle of negative total weight is reachable from the
	// source, so shortest distances are undefined.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle detected")
)

// Options configures the Bellman-Ford engine.
//
// EarlyExit – stop relaxing after the first pass that changes nothing.
//
//	Default true. Never changes the result.
type Options struct {
	EarlyExit bool
}

// Option represents a functional option for configuring Bellman-Ford.
type Option func(*Options)

// WithEarlyExit toggles the no-change early exit. Passing false forces all
// V-1 passes, which is useful when measuring worst-case running time.
func WithEarlyExit(enabled bool) Option {
	return func(o *Options) {
		o.EarlyExit = enabled
	}
}

// DefaultOptions returns Options with EarlyExit enabled.
func DefaultOptions() Options {
	return Options{EarlyExit: true}
}
