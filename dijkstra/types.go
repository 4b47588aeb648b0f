// SPDX-License-Identifier: MIT
// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// The algorithm maintains a frontier of tentatively reached vertices and
// relaxes edges in increasing order of distance from the source vertex.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	– Space: O(V + E)
//
// Options:
//
//	– Frontier:         FrontierHeap (lazy decrease-key) or FrontierOrderedSet.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– TrustedWeights:   skip the negative-weight pre-scan.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex lies outside [0, V).
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//	– ErrBadFrontier     if the frontier kind is unknown.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source lies outside [0, V).
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadFrontier indicates an unknown Frontier value.
	ErrBadFrontier = errors.New("dijkstra: unknown frontier kind")
)

// Frontier selects the priority structure holding tentatively reached vertices.
//
// FrontierHeap       – binary min-heap with lazy decrease-key; stale entries are
//
//	skipped on pop because their vertex is already finalized.
//
// FrontierOrderedSet – red-black tree keyed by (distance, vertex); the stale
//
//	entry is removed when a vertex improves, so the structure
//	never holds more than one entry per vertex.
type Frontier int

const (
	// FrontierHeap is the default: container/heap with lazy decrease-key.
	FrontierHeap Frontier = iota

	// FrontierOrderedSet keeps exactly one entry per tentatively reached vertex.
	FrontierOrderedSet
)

// String returns "heap" or "set".
func (f Frontier) String() string {
	switch f {
	case FrontierHeap:
		return "heap"
	case FrontierOrderedSet:
		return "set"
	default:
		return "unknown"
	}
}

// ParseFrontier maps "heap" and "set" to a Frontier.
func ParseFrontier(s string) (Frontier, error) {
	switch s {
	case "heap", "":
		return FrontierHeap, nil
	case "set", "ordered-set":
		return FrontierOrderedSet, nil
	default:
		return 0, ErrBadFrontier
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Frontier         – priority structure (default FrontierHeap).
// MaxDistance      – optional cap on distances to explore (vertices beyond stay Unreached).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0 when set. Default is 0, meaning no threshold: every edge is traversable.
//
// TrustedWeights   – skip the O(E) negative-weight pre-scan. The caller
//
//	guarantees non-negative weights; results on negative input are unspecified.
type Options struct {
	Frontier         Frontier // Priority structure
	MaxDistance      int64    // Maximum distance to explore
	InfEdgeThreshold int64    // Weight threshold above which edges are non-traversable
	TrustedWeights   bool     // Skip the negative-weight pre-scan
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithFrontier selects the frontier implementation.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		o.Frontier = f
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
// Default (if not set) is math.MaxInt64 (no cap).
func WithMaxDistance(max int64) Option {
	if max < 0 {
		// Option constructors validate and panic on meaningless input.
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
// Default (if not set) is no threshold, so even a weight of math.MaxInt64 is traversable.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithTrustedWeights skips the negative-weight pre-scan. Use it only when the
// weights are non-negative by construction, as in a Johnson-reweighted graph.
func WithTrustedWeights() Option {
	return func(o *Options) {
		o.TrustedWeights = true
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Frontier:         FrontierHeap.
//   - MaxDistance:      math.MaxInt64 (no distance limit; explore all reachable).
//   - InfEdgeThreshold: 0 (no threshold; no edge treated as impassable).
//   - TrustedWeights:   false (negative weights are rejected up front).
func DefaultOptions() Options {
	return Options{
		Frontier:         FrontierHeap,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: 0,
		TrustedWeights:   false,
	}
}
