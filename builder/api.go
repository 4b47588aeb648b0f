// SPDX-License-Identifier: MIT
// Package: negpath/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Resolves cfg, runs cons in order,
//     then validates the result through core.NewGraph.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/negpath/core"
)

// Constructor emits vertices and edges into the buffer using the resolved
// builderConfig. Constructors MUST validate parameters early and return
// sentinel errors (no panics), and MUST emit edges in a stable order.
type Constructor func(b *edgeBuffer, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order, and builds the graph with core options gopts.
// Constructors share the vertex range: the result has as many vertices as the
// largest constructor asked for.
//
// Errors:
//   - Constructor errors wrapped as "BuildGraph: %w".
//   - core errors from NewGraph.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	buf := &edgeBuffer{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(buf, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.NewGraph(buf.n, buf.edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Build is BuildGraph for a single constructor on a directed graph.
func Build(con Constructor, opts ...Option) (*core.Graph, error) {
	return BuildGraph(nil, opts, con)
}
