// SPDX-License-Identifier: MIT
// Package bellmanford_test provides runnable examples for the Bellman-Ford engine.

package bellmanford_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/negpath/bellmanford"
	"github.com/katalvlaran/negpath/core"
)

// ExampleShortestPaths runs Bellman-Ford on the textbook graph with negative weights.
func ExampleShortestPaths() {
	g, err := core.NewGraph(5, textbookEdges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dist, err := bellmanford.ShortestPaths(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output: [0 -1 2 -2 1]
}

// ExampleShortestPaths_negativeCycle shows how a negative cycle is reported.
func ExampleShortestPaths_negativeCycle() {
	g, _ := core.NewGraph(3, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: -1},
		{From: 2, To: 0, Weight: -1},
	})

	_, err := bellmanford.ShortestPaths(g, 0)
	fmt.Println(errors.Is(err, bellmanford.ErrNegativeCycle))
	// Output: true
}

// ExampleFromEdges runs on a flat edge list without building a Graph.
func ExampleFromEdges() {
	dist, err := bellmanford.FromEdges(4, []core.Edge{{From: 0, To: 1, Weight: 5}}, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output: [0 5 inf inf]
}
