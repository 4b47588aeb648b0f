// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/negpath/core"
)

// ExampleNewGraph builds a small directed graph and walks its adjacency view.
func ExampleNewGraph() {
	g, err := core.NewGraph(3, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: -2},
		{From: 2, To: 1, Weight: 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.EdgesOf(0) {
		fmt.Println(e)
	}
	// Output:
	// 0→1(4)
	// 0→2(-2)
}

// ExampleAugment shows the synthetic root used for Johnson potentials.
func ExampleAugment() {
	g, _ := core.NewGraph(2, []core.Edge{{From: 0, To: 1, Weight: -5}})
	a := core.Augment(g)
	fmt.Println("root:", a.Root, "vertices:", a.Graph.VertexCount())
	for _, e := range a.Graph.EdgesOf(a.Root) {
		fmt.Println(e)
	}
	// Output:
	// root: 2 vertices: 3
	// 2→0(0)
	// 2→1(0)
}
