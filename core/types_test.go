// SPDX-License-Identifier: MIT
// Package core_test verifies graph construction, the adjacency view,
// immutability, and augmentation.

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/negpath/core"
)

// textbook returns the classic V=5 graph with negative edges and no negative cycle.
func textbook() []core.Edge {
	return []core.Edge{
		{From: 0, To: 1, Weight: -1},
		{From: 0, To: 2, Weight: 4},
		{From: 1, To: 2, Weight: 3},
		{From: 1, To: 3, Weight: 2},
		{From: 1, To: 4, Weight: 2},
		{From: 3, To: 2, Weight: 5},
		{From: 3, To: 1, Weight: 1},
		{From: 4, To: 3, Weight: -3},
	}
}

func TestNewGraph_Counts(t *testing.T) {
	g, err := core.NewGraph(5, textbook())
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 8, g.EdgeCount())
	assert.False(t, g.Undirected())
	assert.True(t, g.HasNegativeWeights())
}

func TestNewGraph_EmptyGraph(t *testing.T) {
	g, err := core.NewGraph(0, nil)
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Nil(t, g.EdgesOf(0))
}

func TestNewGraph_BadVertexCount(t *testing.T) {
	g, err := core.NewGraph(-1, nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrBadVertexCount)
}

func TestNewGraph_InvalidEndpoints(t *testing.T) {
	cases := map[string]core.Edge{
		"from too large": {From: 3, To: 0, Weight: 1},
		"to too large":   {From: 0, To: 3, Weight: 1},
		"negative from":  {From: -1, To: 0, Weight: 1},
		"negative to":    {From: 0, To: -2, Weight: 1},
	}
	for name, bad := range cases {
		t.Run(name, func(t *testing.T) {
			edges := []core.Edge{{From: 0, To: 1, Weight: 1}, bad}
			g, err := core.NewGraph(3, edges)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, core.ErrInvalidGraph)
			assert.Contains(t, err.Error(), "edge #1")
		})
	}
}

func TestEdgesOf_Adjacency(t *testing.T) {
	g, err := core.NewGraph(5, textbook())
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{
		{From: 1, To: 2, Weight: 3},
		{From: 1, To: 3, Weight: 2},
		{From: 1, To: 4, Weight: 2},
	}, g.EdgesOf(1))
	assert.Empty(t, g.EdgesOf(2))
	assert.Nil(t, g.EdgesOf(-1))
	assert.Nil(t, g.EdgesOf(5))
}

func TestWithUndirected_MirrorsEdges(t *testing.T) {
	edges := []core.Edge{
		{From: 0, To: 1, Weight: 7},
		{From: 2, To: 2, Weight: 1}, // self-loop stays single
	}
	g, err := core.NewGraph(3, edges, core.WithUndirected())
	require.NoError(t, err)

	assert.True(t, g.Undirected())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []core.Edge{{From: 1, To: 0, Weight: 7}}, g.EdgesOf(1))
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 7},
		{From: 1, To: 0, Weight: 7},
		{From: 2, To: 2, Weight: 1},
	}, g.Edges())
}

func TestGraph_IsolatedFromCallerSlices(t *testing.T) {
	edges := textbook()
	g, err := core.NewGraph(5, edges)
	require.NoError(t, err)

	// Mutating the input after construction must not leak in.
	edges[0].Weight = 100
	assert.Equal(t, int64(-1), g.Edges()[0].Weight)

	// Mutating a returned copy must not leak in either.
	out := g.Edges()
	out[0].Weight = 200
	assert.Equal(t, int64(-1), g.Edges()[0].Weight)
}

func TestMapWeights_ReturnsNewGraph(t *testing.T) {
	g, err := core.NewGraph(5, textbook())
	require.NoError(t, err)

	doubled, err := g.MapWeights(func(e core.Edge) (int64, error) { return e.Weight * 2, nil })
	require.NoError(t, err)

	assert.Equal(t, int64(-2), doubled.Edges()[0].Weight)
	assert.Equal(t, int64(-1), g.Edges()[0].Weight)
	assert.Equal(t, []core.Edge{{From: 4, To: 3, Weight: -6}}, doubled.EdgesOf(4))
}

func TestMapWeights_PropagatesError(t *testing.T) {
	g, err := core.NewGraph(2, []core.Edge{{From: 0, To: 1, Weight: 1}})
	require.NoError(t, err)

	_, err = g.MapWeights(func(core.Edge) (int64, error) { return 0, core.ErrOverflow })
	assert.ErrorIs(t, err, core.ErrOverflow)
}

func TestAugment(t *testing.T) {
	g, err := core.NewGraph(3, []core.Edge{{From: 0, To: 1, Weight: -4}})
	require.NoError(t, err)

	a := core.Augment(g)
	assert.Equal(t, 3, a.Root)
	assert.Zero(t, a.Offset)
	assert.Equal(t, 4, a.Graph.VertexCount())
	assert.Equal(t, []core.Edge{
		{From: 3, To: 0, Weight: 0},
		{From: 3, To: 1, Weight: 0},
		{From: 3, To: 2, Weight: 0},
	}, a.Graph.EdgesOf(a.Root))

	// The original graph is untouched.
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())

	v, ok := a.Original(2)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = a.Original(a.Root)
	assert.False(t, ok)
}

func TestGraph_ConcurrentReads(t *testing.T) {
	g, err := core.NewGraph(5, textbook())
	require.NoError(t, err)

	// Readers only; collect results outside goroutines.
	const readers = 16
	counts := make([]int, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for v := 0; v < g.VertexCount(); v++ {
				counts[i] += len(g.EdgesOf(v))
			}
		}(i)
	}
	wg.Wait()

	for _, c := range counts {
		assert.Equal(t, 8, c)
	}
}
