// SPDX-License-Identifier: MIT
// File: frontier.go
// Role: The two frontier variants behind one small interface.
//   - heapFrontier: container/heap, lazy decrease-key (duplicates allowed).
//   - setFrontier:  red-black tree keyed by (dist, vertex), stale entry removed.

package dijkstra

import (
	"container/heap"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/negpath/core"
)

// frontier holds tentatively reached vertices ordered by distance.
type frontier interface {
	// improve records that v now has tentative distance d; old is its
	// previous tentative distance (Unreached if none).
	improve(v int, old core.Distance, d int64)

	// popMin removes and returns the entry with the smallest distance.
	popMin() (v int, d int64)

	// size is the number of stored entries, stale ones included.
	size() int
}

// newFrontier returns the frontier selected by kind, pre-sized for n vertices.
func newFrontier(kind Frontier, n int) (frontier, error) {
	switch kind {
	case FrontierHeap:
		pq := make(nodePQ, 0, n)
		heap.Init(&pq)
		return &heapFrontier{pq: pq}, nil
	case FrontierOrderedSet:
		return &setFrontier{tree: redblacktree.NewWith(compareNodes)}, nil
	default:
		return nil, ErrBadFrontier
	}
}

// heapFrontier never removes entries; the runner skips stale pops.
type heapFrontier struct {
	pq nodePQ
}

func (h *heapFrontier) improve(v int, _ core.Distance, d int64) {
	heap.Push(&h.pq, &nodeItem{id: v, dist: d})
}

func (h *heapFrontier) popMin() (int, int64) {
	item := heap.Pop(&h.pq).(*nodeItem)
	return item.id, item.dist
}

func (h *heapFrontier) size() int { return h.pq.Len() }

// setFrontier keeps exactly one key per tentatively reached, unfinalized vertex.
type setFrontier struct {
	tree *redblacktree.Tree
}

// setKey orders entries by distance, then vertex id for a total order.
type setKey struct {
	dist int64
	id   int
}

// compareNodes is the redblacktree comparator over setKey.
func compareNodes(a, b interface{}) int {
	ka, kb := a.(setKey), b.(setKey)
	switch {
	case ka.dist < kb.dist:
		return -1
	case ka.dist > kb.dist:
		return 1
	case ka.id < kb.id:
		return -1
	case ka.id > kb.id:
		return 1
	default:
		return 0
	}
}

func (s *setFrontier) improve(v int, old core.Distance, d int64) {
	// Drop the stale entry so the vertex is processed only once.
	if prev, ok := old.Value(); ok {
		s.tree.Remove(setKey{dist: prev, id: v})
	}
	s.tree.Put(setKey{dist: d, id: v}, struct{}{})
}

func (s *setFrontier) popMin() (int, int64) {
	node := s.tree.Left()
	k := node.Key.(setKey)
	s.tree.Remove(k)

	return k.id, k.dist
}

func (s *setFrontier) size() int { return s.tree.Size() }

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int   // vertex
	dist int64 // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// We use the “lazy-decrease-key” approach: when we find a shorter distance to an existing vertex v,
// we push a new *nodeItem onto the heap. The outdated entry remains but is ignored when popped
// (checked via visited[v]).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
