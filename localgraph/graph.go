package localgraph

import (
	"errors"
	"sort"
	"sync"

	"github.com/katalvlaran/nnshard/node"
)

// ErrNilSimilarity is returned by New when constructed with a nil
// Similarity function — a precondition failure per spec.md §7, rejected at
// construction rather than deferred to the first call that needs it.
var ErrNilSimilarity = errors.New("localgraph: similarity function is nil")

// entry is one node's stored value plus its NeighborList.
type entry[T any] struct {
	n  node.Node[T]
	nl *node.NeighborList
}

// Graph is a map from node.NodeID to a bounded node.NeighborList, plus the
// Similarity function shared by every algorithm that walks it. It models
// one partition's worth of the k-NN graph (or, with a single partition, the
// whole thing).
//
// Graph is safe for concurrent use: reads take an RLock, mutations take a
// Lock, mirroring core.Graph's locking discipline in the teacher.
type Graph[T any] struct {
	mu         sync.RWMutex
	similarity node.Similarity[T]
	entries    map[node.NodeID]*entry[T]
}

// New constructs an empty Graph using sim to compare node values.
func New[T any](sim node.Similarity[T]) (*Graph[T], error) {
	if sim == nil {
		return nil, ErrNilSimilarity
	}

	return &Graph[T]{
		similarity: sim,
		entries:    make(map[node.NodeID]*entry[T]),
	}, nil
}

// Similarity returns the Graph's similarity function.
func (g *Graph[T]) Similarity() node.Similarity[T] {
	return g.similarity
}

// Put inserts or replaces n's entry with NeighborList nl. nl may be nil, in
// which case a fresh empty list of the given capacity is not created here —
// callers that need one should construct it via node.NewNeighborList first.
func (g *Graph[T]) Put(n node.Node[T], nl *node.NeighborList) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.entries[n.ID] = &entry[T]{n: n, nl: nl}
}

// Get returns n's Node and NeighborList, and whether it was present.
func (g *Graph[T]) Get(id node.NodeID) (node.Node[T], *node.NeighborList, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.entries[id]
	if !ok {
		var zero node.Node[T]

		return zero, nil, false
	}

	return e.n, e.nl, true
}

// Neighbors is shorthand for Get that discards the Node value — the common
// case for traversal code that only needs the edge set.
func (g *Graph[T]) Neighbors(id node.NodeID) (*node.NeighborList, bool) {
	_, nl, ok := g.Get(id)

	return nl, ok
}

// Has reports whether id is a key of this Graph.
func (g *Graph[T]) Has(id node.NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.entries[id]

	return ok
}

// Delete removes id's entry. Reports whether an entry was removed. It does
// not touch other nodes' NeighborLists — callers that need to scrub
// references to id from the rest of the graph do that separately (see
// package online's removeUpdate).
func (g *Graph[T]) Delete(id node.NodeID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.entries[id]; !ok {
		return false
	}
	delete(g.entries, id)

	return true
}

// SetPartition stamps partition onto id's stored Node, the one mutation the
// k-medoids partitioner (package partition) performs directly on a node
// rather than through Put. Reports whether id was present.
func (g *Graph[T]) SetPartition(id node.NodeID, partition int32) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.entries[id]
	if !ok {
		return false
	}
	e.n.Partition = partition

	return true
}

// Len returns the number of nodes in this Graph.
func (g *Graph[T]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.entries)
}

// NodeIDs returns every key, sorted ascending for deterministic iteration —
// mirroring core.Graph.Vertices()'s sorted-enumeration guarantee.
func (g *Graph[T]) NodeIDs() []node.NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]node.NodeID, 0, len(g.entries))
	for id := range g.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// ForEach calls fn once per entry in ascending NodeID order, stopping early
// if fn returns false. fn must not call back into g (Put/Delete/etc.) — it
// is invoked while holding g's read lock.
func (g *Graph[T]) ForEach(fn func(n node.Node[T], nl *node.NeighborList) bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]node.NodeID, 0, len(g.entries))
	for id := range g.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		e := g.entries[id]
		if !fn(e.n, e.nl) {
			return
		}
	}
}

// Nodes materializes every stored Node (without its NeighborList) in
// ascending ID order.
func (g *Graph[T]) Nodes() []node.Node[T] {
	out := make([]node.Node[T], 0, g.Len())
	g.ForEach(func(n node.Node[T], _ *node.NeighborList) bool {
		out = append(out, n)

		return true
	})

	return out
}
