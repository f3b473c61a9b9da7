// Package bfs provides bounded, multi-source breadth-first neighbor
// expansion over a localgraph.Graph, returning unweighted hop distances,
// parent links, and visit order.
//
// FindNeighbors is the candidate expansion behind package online's
// FastRemove: the nodes within a few hops of a removed node and of the
// nodes that referenced it are offered as replacement neighbors.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/nnshard/localgraph"
	"github.com/katalvlaran/nnshard/node"
)

// queueItem pairs a node ID with its walk depth and its parent's ID.
type queueItem struct {
	id     node.NodeID
	depth  int
	parent node.NodeID
	hasPar bool
}

// walker encapsulates mutable FindNeighbors state.
type walker[T any] struct {
	graph   *localgraph.Graph[T]
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[node.NodeID]bool
	res     *Result
}

// FindNeighbors runs a bounded multi-source breadth-first walk over g
// starting from every id in sources simultaneously (all at depth 0),
// applying any number of functional Options.
func FindNeighbors[T any](g *localgraph.Graph[T], sources []node.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	w := &walker[T]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[node.NodeID]bool, n),
		res: &Result{
			Order:  make([]node.NodeID, 0, n),
			Depth:  make(map[node.NodeID]int, n),
			Parent: make(map[node.NodeID]node.NodeID, n),
		},
	}

	for _, src := range sources {
		if g.Has(src) && !w.visited[src] {
			w.enqueue(src, 0, "", false)
		}
	}

	return w.res, w.loop()
}

func (w *walker[T]) enqueue(id node.NodeID, d int, parent node.NodeID, hasPar bool) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if hasPar {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent, hasPar: hasPar})
}

func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

func (w *walker[T]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

func (w *walker[T]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

func (w *walker[T]) enqueueNeighbors(item queueItem) {
	if item.depth >= w.opts.MaxDepth {
		return
	}

	nl, ok := w.graph.Neighbors(item.id)
	if !ok || nl == nil {
		return
	}

	for _, edge := range nl.Neighbors() {
		nbr := edge.ID
		if !w.graph.Has(nbr) {
			continue // sibling-partition reference; not ours to expand
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if w.visited[nbr] {
			continue
		}
		w.enqueue(nbr, item.depth+1, item.id, true)
	}
}
