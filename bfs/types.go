// Package bfs provides tunable options and error definitions for bounded
// breadth-first neighbor expansion over a localgraph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/nnshard/node"
)

// Sentinel errors for FindNeighbors execution.
var (
	// ErrNoSources is returned when FindNeighbors is called with an empty
	// source set.
	ErrNoSources = errors.New("bfs: no source nodes supplied")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures FindNeighbors behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when FindNeighbors is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize FindNeighbors.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	OnEnqueue func(id node.NodeID, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(id node.NodeID, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// FindNeighbors aborts and propagates that error.
	OnVisit func(id node.NodeID, depth int) error

	// MaxDepth bounds expansion; a value of 0 means "only the sources
	// themselves" (package online's FastRemove candidate expansion sets
	// this to 3).
	MaxDepth int

	// FilterNeighbor can skip edges by returning false. Called for each
	// edge curr->neighbor.
	FilterNeighbor func(curr, neighbor node.NodeID) bool

	err error
}

// DefaultOptions returns Options with sane defaults: unbounded context,
// MaxDepth 2, no filtering, no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(node.NodeID, int) {},
		OnDequeue:      func(node.NodeID, int) {},
		OnVisit:        func(node.NodeID, int) error { return nil },
		MaxDepth:       2,
		FilterNeighbor: func(_, _ node.NodeID) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id node.NodeID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error from
// this callback stops the walk.
func WithOnVisit(fn func(id node.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds expansion to the given number of hops from the
// nearest source. d must be >= 0; negative values record ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor node.NodeID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a FindNeighbors walk:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node ID to its hop distance from the nearest source.
//   - Parent: map from node ID to its predecessor in the expansion tree.
type Result struct {
	Order  []node.NodeID
	Depth  map[node.NodeID]int
	Parent map[node.NodeID]node.NodeID
}

// IDs returns every node reached, excluding the original sources (Depth 0).
func (r *Result) IDs() []node.NodeID {
	out := make([]node.NodeID, 0, len(r.Order))
	for _, id := range r.Order {
		if r.Depth[id] > 0 {
			out = append(out, id)
		}
	}

	return out
}
