// Package dijkstra computes unweighted hop-count distances and eccentricity
// over a localgraph.Graph, adapted from the teacher's weighted
// single-source shortest-path implementation: every edge costs exactly one
// hop, so the priority queue ordering by distance collapses to the same
// lazy-decrease-key min-heap shape with weight fixed at 1.
//
// Eccentricity (the maximum hop distance from a node to any other node in
// its own Graph) is the operation the partitioner (package partition) needs
// to decide whether a medoid sits near the "center" of its partition.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Distances and Eccentricity.
var (
	// ErrNilGraph indicates a nil Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates an empty source NodeID was passed in.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrSourceNotFound indicates the source NodeID is not present in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrBadMaxHops indicates MaxHops was set to a negative value.
	ErrBadMaxHops = errors.New("dijkstra: MaxHops must be non-negative")
)

// Options configures Distances and Eccentricity.
type Options struct {
	// MaxHops caps exploration: nodes more than MaxHops away are left
	// unreached. Must be >= 0. Default is math.MaxInt32 (no cap).
	MaxHops int
}

// Option is a functional option for Options.
type Option func(*Options)

// WithMaxHops caps the number of hops explored from the source.
// Panics if hops is negative.
func WithMaxHops(hops int) Option {
	return func(o *Options) {
		if hops < 0 {
			panic(ErrBadMaxHops.Error())
		}
		o.MaxHops = hops
	}
}

// DefaultOptions returns Options with no hop cap.
func DefaultOptions() Options {
	return Options{MaxHops: math.MaxInt32}
}
