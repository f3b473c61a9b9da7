package substrate

import (
	"context"
	"errors"
)

// ErrNilFunc is returned when a nil transform function is supplied to
// MapPartitions, FlatMap, or PartitionBy.
var ErrNilFunc = errors.New("substrate: transform function is nil")

// Collection is a partitioned, immutable sequence of elements of type E,
// physically sharded across some number of partitions. Every transform
// returns a new Collection rather than mutating the receiver, mirroring
// the functional-update discipline package online relies on (spec.md §5).
type Collection[E any] interface {
	// NumPartitions reports the current shard count.
	NumPartitions() int

	// MapPartitions applies fn to each shard's elements independently and
	// in parallel, preserving the shard count and assignment. fn must be
	// pure with respect to other shards: it receives only its own shard's
	// elements.
	MapPartitions(ctx context.Context, fn func(shard []E) ([]E, error)) (Collection[E], error)

	// FlatMap applies fn to every element independently (in parallel,
	// per-shard), flattening the results. Shard count is preserved; an
	// element's outputs stay in its origin shard.
	FlatMap(ctx context.Context, fn func(e E) ([]E, error)) (Collection[E], error)

	// Collect gathers every shard's elements to the driver, in shard-index
	// order, then in within-shard order. This is a global barrier.
	Collect(ctx context.Context) ([]E, error)

	// PartitionBy re-shards the collection into numPartitions shards,
	// placing each element e into shard keyFn(e) mod numPartitions. This is
	// a global barrier (a shuffle).
	PartitionBy(ctx context.Context, numPartitions int, keyFn func(e E) int) (Collection[E], error)

	// Cache marks the collection as worth retaining in memory across
	// reuse; for an already-materialized in-process backend this is a
	// no-op that returns the receiver unchanged.
	Cache() Collection[E]

	// Checkpoint materializes the current collection, breaking the chain
	// of deferred transformations that produced it so the lineage does not
	// grow unbounded across many mutations.
	Checkpoint() Collection[E]

	// Release signals that this collection's resources (cached shards,
	// checkpoint state) may be reclaimed. A released Collection must not
	// be used again.
	Release()
}
