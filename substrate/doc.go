// Package substrate defines the partitioned-collection capability set the
// rest of this module is built against: map-per-shard (with partitioning
// preserved), flat-map, collect, partition-by a custom partitioner, cache,
// checkpoint, and release.
//
// Collection is deliberately an interface rather than a concrete type: a
// distributed data-parallel engine, a local thread pool with channels, or
// an in-process single-shard stub could all implement it. Local is the one
// production backend this module ships, running each shard's work on its
// own goroutine under golang.org/x/sync/errgroup, bounded by a maximum
// in-flight shard count.
package substrate
