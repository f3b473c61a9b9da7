// Package approxsearch implements bounded approximate nearest-neighbor
// search over a partitioned graph: construction runs the k-medoids
// partitioner once and caches the resulting DistributedGraph, and Search
// maps a local greedy walk over every shard in parallel, merging the
// per-shard results into one bounded NeighborList.
package approxsearch
