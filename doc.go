// Package nnshard builds and maintains approximate k-nearest-neighbor
// graphs over datasets too large for a single machine to hold or search
// exactly.
//
// A dataset of values under a similarity function is split across a fixed
// number of shards by a capacity-aware medoid partitioner (package
// partition), each shard's local neighbor graph is built and queried
// independently (package localgraph), and the distributed whole is
// represented as a sharded edge table (package distgraph) that can be
// checkpointed and whose superseded versions are released.
//
// Approximate search (package approxsearch) fans a query out across every
// shard's local graph and merges the partial results; online maintenance
// (package online) lets individual points be inserted into or removed from
// an already-partitioned graph without a full repartition, refreshing
// medoids only periodically. An exact brute-force graph (package brute) is
// kept alongside as a baseline to measure the approximation against, and
// package dataset generates synthetic point clouds for exercising both.
//
// Subpackages:
//
//	node/         — Node, NeighborList, Similarity: the shared data model
//	localgraph/   — single-shard neighbor graph and bounded search
//	distgraph/    — sharded graph, edge table, checkpoint/release lineage
//	partition/    — balanced medoid partitioning and partition metrics
//	approxsearch/ — distributed approximate k-NN search
//	online/       — incremental insertion and removal
//	brute/        — exact all-pairs baseline
//	similarity/   — Jaro-Winkler and L2 Similarity implementations
//	dataset/      — synthetic Gaussian and grid point-cloud generators
//	substrate/    — shard-local collection and parallel map/reduce helpers
//	bfs/, scc/    — graph traversal and strongly-connected-component support
package nnshard
