// Package online implements the incrementally-maintained k-NN graph: a
// Graph owns the current ApproximateSearch/DistributedGraph pair and
// applies AddNode/FastRemove as functional replacements of that state —
// search to find a new node's neighbors, assign to place it in a shard
// respecting capacity, a bounded two-hop back-edge walk to keep existing
// nodes' NeighborLists pointing at it, and periodic checkpointing plus
// medoid refresh to bound both memory and search quality drift over time.
//
// Graph is the one type in this module that logs (via log/slog, in the
// same package-level-function style the rest of the ecosystem's services
// use): checkpoint and medoid-recompute events are the kind of thing an
// operator running this online would want in a log stream.
//
// AddNode and FastRemove are not safe for concurrent use — spec.md's
// documented ordering guarantee is that successive mutations are strictly
// sequential on the driver.
package online
