// Package distgraph implements DistributedGraph, the sharded collection of
// (Node, NeighborList) tuples that backs the rest of this module: one
// localgraph.Graph per partition, addressable by partition id, with two
// interconvertible views —
//
//   - edge-table view: a flat stream of Tuple[T] (Node, NeighborList) pairs.
//   - subgraph view: one *localgraph.Graph[T] per shard.
//
// DistributedGraph holds its tuples in a substrate.Collection[Tuple[T]];
// the edge-table <-> subgraph conversions are plain loops over the
// collection's shards (Subgraphs runs one goroutine per shard; FromSubgraphs
// runs sequentially) (not expressed through Collection's own
// MapPartitions/FlatMap, since those preserve element type and a
// *localgraph.Graph[T] is not a Tuple[T]).
package distgraph
