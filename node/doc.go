// Package node defines the identity and payload types shared by every other
// nnshard package: Node, Neighbor, the bounded top-k NeighborList, and the
// Similarity function signature nodes are compared with.
//
// A Node carries a stable identity (NodeID) and a value of caller-supplied
// type T. Equality and hashing are by identity only — two Nodes sharing a
// NodeID are the same node regardless of their Value. The partition a node
// has been assigned to by the k-medoids partitioner (see package partition)
// lives on the node itself as a typed field, not in a general-purpose
// attribute bag.
//
// NeighborList is a bounded (capacity k) top-k collection of (NodeID,
// similarity) pairs, held in a min-heap with the weakest entry at the root
// so it can be evicted first, one per node, keyed by neighbor identity so a node can appear at
// most once. It is the sole edge representation in this module: there is no
// separate Edge type, and an edge "exists" exactly when it occupies a slot
// in some node's NeighborList.
package node
