package node

import "fmt"

// NodeID uniquely identifies a Node within a graph. It is a distinct type
// rather than a bare string so call sites cannot accidentally pass an
// unrelated string where a node identity is expected.
type NodeID string

// NoPartition is the sentinel Partition value for a node that has not yet
// been assigned to a partition by the k-medoids partitioner.
const NoPartition int32 = -1

// Node is a value-bearing, identity-stable vertex of the k-NN graph.
//
// Equality and hashing are by ID only: two Nodes with the same ID are the
// same node regardless of Value. Partition is written once per
// assignment: by package partition's Run, by package online's AddNode, and
// by package brute's round-robin sharding; it is otherwise read-only.
type Node[T any] struct {
	ID        NodeID
	Value     T
	Partition int32 // NoPartition until assigned
}

// New constructs a Node with the given id and value, unassigned to any
// partition.
func New[T any](id NodeID, value T) Node[T] {
	return Node[T]{ID: id, Value: value, Partition: NoPartition}
}

// String implements fmt.Stringer for debugging and test failure messages.
func (n Node[T]) String() string {
	if n.Partition == NoPartition {
		return fmt.Sprintf("Node(%s)", n.ID)
	}

	return fmt.Sprintf("Node(%s, partition=%d)", n.ID, n.Partition)
}
