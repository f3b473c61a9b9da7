package distgraph

import (
	"errors"

	"github.com/katalvlaran/nnshard/node"
)

// Sentinel errors.
var (
	// ErrNilSimilarity is returned when a nil Similarity function is supplied.
	ErrNilSimilarity = errors.New("distgraph: similarity function is nil")

	// ErrBadPartitionCount is returned when numPartitions is not positive.
	ErrBadPartitionCount = errors.New("distgraph: partition count must be positive")
)

// Tuple is the edge-table view's unit of data: one node's identity/value
// and its NeighborList. NodeID equality determines tuple identity.
type Tuple[T any] struct {
	Node      node.Node[T]
	Neighbors *node.NeighborList
}

// NodePartition is the transport record used only during the partitioner's
// shuffle (spec.md §3): a node paired with the partition it has been
// provisionally assigned to, before that assignment is stamped back onto
// the node itself.
type NodePartition[T any] struct {
	Node      node.Node[T]
	Partition int32
}
