package brute

import (
	"context"
	"errors"

	"github.com/katalvlaran/nnshard/distgraph"
	"github.com/katalvlaran/nnshard/node"
	"golang.org/x/sync/errgroup"
)

// Sentinel errors.
var (
	// ErrNilSimilarity is returned when a nil Similarity function is supplied.
	ErrNilSimilarity = errors.New("brute: similarity function is nil")

	// ErrBadK is returned when k is not positive.
	ErrBadK = errors.New("brute: k must be >= 1")
)

// Brute computes the exact top-k NeighborList for every node via all-pairs
// comparison.
type Brute[T any] struct {
	k          int
	similarity node.Similarity[T]
}

// New constructs a Brute baseline. sim must be non-nil; k must be >= 1.
func New[T any](k int, sim node.Similarity[T]) (*Brute[T], error) {
	if sim == nil {
		return nil, ErrNilSimilarity
	}
	if k < 1 {
		return nil, ErrBadK
	}

	return &Brute[T]{k: k, similarity: sim}, nil
}

// ComputeGraph compares every node against every other node in nodes,
// keeping each node's top-k most similar under the Similarity function,
// then shards the resulting tuples round-robin (by input index mod
// numPartitions) into a DistributedGraph — an O(N²/P) bulk builder with no
// partitioning or capacity logic, the exact baseline spec.md §6 names
// alongside the approximate path.
//
// Each node's comparisons run in parallel on their own goroutine under
// golang.org/x/sync/errgroup, with no limit on how many run at once — the
// same fan-out discipline
// distgraph.Subgraphs uses for its own type-changing map.
func (b *Brute[T]) ComputeGraph(ctx context.Context, nodes []node.Node[T], numPartitions int) (*distgraph.DistributedGraph[T], error) {
	if numPartitions < 1 {
		return nil, distgraph.ErrBadPartitionCount
	}

	tuples := make([]distgraph.Tuple[T], len(nodes))
	g, ctx := errgroup.WithContext(ctx)
	for i := range nodes {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			n := nodes[i]
			nl := node.NewNeighborList(b.k)
			for j, other := range nodes {
				if j == i {
					continue
				}
				nl.Add(node.Neighbor{ID: other.ID, Similarity: b.similarity(n.Value, other.Value)})
			}
			n.Partition = int32(i % numPartitions)
			tuples[i] = distgraph.Tuple[T]{Node: n, Neighbors: nl}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return distgraph.NewFromEdgeTable(tuples, numPartitions, b.similarity)
}
