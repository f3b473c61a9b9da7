package partition

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/nnshard/distgraph"
	"github.com/katalvlaran/nnshard/node"
	"github.com/katalvlaran/nnshard/substrate"
)

// Partitioner runs balanced k-medoids partitioning over a flat edge table,
// producing a distgraph.DistributedGraph sharded one partition per shard.
type Partitioner[T any] struct {
	similarity node.Similarity[T]
	opts       Options
	rng        *rand.Rand
}

// New constructs a Partitioner. sim must be non-nil; the partition count
// named by opts (or its default) must be >= 1.
func New[T any](sim node.Similarity[T], opts ...Option) (*Partitioner[T], error) {
	if sim == nil {
		return nil, ErrNilSimilarity
	}

	// Partitions has no caller-facing default (unlike Iterations/Imbalance)
	// since there is no sane partition count to assume; callers supply it
	// with WithPartitions, so here we only validate whatever the applied
	// options produced.
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Partitions < 1 {
		return nil, ErrBadPartitionCount
	}

	return &Partitioner[T]{
		similarity: sim,
		opts:       cfg,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Options returns the fully-resolved configuration this Partitioner was
// built with — used by package approxsearch to read back Imbalance for its
// own online-insertion Assign calls, so both paths apply the identical
// capacity constant.
func (p *Partitioner[T]) Options() Options { return p.opts }

// WithPartitions sets the shard count. There is no usable default (unlike
// Iterations/Imbalance/Seed), so every caller of New must supply this.
func WithPartitions(partitions int) Option {
	return func(o *Options) { o.Partitions = partitions }
}

// Run partitions tuples into p.opts.Partitions shards via iterative
// capacity-constrained k-medoids refinement:
//
//  1. sample initial medoids from tuples;
//  2. for each of Iterations passes: greedily assign every tuple to the
//     medoid maximizing capacity-discounted similarity (AssignOne),
//     shuffle tuples into shards by the resulting partition field, and
//     recompute each shard's medoid from its own subgraph's largest
//     strongly connected component;
//  3. return the DistributedGraph built from the final assignment.
//
// An empty tuples is partitioned trivially (every shard empty, no
// iterations run).
func (p *Partitioner[T]) Run(ctx context.Context, tuples []distgraph.Tuple[T], opts ...substrate.Option) (*distgraph.DistributedGraph[T], error) {
	if len(tuples) == 0 {
		return distgraph.NewFromEdgeTable[T](tuples, p.opts.Partitions, p.similarity, opts...)
	}

	current := make([]distgraph.Tuple[T], len(tuples))
	copy(current, tuples)

	medoids := p.initialMedoids(current)
	capacity := p.opts.Imbalance * float64(len(current)) / float64(p.opts.Partitions)

	for iter := 0; iter < p.opts.Iterations; iter++ {
		values := valuesByID(current)
		medoidValues := make([]T, len(medoids))
		for i, id := range medoids {
			medoidValues[i] = values[id]
		}

		used := make([]int, p.opts.Partitions)
		for i := range current {
			part := AssignOne(p.similarity, current[i].Node.Value, medoidValues, used, capacity, p.rng)
			current[i].Node.Partition = part
			used[part]++

			// NodePartition is the transport record spec.md describes the
			// shuffle as emitting; assignment here folds straight into the
			// tuple's own Node.Partition field, so a transient value is
			// constructed to exercise the type rather than route data
			// through it.
			_ = distgraph.NodePartition[T]{Node: current[i].Node, Partition: part}
		}

		dg, err := distgraph.NewFromEdgeTable(current, p.opts.Partitions, p.similarity, opts...)
		if err != nil {
			return nil, err
		}

		subgraphs, err := dg.Subgraphs(ctx)
		if err != nil {
			return nil, err
		}

		for i, sg := range subgraphs {
			medoids[i] = recomputeMedoid(sg, medoids[i])
		}

		current, err = dg.EdgeTable(ctx)
		if err != nil {
			return nil, err
		}
	}

	return distgraph.NewFromEdgeTable(current, p.opts.Partitions, p.similarity, opts...)
}

// valuesByID indexes tuples by NodeID for medoid value lookups. Medoid IDs
// are always drawn from the same tuple set being indexed, so a lookup miss
// never occurs in practice.
func valuesByID[T any](tuples []distgraph.Tuple[T]) map[node.NodeID]T {
	out := make(map[node.NodeID]T, len(tuples))
	for _, t := range tuples {
		out[t.Node.ID] = t.Node.Value
	}

	return out
}

// initialMedoids samples up to 10*Partitions tuples without replacement and
// takes the first Partitions distinct node IDs encountered. If fewer than
// Partitions distinct tuples exist (N < P, or the sample is exhausted
// before P distinct IDs are found), the remaining slots are filled by
// resampling tuples with replacement, cycling through current in order.
func (p *Partitioner[T]) initialMedoids(current []distgraph.Tuple[T]) []node.NodeID {
	n := len(current)
	want := p.opts.Partitions

	sampleSize := 10 * want
	if sampleSize > n {
		sampleSize = n
	}

	perm := p.rng.Perm(n)[:sampleSize]

	medoids := make([]node.NodeID, 0, want)
	seen := make(map[node.NodeID]bool, want)
	for _, i := range perm {
		id := current[i].Node.ID
		if seen[id] {
			continue
		}
		seen[id] = true
		medoids = append(medoids, id)
		if len(medoids) == want {
			return medoids
		}
	}

	for len(medoids) < want {
		medoids = append(medoids, current[len(medoids)%n].Node.ID)
	}

	return medoids
}
