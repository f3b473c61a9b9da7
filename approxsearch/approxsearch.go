package approxsearch

import (
	"context"
	"math/rand"
	"sync"

	"github.com/katalvlaran/nnshard/distgraph"
	"github.com/katalvlaran/nnshard/localgraph"
	"github.com/katalvlaran/nnshard/node"
	"github.com/katalvlaran/nnshard/partition"
)

// ApproximateSearch runs the k-medoids partitioner once at construction and
// caches the resulting DistributedGraph, answering Search queries by
// fanning a bounded greedy walk out across every shard.
type ApproximateSearch[T any] struct {
	similarity node.Similarity[T]
	k          int
	imbalance  float64
	graph      *distgraph.DistributedGraph[T]
	rng        *rand.Rand
}

// New partitions tuples into partitions shards using iterations refinement
// passes and caches the result. k is the default neighbor-list width new
// nodes' NeighborLists are built with; Search's own k parameter is
// independent and may differ per call.
func New[T any](ctx context.Context, tuples []distgraph.Tuple[T], k, partitions, iterations int, sim node.Similarity[T], opts ...partition.Option) (*ApproximateSearch[T], error) {
	if sim == nil {
		return nil, ErrNilSimilarity
	}
	if k < 1 {
		return nil, ErrBadK
	}

	allOpts := append([]partition.Option{
		partition.WithPartitions(partitions),
		partition.WithIterations(iterations),
	}, opts...)

	p, err := partition.New[T](sim, allOpts...)
	if err != nil {
		return nil, err
	}

	dg, err := p.Run(ctx, tuples)
	if err != nil {
		return nil, err
	}

	return &ApproximateSearch[T]{
		similarity: sim,
		k:          k,
		imbalance:  p.Options().Imbalance,
		graph:      dg,
		rng:        rand.New(rand.NewSource(1)),
	}, nil
}

// Imbalance returns the capacity multiplier alpha this ApproximateSearch
// was partitioned with — the same constant Assign applies to online
// insertion's capacity check.
func (a *ApproximateSearch[T]) Imbalance() float64 { return a.imbalance }

// Graph exposes the cached DistributedGraph (used by online.Graph, which
// owns and replaces it across insertions).
func (a *ApproximateSearch[T]) Graph() *distgraph.DistributedGraph[T] { return a.graph }

// SetGraph replaces the cached DistributedGraph — used by online.Graph
// after it folds an inserted or removed node into a new version.
func (a *ApproximateSearch[T]) SetGraph(dg *distgraph.DistributedGraph[T]) { a.graph = dg }

// Similarity returns the shared Similarity function.
func (a *ApproximateSearch[T]) Similarity() node.Similarity[T] { return a.similarity }

// Search maps a bounded local greedy walk (localgraph.Search) over every
// shard in parallel, each with an equal share of maxSimilarities, then
// merges the per-shard NeighborLists into one size-k result via AddAll.
// depth and expansion follow localgraph.SearchOptions' semantics; zero
// values fall back to DefaultOptions' (100, 1.01).
func (a *ApproximateSearch[T]) Search(ctx context.Context, query T, k, maxSimilarities int, opts ...func(*Options)) (*node.NeighborList, error) {
	cfg := DefaultOptions()
	cfg.MaxSimilarities = maxSimilarities
	for _, opt := range opts {
		opt(&cfg)
	}

	subgraphs, err := a.graph.Subgraphs(ctx)
	if err != nil {
		return nil, err
	}

	numPartitions := len(subgraphs)
	if numPartitions == 0 {
		return node.NewNeighborList(k), nil
	}

	// Per spec.md §4.E/§8: mps rounds down to 0 when MaxSimilarities < P,
	// and Search then legitimately returns an empty partial per shard —
	// no clamp to 1 here, so a sub-P budget can surface a size-0 merged
	// result exactly as documented.
	mps := cfg.MaxSimilarities / numPartitions

	localOpts := localgraph.SearchOptions{
		MaxSimilarities: mps,
		Depth:           cfg.Depth,
		Expansion:       cfg.Expansion,
	}

	partials := make([]*node.NeighborList, numPartitions)
	var wg sync.WaitGroup
	for i, sg := range subgraphs {
		wg.Add(1)
		go func(i int, sg *localgraph.Graph[T]) {
			defer wg.Done()
			partials[i] = sg.Search(query, k, localOpts)
		}(i, sg)
	}
	wg.Wait()

	result := node.NewNeighborList(k)
	for _, partial := range partials {
		result.AddAll(partial)
	}

	return result, nil
}

// Assign scores value against every medoid's value under the shared
// Similarity, discounted by partitionSizes relative to capacity
// imbalance·total/partitions (not rounded), and returns the winning partition index —
// the §4.D assignment rule reused against live global counts instead of a
// single shard's running tally, for online insertion.
func (a *ApproximateSearch[T]) Assign(value T, medoidValues []T, partitionSizes []int) int32 {
	total := 0
	for _, s := range partitionSizes {
		total += s
	}

	capacity := 0.0
	if len(partitionSizes) > 0 {
		capacity = a.imbalance * float64(total) / float64(len(partitionSizes))
	}

	return partition.AssignOne(a.similarity, value, medoidValues, partitionSizes, capacity, a.rng)
}
