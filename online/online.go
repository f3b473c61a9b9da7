package online

import (
	"context"
	"log/slog"
	"math"

	"github.com/katalvlaran/nnshard/approxsearch"
	"github.com/katalvlaran/nnshard/bfs"
	"github.com/katalvlaran/nnshard/distgraph"
	"github.com/katalvlaran/nnshard/node"
	"github.com/katalvlaran/nnshard/partition"
)

// Graph is the incrementally-maintained k-NN graph: it owns an
// ApproximateSearch (and therefore its cached DistributedGraph), the
// per-partition size counters assignment needs, the checkpoint/medoid
// countdown state, and a short FIFO of previous DistributedGraph versions
// retained for the substrate's lineage-release discipline.
//
// Not safe for concurrent AddNode/FastRemove calls — see package doc.
type Graph[T any] struct {
	search     *approxsearch.ApproximateSearch[T]
	similarity node.Similarity[T]
	k          int

	medoids        []node.NodeID
	partitionSizes []int
	nodesAdded     int

	searchSpeedup     int
	medoidUpdateRatio float64
	countdown         int

	history []*distgraph.DistributedGraph[T]
}

// New partitions initial into a fresh ApproximateSearch (k neighbors per
// node, partitions shards, iterations k-medoids refinement passes) and
// wraps it as an online Graph ready to accept AddNode/FastRemove calls.
func New[T any](ctx context.Context, initial []distgraph.Tuple[T], k, partitions, iterations int, sim node.Similarity[T], opts ...partition.Option) (*Graph[T], error) {
	if sim == nil {
		return nil, ErrNilSimilarity
	}
	if k < 1 {
		return nil, ErrBadK
	}

	search, err := approxsearch.New(ctx, initial, k, partitions, iterations, sim, opts...)
	if err != nil {
		return nil, err
	}

	medoids, err := partition.RecomputeMedoids(ctx, search.Graph(), make([]node.NodeID, partitions))
	if err != nil {
		return nil, err
	}

	sizes, err := partitionSizesOf(ctx, search.Graph())
	if err != nil {
		return nil, err
	}

	g := &Graph[T]{
		search:            search,
		similarity:        sim,
		k:                 k,
		medoids:           medoids,
		partitionSizes:    sizes,
		searchSpeedup:     defaultSearchSpeedup,
		medoidUpdateRatio: defaultMedoidUpdateRatio,
	}
	g.resetCountdown()

	return g, nil
}

// SetSearchSpeedup overrides the max_similarities budget multiplier
// (default 4) used by AddNode's own search call. Must be >= 1.
func (g *Graph[T]) SetSearchSpeedup(speedup int) error {
	if speedup < 1 {
		return ErrBadSpeedup
	}
	g.searchSpeedup = speedup

	return nil
}

// SetMedoidUpdateRatio overrides the fraction of current size that
// triggers a medoid refresh (default 0.1; 0 disables refresh entirely).
// Must be >= 0.
func (g *Graph[T]) SetMedoidUpdateRatio(ratio float64) error {
	if ratio < 0 {
		return ErrBadRatio
	}
	g.medoidUpdateRatio = ratio
	g.resetCountdown()

	return nil
}

// Size returns the current total node count across every partition.
func (g *Graph[T]) Size() int {
	total := 0
	for _, s := range g.partitionSizes {
		total += s
	}

	return total
}

// GetGraph returns the current edge-table view.
func (g *Graph[T]) GetGraph(ctx context.Context) ([]distgraph.Tuple[T], error) {
	return g.search.Graph().EdgeTable(ctx)
}

// GetDistributedGraph returns the current subgraph-per-partition view.
func (g *Graph[T]) GetDistributedGraph(ctx context.Context) (*distgraph.DistributedGraph[T], error) {
	return g.search.Graph(), nil
}

// AddNode finds n's neighbors, assigns n to a partition respecting
// capacity, walks the new neighborhood to insert back-edges, appends n to
// its partition's subgraph, and replaces the stored DistributedGraph with
// the result — spec.md §4.F's addNode.
func (g *Graph[T]) AddNode(ctx context.Context, n node.Node[T]) (*node.NeighborList, error) {
	maxSimilarities := g.searchSpeedup * g.k
	nl, err := g.search.Search(ctx, n.Value, g.k, maxSimilarities)
	if err != nil {
		return nil, err
	}

	medoidValues, err := g.valuesFor(ctx, g.medoids)
	if err != nil {
		return nil, err
	}

	target := g.search.Assign(n.Value, medoidValues, g.partitionSizes)
	n.Partition = target

	dg := g.search.Graph()
	subgraphs, err := dg.Subgraphs(ctx)
	if err != nil {
		return nil, err
	}

	for _, sg := range subgraphs {
		updateFunction(sg, n, nl, g.similarity)
	}

	if int(target) >= 0 && int(target) < len(subgraphs) {
		subgraphs[target].Put(n, nl)
	}

	newGraph, err := distgraph.FromSubgraphs(subgraphs, g.similarity)
	if err != nil {
		return nil, err
	}

	g.partitionSizes[target]++
	g.nodesAdded++

	if g.nodesAdded%checkpointEvery == 0 {
		newGraph, err = newGraph.Checkpoint(ctx)
		if err != nil {
			return nil, err
		}
		slog.Info("online: checkpointed graph lineage", "nodesAdded", g.nodesAdded)
	}

	g.pushHistory(dg)
	g.search.SetGraph(newGraph)

	g.countdown--
	if g.countdown <= 0 {
		medoids, err := partition.RecomputeMedoids(ctx, newGraph, g.medoids)
		if err != nil {
			return nil, err
		}
		g.medoids = medoids
		g.resetCountdown()
		slog.Info("online: recomputed medoids", "size", g.Size())
	}

	return nl, nil
}

// FastRemove deletes t from every subgraph that references it, backfilling
// the affected nodes' NeighborLists from a bounded local candidate pool —
// spec.md §4.F's fastRemove.
func (g *Graph[T]) FastRemove(ctx context.Context, t node.NodeID) error {
	dg := g.search.Graph()
	subgraphs, err := dg.Subgraphs(ctx)
	if err != nil {
		return err
	}

	ownerPartition := int32(-1)
	toUpdate := make(map[node.NodeID]bool)
	for i, sg := range subgraphs {
		if sg.Has(t) {
			ownerPartition = int32(i)
		}
		sg.ForEach(func(n node.Node[T], nl *node.NeighborList) bool {
			if n.ID != t && nl != nil && nl.ContainsNode(t) {
				toUpdate[n.ID] = true
			}

			return true
		})
	}

	initial := make([]node.NodeID, 0, len(toUpdate)+1)
	initial = append(initial, t)
	for id := range toUpdate {
		initial = append(initial, id)
	}

	candidateSet := make(map[node.NodeID]bool)
	for _, sg := range subgraphs {
		sources := make([]node.NodeID, 0, len(initial))
		for _, id := range initial {
			if sg.Has(id) {
				sources = append(sources, id)
			}
		}
		if len(sources) == 0 {
			continue
		}
		result, err := bfs.FindNeighbors(sg, sources, bfs.WithMaxDepth(removeExpandDepth))
		if err != nil {
			return err
		}
		for _, id := range result.IDs() {
			if id != t {
				candidateSet[id] = true
			}
		}
	}
	candidates := make([]node.NodeID, 0, len(candidateSet))
	for id := range candidateSet {
		candidates = append(candidates, id)
	}

	valueOf := make(map[node.NodeID]T)
	for _, sg := range subgraphs {
		sg.ForEach(func(n node.Node[T], _ *node.NeighborList) bool {
			valueOf[n.ID] = n.Value

			return true
		})
	}

	for _, sg := range subgraphs {
		removeUpdate(sg, t, toUpdate, candidates, valueOf, g.similarity)
	}

	newGraph, err := distgraph.FromSubgraphs(subgraphs, g.similarity)
	if err != nil {
		return err
	}

	if ownerPartition >= 0 && int(ownerPartition) < len(g.partitionSizes) {
		g.partitionSizes[ownerPartition]--
	}

	g.pushHistory(dg)
	g.search.SetGraph(newGraph)

	return nil
}

// valuesFor looks up the current Value for each of the given node IDs
// against the live edge table. A medoid ID with no matching tuple (an
// empty partition that has never had a medoid assigned) yields T's zero
// value, matching recomputeMedoid's "keep previous" fallback already
// having produced an empty-string NodeID in that case.
func (g *Graph[T]) valuesFor(ctx context.Context, ids []node.NodeID) ([]T, error) {
	tuples, err := g.search.Graph().EdgeTable(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[node.NodeID]T, len(tuples))
	for _, t := range tuples {
		byID[t.Node.ID] = t.Node.Value
	}

	out := make([]T, len(ids))
	for i, id := range ids {
		out[i] = byID[id]
	}

	return out, nil
}

func (g *Graph[T]) pushHistory(dg *distgraph.DistributedGraph[T]) {
	g.history = append(g.history, dg)
	if len(g.history) > historyBound {
		oldest := g.history[0]
		g.history = g.history[1:]
		oldest.Release()
	}
}

func (g *Graph[T]) resetCountdown() {
	if g.medoidUpdateRatio == 0 {
		g.countdown = math.MaxInt32

		return
	}
	g.countdown = int(float64(g.Size()) * g.medoidUpdateRatio)
	if g.countdown <= 0 {
		g.countdown = 1
	}
}

func partitionSizesOf[T any](ctx context.Context, dg *distgraph.DistributedGraph[T]) ([]int, error) {
	subgraphs, err := dg.Subgraphs(ctx)
	if err != nil {
		return nil, err
	}

	sizes := make([]int, len(subgraphs))
	for i, sg := range subgraphs {
		sizes[i] = sg.Len()
	}

	return sizes, nil
}
