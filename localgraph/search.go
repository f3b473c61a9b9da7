package localgraph

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/nnshard/node"
)

// SearchOptions configures Search's GNSS-style bounded greedy walk.
// DefaultSearchOptions mirrors the teacher's functional-options shape
// (dijkstra.Options) with plain fields rather than function options, since
// every caller of Search (package approxsearch, package online) needs to
// tune all three knobs together rather than override one at a time.
type SearchOptions struct {
	// MaxSimilarities bounds the total number of Similarity calls across
	// every starting walk; once exceeded, Search stops and returns the
	// best top-k found so far.
	MaxSimilarities int
	// Depth bounds the number of hops each starting walk may take.
	Depth int
	// Expansion controls how many distinct random starting nodes are
	// sampled; the number of starts is max(1, round(Expansion)).
	Expansion float64
}

// DefaultSearchOptions mirrors spec defaults: depth=100, expansion=1.01
// (one starting node per walk, matching the GNSS "starting-set expansion
// factor" default of approximately 1).
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		MaxSimilarities: math.MaxInt32,
		Depth:           100,
		Expansion:       1.01,
	}
}

func (o SearchOptions) numStarts() int {
	n := int(math.Round(o.Expansion))
	if n < 1 {
		return 1
	}

	return n
}

// Search performs a bounded best-first walk over g looking for the nodes
// most similar to query, under g's own Similarity function, and returns a
// NeighborList of at most k results.
//
// From each of numStarts random starting nodes, Search repeatedly computes
// the similarity of query to every neighbor of the current best unvisited
// node, folds each into a running top-k, and advances to the most similar
// unvisited neighbor. A walk stops when no neighbor improves on the current
// position, after opts.Depth hops, or once the total number of Similarity
// calls across every walk this call has made exceeds opts.MaxSimilarities.
//
// A NeighborList entry that names a node.NodeID not present in g belongs to
// a sibling partition and is skipped rather than treated as an error — the
// expected shape of a partition boundary crossing.
func (g *Graph[T]) Search(query T, k int, opts SearchOptions) *node.NeighborList {
	result := node.NewNeighborList(k)

	ids := g.NodeIDs()
	if len(ids) == 0 {
		return result
	}

	similaritiesUsed := 0
	visited := make(map[node.NodeID]bool, len(ids))

	numStarts := opts.numStarts()
	if numStarts > len(ids) {
		numStarts = len(ids)
	}

	starts := sampleDistinct(ids, numStarts)
	for _, start := range starts {
		if similaritiesUsed >= opts.MaxSimilarities {
			break
		}
		current := start
		currentSim := math.Inf(-1)
		for hop := 0; hop < opts.Depth; hop++ {
			if similaritiesUsed >= opts.MaxSimilarities {
				break
			}
			if visited[current] {
				break
			}
			visited[current] = true

			_, nl, ok := g.Get(current)
			if !ok || nl == nil {
				break
			}

			var (
				bestNext       node.NodeID
				bestSimilarity float64
				foundNext      bool
			)
			for _, cand := range nl.Neighbors() {
				if similaritiesUsed >= opts.MaxSimilarities {
					break
				}
				candNode, _, ok := g.Get(cand.ID)
				if !ok {
					// neighbor lives in a sibling partition: skip, not an error.
					continue
				}
				sim := g.similarity(query, candNode.Value)
				similaritiesUsed++
				result.Add(node.Neighbor{ID: cand.ID, Similarity: sim})

				if !visited[cand.ID] && (!foundNext || sim > bestSimilarity) {
					bestNext = cand.ID
					bestSimilarity = sim
					foundNext = true
				}
			}

			if !foundNext || bestSimilarity <= currentSim {
				break // no unvisited neighbor improves on the current position; this start is exhausted
			}
			current = bestNext
			currentSim = bestSimilarity
		}
	}

	return result
}

// sampleDistinct returns up to n distinct elements of ids chosen uniformly
// at random, without replacement. If n >= len(ids), it returns a shuffled
// copy of ids.
func sampleDistinct(ids []node.NodeID, n int) []node.NodeID {
	pool := make([]node.NodeID, len(ids))
	copy(pool, ids)
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	if n > len(pool) {
		n = len(pool)
	}

	return pool[:n]
}
