package partition

import (
	"context"

	"github.com/katalvlaran/nnshard/dijkstra"
	"github.com/katalvlaran/nnshard/distgraph"
	"github.com/katalvlaran/nnshard/localgraph"
	"github.com/katalvlaran/nnshard/node"
	"github.com/katalvlaran/nnshard/scc"
)

// RecomputeMedoids runs step 3 of one refinement iteration (spec.md §4.D)
// against dg's current subgraphs without touching assignment: one
// recomputeMedoid call per shard. previous must hold dg.NumPartitions()
// entries, the fallback medoid for each shard if its subgraph is empty or
// has no candidate of positive eccentricity.
//
// This is exported for package online's medoid-update countdown, which
// re-runs exactly this step on a live DistributedGraph between insertions
// without re-running assignment.
func RecomputeMedoids[T any](ctx context.Context, dg *distgraph.DistributedGraph[T], previous []node.NodeID) ([]node.NodeID, error) {
	subgraphs, err := dg.Subgraphs(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]node.NodeID, len(subgraphs))
	for i, sg := range subgraphs {
		var prev node.NodeID
		if i < len(previous) {
			prev = previous[i]
		}
		out[i] = recomputeMedoid(sg, prev)
	}

	return out, nil
}

// recomputeMedoid decomposes g into strongly connected components, takes
// the largest (ties broken by the component whose smallest NodeID sorts
// first, per scc.Largest), and returns the node within it with the
// smallest positive eccentricity — the graph-theoretic center, not a
// cost-minimizing medoid. Nodes with eccentricity 0 (isolated within the
// component, which can only happen for a singleton SCC) are skipped.
//
// If g's largest component is empty (the shard collected no tuples this
// round) or no candidate has positive eccentricity, previous is returned
// unchanged — spec.md's documented "keep previous medoid" fallback.
func recomputeMedoid[T any](g *localgraph.Graph[T], previous node.NodeID) node.NodeID {
	largest := scc.Largest(g)
	if len(largest) == 0 {
		return previous
	}

	var (
		best    node.NodeID
		bestEcc = -1
	)
	for _, id := range largest {
		ecc, err := dijkstra.Eccentricity(g, id)
		if err != nil || ecc <= 0 {
			continue
		}
		if bestEcc == -1 || ecc < bestEcc || (ecc == bestEcc && id < best) {
			best = id
			bestEcc = ecc
		}
	}

	if bestEcc == -1 {
		return previous
	}

	return best
}
