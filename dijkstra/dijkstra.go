package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/nnshard/localgraph"
	"github.com/katalvlaran/nnshard/node"
)

// Distances computes the minimum hop count from source to every node
// reachable from it within opts.MaxHops, treating every NeighborList edge
// as a directed, unit-weight edge. The returned map holds only reached
// nodes; source itself maps to 0.
//
// A neighbor ID not present in g (a sibling-partition reference) is not
// traversed.
func Distances[T any](g *localgraph.Graph[T], source node.NodeID, opts ...Option) (map[node.NodeID]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if !g.Has(source) {
		return nil, ErrSourceNotFound
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist := make(map[node.NodeID]int)
	visited := make(map[node.NodeID]bool)

	pq := make(nodePQ, 0, g.Len())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})
	dist[source] = 0

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist

		if visited[u] {
			continue
		}
		if d > cfg.MaxHops {
			break
		}
		visited[u] = true

		nl, _ := g.Neighbors(u)
		if nl == nil {
			continue
		}
		for _, edge := range nl.Neighbors() {
			v := edge.ID
			if !g.Has(v) {
				continue
			}
			newDist := d + 1
			if newDist > cfg.MaxHops {
				continue
			}
			if existing, ok := dist[v]; ok && existing <= newDist {
				continue
			}
			dist[v] = newDist
			heap.Push(&pq, &nodeItem{id: v, dist: newDist})
		}
	}

	return dist, nil
}

// Eccentricity returns the greatest hop distance from source to any node
// reachable from it in g. A source with no outgoing reach (an isolated
// node) has eccentricity 0.
func Eccentricity[T any](g *localgraph.Graph[T], source node.NodeID, opts ...Option) (int, error) {
	dist, err := Distances(g, source, opts...)
	if err != nil {
		return 0, err
	}

	max := 0
	for _, d := range dist {
		if d > max {
			max = d
		}
	}

	return max, nil
}

// nodeItem is one (node, distance) pair held in the priority queue.
type nodeItem struct {
	id   node.NodeID
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by ascending distance, using
// the same lazy-decrease-key discipline as the teacher's weighted
// implementation: a shorter distance to an already-queued node is pushed
// as a new entry rather than mutating the old one, and stale entries are
// dropped via the visited check when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
