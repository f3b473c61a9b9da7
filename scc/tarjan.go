package scc

import (
	"sort"

	"github.com/katalvlaran/nnshard/localgraph"
	"github.com/katalvlaran/nnshard/node"
)

// tarjan implements Tarjan's strongly connected component algorithm from
// the pseudocode at
// http://en.wikipedia.org/wiki/Tarjan%27s_strongly_connected_components_algorithm,
// adapted to walk a NeighborList's successor edges directly rather than a
// graph.Directed's indexed Node/From() interface.
type tarjan[T any] struct {
	g *localgraph.Graph[T]

	index      int
	indexTable map[node.NodeID]int
	lowLink    map[node.NodeID]int
	onStack    map[node.NodeID]bool

	stack []node.NodeID

	sccs [][]node.NodeID
}

// Components returns the strongly connected components of g, treating each
// NeighborList entry as a directed edge from the owning node to the
// neighbor. Components are returned in the order Tarjan's algorithm
// discovers their roots; within a component, NodeIDs are sorted ascending
// for deterministic output. A neighbor reference that points outside g
// (a sibling-partition node) is not traversed.
func Components[T any](g *localgraph.Graph[T]) [][]node.NodeID {
	ids := g.NodeIDs()
	t := &tarjan[T]{
		g:          g,
		indexTable: make(map[node.NodeID]int, len(ids)),
		lowLink:    make(map[node.NodeID]int, len(ids)),
		onStack:    make(map[node.NodeID]bool, len(ids)),
	}

	for _, id := range ids {
		if _, seen := t.indexTable[id]; !seen {
			t.strongconnect(id)
		}
	}

	for _, comp := range t.sccs {
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
	}

	return t.sccs
}

// Largest returns the largest strongly connected component of g (ties
// broken by the component whose smallest NodeID sorts first), or nil if g
// is empty.
func Largest[T any](g *localgraph.Graph[T]) []node.NodeID {
	comps := Components(g)
	if len(comps) == 0 {
		return nil
	}

	best := comps[0]
	for _, c := range comps[1:] {
		switch {
		case len(c) > len(best):
			best = c
		case len(c) == len(best) && len(c) > 0 && c[0] < best[0]:
			best = c
		}
	}

	return best
}

func (t *tarjan[T]) strongconnect(v node.NodeID) {
	t.index++
	t.indexTable[v] = t.index
	t.lowLink[v] = t.index
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	nl, _ := t.g.Neighbors(v)
	if nl != nil {
		for _, edge := range nl.Neighbors() {
			w := edge.ID
			if !t.g.Has(w) {
				continue // successor lives in a sibling partition; not part of this subgraph
			}
			if _, seen := t.indexTable[w]; !seen {
				t.strongconnect(w)
				t.lowLink[v] = min(t.lowLink[v], t.lowLink[w])
			} else if t.onStack[w] {
				t.lowLink[v] = min(t.lowLink[v], t.indexTable[w])
			}
		}
	}

	if t.lowLink[v] == t.indexTable[v] {
		var comp []node.NodeID
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		t.sccs = append(t.sccs, comp)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}
