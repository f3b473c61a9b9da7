package scc_test

import (
	"testing"

	"github.com/katalvlaran/nnshard/localgraph"
	"github.com/katalvlaran/nnshard/node"
	"github.com/katalvlaran/nnshard/scc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sim(a, b int) float64 {
	if a == b {
		return 1
	}

	return 0
}

func link(g *localgraph.Graph[int], from, to node.NodeID) {
	nl, ok := g.Neighbors(from)
	if !ok {
		nl = node.NewNeighborList(4)
		n, _, _ := g.Get(from)
		g.Put(n, nl)
	}
	nl.Add(node.Neighbor{ID: to, Similarity: 1})
}

func TestComponents_CycleIsOneComponent(t *testing.T) {
	g, err := localgraph.New[int](sim)
	require.NoError(t, err)

	for i, id := range []node.NodeID{"a", "b", "c"} {
		g.Put(node.New(id, i), node.NewNeighborList(4))
	}
	link(g, "a", "b")
	link(g, "b", "c")
	link(g, "c", "a")

	comps := scc.Components(g)
	require.Len(t, comps, 1)
	assert.ElementsMatch(t, []node.NodeID{"a", "b", "c"}, comps[0])
}

func TestComponents_DAGIsAllSingletons(t *testing.T) {
	g, err := localgraph.New[int](sim)
	require.NoError(t, err)

	for i, id := range []node.NodeID{"a", "b", "c"} {
		g.Put(node.New(id, i), node.NewNeighborList(4))
	}
	link(g, "a", "b")
	link(g, "b", "c")

	comps := scc.Components(g)
	assert.Len(t, comps, 3)
}

func TestLargest_PicksBiggestComponent(t *testing.T) {
	g, err := localgraph.New[int](sim)
	require.NoError(t, err)

	for i, id := range []node.NodeID{"a", "b", "c", "d"} {
		g.Put(node.New(id, i), node.NewNeighborList(4))
	}
	link(g, "a", "b")
	link(g, "b", "a")
	link(g, "c", "d")

	largest := scc.Largest(g)
	assert.ElementsMatch(t, []node.NodeID{"a", "b"}, largest)
}

func TestLargest_EmptyGraph(t *testing.T) {
	g, err := localgraph.New[int](sim)
	require.NoError(t, err)

	assert.Nil(t, scc.Largest(g))
}
