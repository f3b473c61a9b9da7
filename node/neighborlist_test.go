package node_test

import (
	"testing"

	"github.com/katalvlaran/nnshard/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighborList_AddRespectsCapacity(t *testing.T) {
	nl := node.NewNeighborList(2)

	assert.True(t, nl.Add(node.Neighbor{ID: "a", Similarity: 0.5}))
	assert.True(t, nl.Add(node.Neighbor{ID: "b", Similarity: 0.9}))
	assert.Equal(t, 2, nl.Size())

	// weaker than the current weakest (a, 0.5) -> rejected
	assert.False(t, nl.Add(node.Neighbor{ID: "c", Similarity: 0.1}))
	assert.Equal(t, 2, nl.Size())
	assert.False(t, nl.ContainsNode("c"))

	// stronger than the current weakest -> evicts "a"
	assert.True(t, nl.Add(node.Neighbor{ID: "d", Similarity: 0.7}))
	assert.Equal(t, 2, nl.Size())
	assert.False(t, nl.ContainsNode("a"))
	assert.True(t, nl.ContainsNode("d"))
}

func TestNeighborList_AddSameSimilarityDoesNotEvict(t *testing.T) {
	nl := node.NewNeighborList(1)
	require.True(t, nl.Add(node.Neighbor{ID: "a", Similarity: 0.5}))
	// exactly equal to the (only, weakest) entry: spec requires *strictly*
	// exceeding the weakest to evict.
	assert.False(t, nl.Add(node.Neighbor{ID: "b", Similarity: 0.5}))
	assert.True(t, nl.ContainsNode("a"))
}

func TestNeighborList_AddExistingKeepsMax(t *testing.T) {
	nl := node.NewNeighborList(3)
	nl.Add(node.Neighbor{ID: "a", Similarity: 0.5})

	// lower similarity for an already-present node is ignored
	assert.False(t, nl.Add(node.Neighbor{ID: "a", Similarity: 0.2}))
	assert.Equal(t, 1, nl.Size())

	// higher similarity for an already-present node updates in place
	assert.True(t, nl.Add(node.Neighbor{ID: "a", Similarity: 0.8}))
	assert.Equal(t, 1, nl.Size())
	assert.Equal(t, 0.8, nl.Neighbors()[0].Similarity)
}

func TestNeighborList_AddAllIsIdempotent(t *testing.T) {
	a := node.NewNeighborList(2)
	a.Add(node.Neighbor{ID: "x", Similarity: 0.3})

	b := node.NewNeighborList(2)
	b.Add(node.Neighbor{ID: "x", Similarity: 0.9})
	b.Add(node.Neighbor{ID: "y", Similarity: 0.6})

	a.AddAll(b)
	first := append([]node.Neighbor{}, a.Neighbors()...)

	a.AddAll(b)
	second := a.Neighbors()

	assert.Equal(t, first, second)
	assert.Equal(t, 0.9, a.Neighbors()[0].Similarity) // kept the max for "x"
}

func TestNeighborList_RemoveNode(t *testing.T) {
	nl := node.NewNeighborList(3)
	nl.Add(node.Neighbor{ID: "a", Similarity: 0.1})
	nl.Add(node.Neighbor{ID: "b", Similarity: 0.9})

	assert.True(t, nl.RemoveNode("a"))
	assert.False(t, nl.ContainsNode("a"))
	assert.Equal(t, 1, nl.Size())
	assert.False(t, nl.RemoveNode("a")) // already gone
}

func TestNeighborList_NeighborsSortedWithTieBreak(t *testing.T) {
	nl := node.NewNeighborList(4)
	nl.Add(node.Neighbor{ID: "z", Similarity: 0.5})
	nl.Add(node.Neighbor{ID: "a", Similarity: 0.5})
	nl.Add(node.Neighbor{ID: "m", Similarity: 0.9})

	got := nl.Neighbors()
	require.Len(t, got, 3)
	// descending similarity first
	assert.Equal(t, node.NodeID("m"), got[0].ID)
	// equal-similarity tie broken by ascending NodeID
	assert.Equal(t, node.NodeID("a"), got[1].ID)
	assert.Equal(t, node.NodeID("z"), got[2].ID)
}

func TestNewNeighborList_PanicsOnBadCapacity(t *testing.T) {
	assert.Panics(t, func() { node.NewNeighborList(0) })
	assert.Panics(t, func() { node.NewNeighborList(-1) })
}
