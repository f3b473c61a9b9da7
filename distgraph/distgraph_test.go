package distgraph_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/nnshard/distgraph"
	"github.com/katalvlaran/nnshard/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constSim(a, b int) float64 { return 1 }

func sampleTuples() []distgraph.Tuple[int] {
	mk := func(id string, partition int32) distgraph.Tuple[int] {
		n := node.New(node.NodeID(id), 0)
		n.Partition = partition
		nl := node.NewNeighborList(2)

		return distgraph.Tuple[int]{Node: n, Neighbors: nl}
	}

	return []distgraph.Tuple[int]{
		mk("a", 0), mk("b", 0), mk("c", 1), mk("d", 1), mk("e", 1),
	}
}

func TestNewFromEdgeTable_ShardsByPartitionField(t *testing.T) {
	dg, err := distgraph.NewFromEdgeTable(sampleTuples(), 2, node.Similarity[int](constSim))
	require.NoError(t, err)
	assert.Equal(t, 2, dg.NumPartitions())

	graphs, err := dg.Subgraphs(context.Background())
	require.NoError(t, err)
	require.Len(t, graphs, 2)
	assert.Equal(t, 2, graphs[0].Len())
	assert.Equal(t, 3, graphs[1].Len())
}

func TestEdgeTable_RoundTripsThroughSubgraphs(t *testing.T) {
	tuples := sampleTuples()
	dg, err := distgraph.NewFromEdgeTable(tuples, 2, node.Similarity[int](constSim))
	require.NoError(t, err)

	graphs, err := dg.Subgraphs(context.Background())
	require.NoError(t, err)

	rebuilt, err := distgraph.FromSubgraphs(graphs, node.Similarity[int](constSim))
	require.NoError(t, err)

	got, err := rebuilt.EdgeTable(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, len(tuples))

	ids := make(map[node.NodeID]bool, len(got))
	for _, tup := range got {
		ids[tup.Node.ID] = true
	}
	for _, tup := range tuples {
		assert.True(t, ids[tup.Node.ID], "missing node %s after round trip", tup.Node.ID)
	}
}

func TestNewFromEdgeTable_RejectsNilSimilarity(t *testing.T) {
	_, err := distgraph.NewFromEdgeTable[int](nil, 2, nil)
	assert.ErrorIs(t, err, distgraph.ErrNilSimilarity)
}

func TestNewFromEdgeTable_RejectsBadPartitionCount(t *testing.T) {
	_, err := distgraph.NewFromEdgeTable(sampleTuples(), 0, node.Similarity[int](constSim))
	assert.ErrorIs(t, err, distgraph.ErrBadPartitionCount)
}

func TestSubgraphs_MutatingAReturnedGraphDoesNotAliasTheEdgeTable(t *testing.T) {
	tuples := sampleTuples()
	dg, err := distgraph.NewFromEdgeTable(tuples, 2, node.Similarity[int](constSim))
	require.NoError(t, err)

	graphs, err := dg.Subgraphs(context.Background())
	require.NoError(t, err)

	nl, ok := graphs[0].Neighbors("a")
	require.True(t, ok)
	nl.Add(node.Neighbor{ID: "z", Similarity: 0.9})

	before, err := dg.EdgeTable(context.Background())
	require.NoError(t, err)
	for _, tup := range before {
		if tup.Node.ID == "a" {
			assert.False(t, tup.Neighbors.ContainsNode("z"),
				"mutating a materialized subgraph's NeighborList must not leak into the source edge table")
		}
	}
}

func TestCheckpoint_IsIndependentOfTheSourceGraph(t *testing.T) {
	tuples := sampleTuples()
	dg, err := distgraph.NewFromEdgeTable(tuples, 2, node.Similarity[int](constSim))
	require.NoError(t, err)

	snapshot, err := dg.Checkpoint(context.Background())
	require.NoError(t, err)

	graphs, err := dg.Subgraphs(context.Background())
	require.NoError(t, err)
	nl, ok := graphs[0].Neighbors("a")
	require.True(t, ok)
	nl.Add(node.Neighbor{ID: "z", Similarity: 0.9})
	rebuilt, err := distgraph.FromSubgraphs(graphs, node.Similarity[int](constSim))
	require.NoError(t, err)
	_ = rebuilt

	snapshotTuples, err := snapshot.EdgeTable(context.Background())
	require.NoError(t, err)
	for _, tup := range snapshotTuples {
		if tup.Node.ID == "a" {
			assert.False(t, tup.Neighbors.ContainsNode("z"),
				"a Checkpoint taken before a later mutation must not observe it")
		}
	}
}
