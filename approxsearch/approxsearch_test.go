package approxsearch_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/nnshard/approxsearch"
	"github.com/katalvlaran/nnshard/distgraph"
	"github.com/katalvlaran/nnshard/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vec2 struct{ x, y float64 }

func l2sim(a, b vec2) float64 {
	dx, dy := a.x-b.x, a.y-b.y

	return 1 / (1 + math.Sqrt(dx*dx+dy*dy))
}

func gridTuples(n int) []distgraph.Tuple[vec2] {
	out := make([]distgraph.Tuple[vec2], 0, n)
	for i := 0; i < n; i++ {
		id := node.NodeID(rune('a' + i))
		v := vec2{float64(i), float64(i % 3)}
		nd := node.New(id, v)
		out = append(out, distgraph.Tuple[vec2]{Node: nd, Neighbors: node.NewNeighborList(4)})
	}

	return out
}

func TestNew_PartitionsAndCachesGraph(t *testing.T) {
	as, err := approxsearch.New(context.Background(), gridTuples(20), 4, 3, 2, l2sim)
	require.NoError(t, err)
	assert.Equal(t, 3, as.Graph().NumPartitions())
}

func TestSearch_ReturnsBoundedResult(t *testing.T) {
	as, err := approxsearch.New(context.Background(), gridTuples(20), 4, 3, 2, l2sim)
	require.NoError(t, err)

	result, err := as.Search(context.Background(), vec2{10, 1}, 4, 1000)
	require.NoError(t, err)
	assert.LessOrEqual(t, result.Size(), 4)
}

func TestSearch_BudgetBelowPartitionCountReturnsEmpty(t *testing.T) {
	as, err := approxsearch.New(context.Background(), gridTuples(20), 4, 3, 2, l2sim)
	require.NoError(t, err)

	// maxSimilarities < NumPartitions rounds each shard's per-partition
	// budget down to 0, so every partial search is empty and so is the
	// merged result.
	result, err := as.Search(context.Background(), vec2{10, 1}, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Size())
}

func TestSearch_EmptyGraphReturnsEmpty(t *testing.T) {
	as, err := approxsearch.New(context.Background(), nil, 4, 3, 2, l2sim)
	require.NoError(t, err)

	result, err := as.Search(context.Background(), vec2{0, 0}, 4, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Size())
}

func TestAssign_PrefersUnderfullPartition(t *testing.T) {
	as, err := approxsearch.New(context.Background(), gridTuples(6), 2, 2, 1, l2sim)
	require.NoError(t, err)

	medoids := []vec2{{0, 0}, {0, 0}}
	sizes := []int{0, 100}

	part := as.Assign(vec2{0, 0}, medoids, sizes)
	assert.Equal(t, int32(0), part)
}

func TestNew_RejectsNilSimilarity(t *testing.T) {
	_, err := approxsearch.New[vec2](context.Background(), nil, 4, 2, 1, nil)
	assert.ErrorIs(t, err, approxsearch.ErrNilSimilarity)
}

func TestNew_RejectsBadK(t *testing.T) {
	_, err := approxsearch.New(context.Background(), gridTuples(4), 0, 2, 1, l2sim)
	assert.ErrorIs(t, err, approxsearch.ErrBadK)
}
