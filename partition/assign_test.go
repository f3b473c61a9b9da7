package partition

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignOne_PicksHighestScoringMedoid(t *testing.T) {
	sim := func(a, b float64) float64 { return 1 - abs(a-b) }
	medoids := []float64{0, 10, 20}
	used := []int{0, 0, 0}

	got := AssignOne(sim, 9.5, medoids, used, 0, rand.New(rand.NewSource(1)))
	assert.Equal(t, int32(1), got)
}

func TestAssignOne_CapacityDiscountRedirectsOverfullMedoid(t *testing.T) {
	sim := func(a, b float64) float64 { return 1 - abs(a-b) }
	medoids := []float64{0, 1}
	used := []int{100, 0}

	// medoid 0 is a near-perfect match but already far over capacity;
	// medoid 1 is a worse match but has room, so it should win once the
	// discount is applied.
	got := AssignOne(sim, 0.1, medoids, used, 10, rand.New(rand.NewSource(1)))
	assert.Equal(t, int32(1), got)
}

func TestAssignOne_AllOverCapacityStillPicksLeastNegative(t *testing.T) {
	sim := func(a, b float64) float64 { return 1 }
	medoids := []float64{0, 0, 0}
	used := []int{15, 20, 30}

	got := AssignOne(sim, 0, medoids, used, 10, rand.New(rand.NewSource(1)))
	assert.Equal(t, int32(0), got, "least-overfull bucket should win even with a negative score")
}

func TestAssignOne_ZeroCapacitySkipsDiscount(t *testing.T) {
	sim := func(a, b float64) float64 { return 1 - abs(a-b) }
	medoids := []float64{0, 10}
	used := []int{1000, 0}

	got := AssignOne(sim, 1, medoids, used, 0, rand.New(rand.NewSource(1)))
	assert.Equal(t, int32(0), got, "capacity <= 0 should rank by similarity alone")
}

func TestAssignOne_TiesBreakUniformlyAtRandom(t *testing.T) {
	sim := func(a, b float64) float64 { return 1 }
	medoids := []float64{0, 0, 0}
	used := []int{0, 0, 0}

	seen := make(map[int32]bool)
	for seed := int64(0); seed < 50; seed++ {
		got := AssignOne(sim, 0, medoids, used, 0, rand.New(rand.NewSource(seed)))
		seen[got] = true
	}
	assert.Greater(t, len(seen), 1, "a three-way tie across many seeds should eventually hit more than one partition")
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
