package dataset_test

import (
	"testing"

	"github.com/katalvlaran/nnshard/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaussian_GeneratesRequestedSize(t *testing.T) {
	points := dataset.Gaussian(3, 4, 200, dataset.MediumOverlap, 1)
	assert.Len(t, points, 200)
	for _, p := range points {
		require.Len(t, p.Value, 3)
	}
}

func TestGaussian_IsReproducibleForAFixedSeed(t *testing.T) {
	a := dataset.Gaussian(2, 3, 50, dataset.LowOverlap, 42)
	b := dataset.Gaussian(2, 3, 50, dataset.LowOverlap, 42)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Value, b[i].Value)
	}
}

func TestGaussian_HighOverlapClustersAreCloserThanLowOverlap(t *testing.T) {
	low := dataset.Gaussian(2, 2, 2, dataset.LowOverlap, 7)
	high := dataset.Gaussian(2, 2, 2, dataset.HighOverlap, 7)

	lowDist := dist(low[0].Value, low[1].Value)
	highDist := dist(high[0].Value, high[1].Value)

	assert.Greater(t, lowDist, highDist)
}

func dist(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum
}

func TestGrid_ProducesRowMajorCoordinates(t *testing.T) {
	points := dataset.Grid(2, 3)
	require.Len(t, points, 6)
	assert.Equal(t, "0,0", string(points[0].ID))
	assert.Equal(t, "1,2", string(points[5].ID))
	assert.Equal(t, []float64{1, 2}, points[5].Value)
}

func TestGrid_IsDeterministic(t *testing.T) {
	a := dataset.Grid(3, 3)
	b := dataset.Grid(3, 3)
	assert.Equal(t, a, b)
}
