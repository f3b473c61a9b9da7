package similarity_test

import (
	"testing"

	"github.com/katalvlaran/nnshard/similarity"
	"github.com/stretchr/testify/assert"
)

func TestJaroWinkler_IdenticalStringsScoreOne(t *testing.T) {
	assert.Equal(t, 1.0, similarity.JaroWinkler("martha", "martha"))
}

func TestJaroWinkler_ClassicPair(t *testing.T) {
	got := similarity.JaroWinkler("martha", "marhta")
	assert.InDelta(t, 0.961, got, 0.005)
}

func TestJaroWinkler_EmptyStringScoresZero(t *testing.T) {
	assert.Equal(t, 0.0, similarity.JaroWinkler("", "anything"))
}

func TestL2_IdenticalVectorsScoreOne(t *testing.T) {
	assert.Equal(t, 1.0, similarity.L2([]float64{1, 2, 3}, []float64{1, 2, 3}))
}

func TestL2_FartherApartScoresLower(t *testing.T) {
	near := similarity.L2([]float64{0, 0}, []float64{1, 0})
	far := similarity.L2([]float64{0, 0}, []float64{10, 0})
	assert.Greater(t, near, far)
}

func TestL2_MismatchedLengthScoresZero(t *testing.T) {
	assert.Equal(t, 0.0, similarity.L2([]float64{1, 2}, []float64{1, 2, 3}))
}
