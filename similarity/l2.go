package similarity

import "math"

// L2 converts Euclidean distance between equal-length vectors a and b into
// a similarity score via 1 / (1 + ‖a-b‖₂), the exact transform the scenario
// this module's dataset-generator tests are built around calls for:
// distance 0 yields similarity 1, similarity falls off monotonically as
// distance grows, and the result is always in (0, 1]. a and b of differing
// length yield 0 rather than panicking, since a mismatched pair has no
// well-defined distance.
func L2(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var sumSq float64
	for i := range a {
		d := a[i] - b[i]
		sumSq += d * d
	}

	return 1 / (1 + math.Sqrt(sumSq))
}
