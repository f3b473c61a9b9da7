package partition

import "math/rand"

// AssignOne scores value against every medoid value under sim, discounted
// by how full that medoid's bucket already is relative to capacity, and
// returns the winning partition index.
//
// score[p] = sim(value, medoids[p]) * (1 - used[p]/capacity)
//
// Ties (including the all-negative case once every bucket is over
// capacity — the score formula is allowed to go negative, and argmax over
// negative scores still picks the least-negative one, which is the
// intended overflow-redirect behavior) are broken uniformly at random via
// rng. capacity <= 0 is treated as "no discount" (every used[p]/capacity
// term is skipped) so a caller that does not yet have a meaningful
// capacity figure (e.g. an empty shard) still gets a similarity-only
// ranking instead of a divide-by-zero.
func AssignOne[T any](sim func(a, b T) float64, value T, medoids []T, used []int, capacity float64, rng *rand.Rand) int32 {
	var (
		best     = -1
		bestScr  = 0.0
		tiesWith []int
	)
	for p, medoid := range medoids {
		score := sim(value, medoid)
		if capacity > 0 {
			score *= 1 - float64(used[p])/capacity
		}
		switch {
		case best == -1 || score > bestScr:
			best = p
			bestScr = score
			tiesWith = tiesWith[:0]
			tiesWith = append(tiesWith, p)
		case score == bestScr:
			tiesWith = append(tiesWith, p)
		}
	}

	if len(tiesWith) > 1 {
		best = tiesWith[rng.Intn(len(tiesWith))]
	}

	return int32(best)
}
