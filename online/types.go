package online

import "errors"

// Sentinel errors.
var (
	// ErrNilSimilarity is returned when a nil Similarity function is supplied.
	ErrNilSimilarity = errors.New("online: similarity function is nil")

	// ErrBadK is returned when k is not positive.
	ErrBadK = errors.New("online: k must be >= 1")

	// ErrBadRatio is returned when a medoid update ratio is negative.
	ErrBadRatio = errors.New("online: medoid update ratio must be >= 0")

	// ErrBadSpeedup is returned when a search speedup multiplier is not
	// positive.
	ErrBadSpeedup = errors.New("online: search speedup must be >= 1")
)

// checkpointEvery is ITERATIONS_BETWEEN_CHECKPOINTS (spec.md §4.F step 6):
// the dependency lineage is materialized every 100 insertions.
const checkpointEvery = 100

// historyBound is the FIFO depth of retained previous DistributedGraph
// versions (spec.md §4.F step 7 / "State machine: lineage management").
const historyBound = 2

// updateDepth is UPDATE_DEPTH, fixed at 2 (spec.md's configuration table).
const updateDepth = 2

// removeExpandDepth is fastRemove's candidate expansion depth (spec.md §4.F
// step 3: "expand(initial, depth=3)").
const removeExpandDepth = 3

// defaultSearchSpeedup is search_speedup's default multiplier (spec.md's
// configuration table).
const defaultSearchSpeedup = 4

// defaultMedoidUpdateRatio is medoid_update_ratio's default (spec.md's
// configuration table); 0 disables medoid refresh entirely.
const defaultMedoidUpdateRatio = 0.1
