package approxsearch

import (
	"errors"

	"github.com/katalvlaran/nnshard/localgraph"
)

// Sentinel errors.
var (
	// ErrNilSimilarity is returned when a nil Similarity function is supplied.
	ErrNilSimilarity = errors.New("approxsearch: similarity function is nil")

	// ErrBadK is returned when k is not positive.
	ErrBadK = errors.New("approxsearch: k must be >= 1")
)

// Options configures Search's traversal budget. Zero-value fields are
// filled in by DefaultOptions before use.
type Options struct {
	// MaxSimilarities caps the total number of similarity computations
	// across every shard combined; each shard receives an equal share,
	// MaxSimilarities / NumPartitions.
	MaxSimilarities int

	// Depth bounds the number of hops the greedy walk takes per shard, per
	// localgraph.SearchOptions.Depth. Default 100.
	Depth int

	// Expansion scales how many distinct starting nodes each shard's walk
	// samples, per localgraph.SearchOptions.Expansion. Default 1.01.
	Expansion float64
}

// DefaultOptions mirrors localgraph.DefaultSearchOptions' defaults.
func DefaultOptions() Options {
	base := localgraph.DefaultSearchOptions()

	return Options{
		MaxSimilarities: base.MaxSimilarities,
		Depth:           base.Depth,
		Expansion:       base.Expansion,
	}
}
