package partition

import "errors"

// Sentinel errors returned by New and Run.
var (
	// ErrNilSimilarity is returned when a nil Similarity function is supplied.
	ErrNilSimilarity = errors.New("partition: similarity function is nil")

	// ErrBadPartitionCount is returned when Partitions is not positive.
	ErrBadPartitionCount = errors.New("partition: partitions must be >= 1")

	// ErrBadIterations is returned when Iterations is negative.
	ErrBadIterations = errors.New("partition: iterations must be >= 0")

	// ErrBadImbalance is returned when Imbalance is less than 1.
	ErrBadImbalance = errors.New("partition: imbalance must be >= 1")
)

// Options configures a Partitioner.
type Options struct {
	// Partitions is P, the number of shards/medoids. Must be >= 1.
	Partitions int

	// Iterations is the number of k-medoids refinement passes. Default 5.
	Iterations int

	// Imbalance is the per-shard capacity multiplier alpha. Default 1.05.
	Imbalance float64

	// Seed drives the initial medoid sample and every tie-break random
	// choice. Two Partitioners built with the same Seed and fed the same
	// tuples in the same order produce identical partitions. Default 1,
	// not 0, so a caller that forgets to set it still gets a fixed,
	// reproducible sequence rather than accidentally depending on
	// math/rand's global default seed.
	Seed int64
}

// Option is a functional option for Options.
type Option func(*Options)

// WithIterations overrides the default iteration count (5). Panics if
// iterations is negative.
func WithIterations(iterations int) Option {
	if iterations < 0 {
		panic(ErrBadIterations.Error())
	}

	return func(o *Options) { o.Iterations = iterations }
}

// WithImbalance overrides the default capacity multiplier (1.05). Panics
// if imbalance is less than 1.
func WithImbalance(imbalance float64) Option {
	if imbalance < 1 {
		panic(ErrBadImbalance.Error())
	}

	return func(o *Options) { o.Imbalance = imbalance }
}

// WithSeed overrides the default random seed (1). Two runs built with the
// same seed and fed tuples in the same order are reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns Options with partitions shards and the spec's
// documented defaults (5 iterations, 1.05 imbalance, seed 1).
func DefaultOptions(partitions int) Options {
	return Options{
		Partitions: partitions,
		Iterations: 5,
		Imbalance:  1.05,
		Seed:       1,
	}
}
