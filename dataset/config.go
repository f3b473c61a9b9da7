package dataset

import "math/rand"

// Overlap describes how far apart Gaussian's cluster centers are relative
// to each cluster's own spread: Low separates clusters widely (near-zero
// overlap), High packs them close enough that points from different
// clusters routinely interleave.
type Overlap int

const (
	// LowOverlap spaces cluster centers far apart relative to spread.
	LowOverlap Overlap = iota
	// MediumOverlap is a middle-ground center spacing.
	MediumOverlap
	// HighOverlap packs cluster centers close together.
	HighOverlap
)

// config holds the resolved generator parameters after Options are
// applied, following builder.newBuilderConfig's "defaults then override in
// order" shape.
type config struct {
	rng *rand.Rand
	std float64
}

// Option customizes a generator's behavior by mutating config before
// points are drawn. As in the teacher's builder package, option
// constructors never panic on nil or zero inputs — they silently no-op
// instead, since a dataset generator is test/example plumbing, not a
// precondition-sensitive core algorithm.
type Option func(*config)

func newConfig(seed int64) *config {
	return &config{
		rng: rand.New(rand.NewSource(seed)),
		std: 1.0,
	}
}

// WithStdDev overrides the per-cluster standard deviation (default 1.0).
// A non-positive value is a no-op.
func WithStdDev(std float64) Option {
	return func(c *config) {
		if std > 0 {
			c.std = std
		}
	}
}
