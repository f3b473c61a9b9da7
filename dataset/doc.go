// Package dataset generates synthetic point clouds for exercising the
// partitioner and search paths: Gaussian mixture clusters in R^d (seeded,
// reproducible) and a deterministic grid fixture, in the teacher's own
// functional-options/seeded-RNG idiom (builder.BuilderOption,
// builder.newBuilderConfig) rather than its graph-topology generators —
// this module's inputs are point clouds under a similarity function, not
// combinatorial graph shapes.
package dataset
