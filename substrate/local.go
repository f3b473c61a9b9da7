package substrate

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxConcurrency bounds how many shards Local runs at once when no
// explicit limit is configured. 0 (the zero value of errgroup's SetLimit)
// would mean "no limit at all" in errgroup's own API, which is not what we
// want as a silent default — so Local always sets an explicit cap.
const DefaultMaxConcurrency = 8

// Option configures a Local collection.
type Option func(*localConfig)

type localConfig struct {
	maxConcurrency int
}

// WithMaxConcurrency bounds the number of shards processed concurrently by
// MapPartitions/FlatMap/PartitionBy. Panics if n is not positive, matching
// the teacher's convention of panicking from option constructors on a
// malformed literal.
func WithMaxConcurrency(n int) Option {
	if n <= 0 {
		panic("substrate: MaxConcurrency must be positive")
	}

	return func(c *localConfig) {
		c.maxConcurrency = n
	}
}

// Local is the in-process Collection backend: a fixed number of shards,
// each a plain slice, with shard-parallel work farmed out to goroutines
// under golang.org/x/sync/errgroup and bounded by maxConcurrency.
type Local[E any] struct {
	shards []([]E)
	cfg    localConfig
	cached bool
}

// NewLocal wraps shards as a Local Collection. shards is taken by
// reference (not copied) — callers that need to keep using shards after
// construction should pass a copy.
func NewLocal[E any](shards [][]E, opts ...Option) *Local[E] {
	cfg := localConfig{maxConcurrency: DefaultMaxConcurrency}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Local[E]{shards: shards, cfg: cfg}
}

// FromSlice builds a Local Collection with numPartitions shards by routing
// each element of items through keyFn mod numPartitions, preserving
// within-shard arrival order.
func FromSlice[E any](items []E, numPartitions int, keyFn func(E) int, opts ...Option) *Local[E] {
	shards := make([][]E, numPartitions)
	for _, item := range items {
		p := mod(keyFn(item), numPartitions)
		shards[p] = append(shards[p], item)
	}

	return NewLocal(shards, opts...)
}

func (l *Local[E]) NumPartitions() int { return len(l.shards) }

// Shards exposes the current shard slices directly. It is an escape hatch
// for callers (package distgraph's Subgraphs) that need per-shard
// boundaries rather than Collect's flattened view; the returned slice of
// slices aliases Local's own backing arrays and must not be mutated.
func (l *Local[E]) Shards() [][]E { return l.shards }

func (l *Local[E]) MapPartitions(ctx context.Context, fn func(shard []E) ([]E, error)) (Collection[E], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}

	out := make([][]E, len(l.shards))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.cfg.maxConcurrency)

	for i, shard := range l.shards {
		i, shard := i, shard
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			mapped, err := fn(shard)
			if err != nil {
				return err
			}
			out[i] = mapped

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewLocal(out, func(c *localConfig) { *c = l.cfg }), nil
}

func (l *Local[E]) FlatMap(ctx context.Context, fn func(e E) ([]E, error)) (Collection[E], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}

	return l.MapPartitions(ctx, func(shard []E) ([]E, error) {
		out := make([]E, 0, len(shard))
		for _, e := range shard {
			mapped, err := fn(e)
			if err != nil {
				return nil, err
			}
			out = append(out, mapped...)
		}

		return out, nil
	})
}

func (l *Local[E]) Collect(ctx context.Context) ([]E, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	total := 0
	for _, shard := range l.shards {
		total += len(shard)
	}
	out := make([]E, 0, total)
	for _, shard := range l.shards {
		out = append(out, shard...)
	}

	return out, nil
}

func (l *Local[E]) PartitionBy(ctx context.Context, numPartitions int, keyFn func(E) int) (Collection[E], error) {
	if keyFn == nil {
		return nil, ErrNilFunc
	}

	// per-shard bucketing runs in parallel; the sequential merge below
	// preserves each origin shard's arrival order within its bucket,
	// per spec.md §5's ordering guarantee (a).
	type buckets = [][]E
	perShard := make([]buckets, len(l.shards))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.cfg.maxConcurrency)

	for i, shard := range l.shards {
		i, shard := i, shard
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			b := make(buckets, numPartitions)
			for _, e := range shard {
				p := mod(keyFn(e), numPartitions)
				b[p] = append(b[p], e)
			}
			perShard[i] = b

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([][]E, numPartitions)
	for _, b := range perShard {
		for p, items := range b {
			merged[p] = append(merged[p], items...)
		}
	}

	return NewLocal(merged, func(c *localConfig) { *c = l.cfg }), nil
}

func (l *Local[E]) Cache() Collection[E] {
	l.cached = true

	return l
}

// Checkpoint materializes every shard into a freshly allocated slice,
// dropping any reference to whatever backing arrays earlier transforms
// built on top of — the in-process analogue of truncating a distributed
// lineage graph, since there is no real DAG here to cut.
func (l *Local[E]) Checkpoint() Collection[E] {
	fresh := make([][]E, len(l.shards))
	for i, shard := range l.shards {
		fresh[i] = append([]E(nil), shard...)
	}

	return NewLocal(fresh, func(c *localConfig) { *c = l.cfg })
}

// Release drops this Local's references to its shard slices. A released
// Local must not be used again.
func (l *Local[E]) Release() {
	l.shards = nil
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}

	return m
}
