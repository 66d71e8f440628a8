package concurrent

import (
	"context"
	"errors"
	"fmt"
	"hash/maphash"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/memo_ive_go/internal/partition"
	"github.com/on-the-ground/memo_ive_go/internal/timing"
	"github.com/on-the-ground/memo_ive_go/memo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrComputationPanicked is returned to callers that were waiting on a
// computation which panicked or exited its goroutine.
var ErrComputationPanicked = errors.New("computation panicked")

// Partitionable keys pick their shard by PartitionKey instead of by value.
type Partitionable = partition.Partitionable

// Cache is a memoizing cache safe for concurrent use.
type Cache[K comparable, V any] struct {
	id      string
	compute memo.FallibleComputation[K, V]
	shards  []*shard[K, V]
	seed    maphash.Seed
	size    atomic.Int64
	logger  *zap.Logger
}

// New returns an empty cache owning compute. It panics if compute is nil.
// A zero Config is valid.
func New[K comparable, V any](compute memo.FallibleComputation[K, V], config Config) *Cache[K, V] {
	if compute == nil {
		panic("concurrent: nil computation")
	}
	config = config.normalized()
	shards := make([]*shard[K, V], config.NumShards)
	for i := range shards {
		shards[i] = newShard[K, V]()
	}
	c := &Cache[K, V]{
		id:      uuid.New().String(),
		compute: compute,
		shards:  shards,
		seed:    maphash.MakeSeed(),
		logger:  config.Logger,
	}
	c.logger.Debug("created memo cache", zap.String("cacheId", c.id), zap.Int("shards", len(shards)))
	return c
}

// ID identifies the cache instance in logs.
func (c *Cache[K, V]) ID() string {
	return c.id
}

// GetOrCompute returns the cached value for key, computing it if no other
// caller already is. Callers that find a computation in flight wait for it.
// ctx only bounds that wait. The computation itself is never cancelled.
//
// A failed computation is not cached. Its error goes to the caller that ran
// it and to everyone who was waiting on it. A panic is re-raised in the
// goroutine that ran the computation, and waiters receive an error wrapping
// ErrComputationPanicked.
func (c *Cache[K, V]) GetOrCompute(ctx context.Context, key K) (V, error) {
	s := c.shardOf(key)
	if e, ok := s.lookup(key); ok {
		return e.wait(ctx)
	}
	e, owner := s.claim(key)
	if !owner {
		return e.wait(ctx)
	}
	return c.fill(s, key, e)
}

// Len returns the number of cached entries. Keys still computing are not
// counted.
func (c *Cache[K, V]) Len() int {
	return int(c.size.Load())
}

func (c *Cache[K, V]) shardOf(key K) *shard[K, V] {
	return c.shards[partition.IndexOf(c.seed, key, len(c.shards))]
}

func (c *Cache[K, V]) fill(s *shard[K, V], key K, e *entry[V]) (V, error) {
	start := time.Now()
	returned := false
	defer func() {
		if returned {
			return
		}
		// Either a panic or runtime.Goexit; recover returns nil for the latter.
		r := recover()
		if r != nil {
			e.err = fmt.Errorf("%w: %v", ErrComputationPanicked, r)
		} else {
			e.err = fmt.Errorf("%w: goroutine exited", ErrComputationPanicked)
		}
		s.forget(key, e)
		close(e.ready)
		c.logger.Warn("computation panicked, key released for retry",
			append(timing.Fields(timing.Since(start)),
				zap.String("cacheId", c.id),
				zap.Any("key", key),
				zap.Any("panic", r),
			)...,
		)
		if r != nil {
			panic(r)
		}
	}()

	v, err := c.compute(key)
	returned = true
	span := timing.Since(start)

	if err != nil {
		e.err = err
		s.forget(key, e)
		close(e.ready)
		if ce := c.logger.Check(zapcore.DebugLevel, "computation failed, result not cached"); ce != nil {
			ce.Write(append(timing.Fields(span), zap.String("cacheId", c.id), zap.Any("key", key), zap.Error(err))...)
		}
		var zero V
		return zero, err
	}

	e.value = v
	close(e.ready)
	size := c.size.Add(1)
	if ce := c.logger.Check(zapcore.DebugLevel, "computed and cached"); ce != nil {
		ce.Write(append(timing.Fields(span), zap.String("cacheId", c.id), zap.Any("key", key), zap.Int64("entries", size))...)
	}
	return v, nil
}
