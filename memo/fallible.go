package memo

import (
	"time"

	"github.com/on-the-ground/memo_ive_go/internal/timing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FallibleCache memoizes a FallibleComputation. Only successful results are
// stored. A failed key stays unseen and is recomputed on the next call.
//
// FallibleCache is not safe for concurrent use.
type FallibleCache[K comparable, V any] struct {
	compute FallibleComputation[K, V]
	memo    store[K, V]
	logger  *zap.Logger
}

// NewFallible returns an empty cache owning compute. It panics if compute is nil.
func NewFallible[K comparable, V any](compute FallibleComputation[K, V], opts ...Option) *FallibleCache[K, V] {
	if compute == nil {
		panic("memo: nil computation")
	}
	cfg := NewConfig(opts...)
	return &FallibleCache[K, V]{
		compute: compute,
		memo:    newStore[K, V](),
		logger:  cfg.Logger,
	}
}

// GetOrCompute returns the stored value for key, or computes and stores it.
// Errors from the computation are returned unchanged and nothing is stored.
func (c *FallibleCache[K, V]) GetOrCompute(key K) (V, error) {
	if v, ok := c.memo.load(key); ok {
		return v, nil
	}

	start := time.Now()
	v, err := c.compute(key)
	span := timing.Since(start)
	if err != nil {
		if ce := c.logger.Check(zapcore.DebugLevel, "computation failed, result not cached"); ce != nil {
			ce.Write(append(timing.Fields(span), zap.Any("key", key), zap.Error(err))...)
		}
		var zero V
		return zero, err
	}

	c.memo.insert(key, v)
	if ce := c.logger.Check(zapcore.DebugLevel, "computed and cached"); ce != nil {
		ce.Write(append(timing.Fields(span), zap.Any("key", key), zap.Int("entries", c.memo.len()))...)
	}
	return v, nil
}

// Len returns the number of cached entries.
func (c *FallibleCache[K, V]) Len() int {
	return c.memo.len()
}
