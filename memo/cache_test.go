package memo_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/on-the-ground/memo_ive_go/internal/testlog"
	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_IdentityWithCounter(t *testing.T) {
	count := 0
	cache := memo.New(func(n int) int {
		count++
		return n
	}, memo.WithLogger(testlog.New()))

	assert.Equal(t, 7, cache.GetOrCompute(7))
	assert.Equal(t, 1, count)

	assert.Equal(t, 7, cache.GetOrCompute(7)) // cached
	assert.Equal(t, 1, count)

	assert.Equal(t, 3, cache.GetOrCompute(3))
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, cache.Len())
}

func TestCache_DistinctKeysSameOutput(t *testing.T) {
	count := 0
	cache := memo.New(func(int) int {
		count++
		return 0
	})

	for _, k := range []int{1, 2, 3} {
		assert.Equal(t, 0, cache.GetOrCompute(k))
	}
	assert.Equal(t, 3, count)
	assert.Equal(t, 3, cache.Len())
}

func TestCache_SingleComputationPerKey(t *testing.T) {
	calls := map[string]int{}
	cache := memo.New(func(s string) int {
		calls[s]++
		return len(s)
	})

	keys := []string{"a", "bb", "ccc"}
	for i := 0; i < 50; i++ {
		for _, k := range keys {
			assert.Equal(t, len(k), cache.GetOrCompute(k))
		}
	}
	for _, k := range keys {
		assert.Equal(t, 1, calls[k], "key %q", k)
	}
}

func TestCache_Independence(t *testing.T) {
	calls := map[int]int{}
	cache := memo.New(func(n int) int {
		calls[n]++
		return n * 10
	})

	cache.GetOrCompute(1)
	cache.GetOrCompute(1)
	assert.Equal(t, 0, calls[2])
	assert.Equal(t, 1, cache.Len())

	cache.GetOrCompute(2)
	assert.Equal(t, 1, calls[1])
	assert.Equal(t, 1, calls[2])
}

func TestCache_EmptyCache(t *testing.T) {
	count := 0
	cache := memo.New(func(n int) int {
		count++
		return n
	})
	assert.Equal(t, 0, cache.Len())

	cache.GetOrCompute(42)
	assert.Equal(t, 1, count, "first call is always a miss")
}

func TestCache_NilComputationPanics(t *testing.T) {
	assert.Panics(t, func() {
		memo.New[int, int](nil)
	})
}

func TestCache_RecursiveComputation(t *testing.T) {
	count := 0
	var fib *memo.Cache[int, int]
	fib = memo.New(func(n int) int {
		count++
		if n <= 1 {
			return n
		}
		return fib.GetOrCompute(n-1) + fib.GetOrCompute(n-2)
	})

	assert.Equal(t, 6765, fib.GetOrCompute(20))
	assert.Equal(t, 21, count)
	assert.Equal(t, 21, fib.Len())
}

type point struct {
	X, Y int
}

func roundTrip[K comparable, V any](t *testing.T, keys []K, fn func(K) V) {
	t.Helper()
	count := 0
	cache := memo.New(func(k K) V {
		count++
		return fn(k)
	})

	distinct := map[K]struct{}{}
	for _, k := range keys {
		missed := cache.GetOrCompute(k)
		hit := cache.GetOrCompute(k)
		require.Equal(t, missed, hit)
		require.Equal(t, fn(k), hit)
		distinct[k] = struct{}{}
	}
	assert.Equal(t, len(distinct), count)
	assert.Equal(t, len(distinct), cache.Len())
}

func TestCache_RoundTripRandomized(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	ints := make([]int, 500)
	for i := range ints {
		ints[i] = r.IntN(100)
	}
	roundTrip(t, ints, func(n int) int { return n*n - 3 })

	strs := make([]string, 300)
	for i := range strs {
		strs[i] = fmt.Sprintf("k-%d", r.IntN(50))
	}
	roundTrip(t, strs, func(s string) string { return s + "!" })

	points := make([]point, 300)
	for i := range points {
		points[i] = point{X: r.IntN(10), Y: r.IntN(10)}
	}
	roundTrip(t, points, func(p point) float64 { return float64(p.X) / float64(p.Y+1) })
}

func TestCache_StructKeyIsCopiedOnInsert(t *testing.T) {
	count := 0
	cache := memo.New(func(p point) int {
		count++
		return p.X + p.Y
	})

	key := point{X: 1, Y: 2}
	assert.Equal(t, 3, cache.GetOrCompute(key))

	key.X = 10 // mutating the caller's copy does not touch the stored key
	assert.Equal(t, 12, cache.GetOrCompute(key))
	assert.Equal(t, 3, cache.GetOrCompute(point{X: 1, Y: 2}))
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, cache.Len())
}

func TestCache_PointerKeysCompareByIdentity(t *testing.T) {
	count := 0
	cache := memo.New(func(p *point) int {
		count++
		return p.X
	})

	a := &point{X: 1}
	b := &point{X: 1}
	assert.Equal(t, 1, cache.GetOrCompute(a))
	assert.Equal(t, 1, cache.GetOrCompute(b))
	assert.Equal(t, 2, count, "equal pointees behind distinct pointers are distinct keys")

	a.X = 5
	assert.Equal(t, 1, cache.GetOrCompute(a), "stored value is kept after the pointee changes")
	assert.Equal(t, 2, count)
}

func TestCache_NaNKeyNeverHits(t *testing.T) {
	count := 0
	cache := memo.New(func(f float64) float64 {
		count++
		return f
	})

	for i := 0; i < 5; i++ {
		assert.True(t, math.IsNaN(cache.GetOrCompute(math.NaN())))
	}
	assert.Equal(t, 5, count)
	assert.Equal(t, 5, cache.Len())
}
