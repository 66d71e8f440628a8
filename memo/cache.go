package memo

// Cache memoizes a Computation.
//
// IMPORTANT:
// Cache is intentionally NOT safe for concurrent use. It is meant to be owned
// by a single goroutine and passed explicitly to whoever needs it. Use
// package concurrent when several goroutines share one table.
//
// Values are returned by copy. When V is a slice, map or pointer the copy
// still shares memory with the cached entry, and callers must treat it as
// read only.
type Cache[K comparable, V any] struct {
	fallible *FallibleCache[K, V]
}

// New returns an empty cache owning compute. It panics if compute is nil.
func New[K comparable, V any](compute Computation[K, V], opts ...Option) *Cache[K, V] {
	if compute == nil {
		panic("memo: nil computation")
	}
	return &Cache[K, V]{fallible: NewFallible(compute.Fallible(), opts...)}
}

// GetOrCompute returns the stored value for key. On the first call for key it
// invokes the computation, stores the result and returns it.
func (c *Cache[K, V]) GetOrCompute(key K) V {
	// the lifted computation never fails
	v, _ := c.fallible.GetOrCompute(key)
	return v
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return c.fallible.Len()
}
