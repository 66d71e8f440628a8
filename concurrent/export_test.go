package concurrent

// WaitersOf reports how many callers are blocked on the computation for key.
func WaitersOf[K comparable, V any](c *Cache[K, V], key K) int {
	e, ok := c.shardOf(key).lookup(key)
	if !ok {
		return 0
	}
	return int(e.waiters.Load())
}
