// Package concurrent provides a memoizing cache that many goroutines can share.
//
// Cache guarantees at most one computation in flight per key across all
// callers. The first caller for a key runs the computation. Later callers for
// the same key wait for that result, or give up when their context is done.
// Callers for different keys only meet on a short per-shard lock.
//
// A key moves through three states: unseen, computing and cached. Cached is
// terminal. A computation that fails or panics sends the key back to unseen,
// so the next caller retries instead of blocking forever.
//
// Keys follow the same rules as in package memo: equality must be stable for
// the cache's lifetime, and self-unequal keys such as NaN never hit.
package concurrent
