// Package memo memoizes pure computations.
//
// A Cache wraps one Computation together with an unbounded, in-memory table
// of results keyed by the computation's input. GetOrCompute answers a key
// from the table when it can and invokes the computation otherwise, so the
// computation runs at most once per distinct key for the lifetime of the
// cache.
//
// Memoization assumes purity. A Computation must be referentially
// transparent: the same key always yields an equal value, and the
// computation has no side effect a caller relies on. Do not memoize
// functions that depend on time, I/O or mutable shared state. The cache
// does not verify this.
//
// Keys must keep a stable identity while cached: equality and hashing of a
// key may not change over the cache's lifetime. Struct and array keys are
// copied into the table, so later changes to the caller's copy do not reach
// it. Pointer keys compare by address, so mutating the pointee neither finds
// nor invalidates anything. A key that is not equal to itself, such as a NaN
// float, never hits: every call computes again and adds another entry.
// Such keys are a caller error and their behavior is unspecified.
//
// Entries are never evicted, expired or updated. Drop the Cache to release
// them.
//
// FallibleCache covers computations that can fail: failures are returned to
// the caller and are not stored, so the next call for the same key retries.
// For concurrent callers see package concurrent.
//
// Example:
//
//	square := memo.New(func(n int) int { return n * n })
//	square.GetOrCompute(12) // computes
//	square.GetOrCompute(12) // hit
package memo
