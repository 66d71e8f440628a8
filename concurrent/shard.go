package concurrent

import (
	"context"
	"sync"
	"sync/atomic"
)

// entry is the per-key slot. ready is closed once value or err is final.
// waiters counts callers blocked on ready.
type entry[V any] struct {
	ready   chan struct{}
	value   V
	err     error
	waiters atomic.Int32
}

func newEntry[V any]() *entry[V] {
	return &entry[V]{ready: make(chan struct{})}
}

func (e *entry[V]) wait(ctx context.Context) (V, error) {
	select {
	case <-e.ready:
		return e.value, e.err
	default:
	}

	e.waiters.Add(1)
	defer e.waiters.Add(-1)
	select {
	case <-e.ready:
		return e.value, e.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*entry[V]
}

func newShard[K comparable, V any]() *shard[K, V] {
	return &shard[K, V]{entries: make(map[K]*entry[V])}
}

func (s *shard[K, V]) lookup(key K) (*entry[V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	return e, ok
}

// claim returns the entry for key, creating it when absent. owner reports
// whether the caller created it and must therefore fill it.
func (s *shard[K, V]) claim(key K) (e *entry[V], owner bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok {
		return e, false
	}
	e = newEntry[V]()
	s.entries[key] = e
	return e, true
}

// forget drops key so the next caller starts over.
func (s *shard[K, V]) forget(key K, e *entry[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries[key] == e {
		delete(s.entries, key)
	}
}
