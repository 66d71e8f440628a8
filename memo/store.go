package memo

// store is the key to value table behind a cache. It only grows.
type store[K comparable, V any] struct {
	entries map[K]V
}

func newStore[K comparable, V any]() store[K, V] {
	return store[K, V]{entries: make(map[K]V)}
}

func (s store[K, V]) load(key K) (V, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// insert adds key unless it is already present. Existing entries are never
// overwritten.
func (s store[K, V]) insert(key K, value V) bool {
	if _, ok := s.entries[key]; ok {
		return false
	}
	s.entries[key] = value
	return true
}

func (s store[K, V]) len() int {
	return len(s.entries)
}
