package memo

// Computation is a pure mapping from K to V.
type Computation[K comparable, V any] func(K) V

// FallibleComputation is a pure mapping from K to V that may fail.
// A failure must depend only on the key, or be transient.
type FallibleComputation[K comparable, V any] func(K) (V, error)

// Fallible lifts c into a FallibleComputation that never fails.
func (c Computation[K, V]) Fallible() FallibleComputation[K, V] {
	if c == nil {
		return nil
	}
	return func(key K) (V, error) {
		return c(key), nil
	}
}
