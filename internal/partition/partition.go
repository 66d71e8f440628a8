package partition

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Partitionable keys choose their own shard. Equal keys must return equal
// partition keys.
type Partitionable interface {
	PartitionKey() string
}

// Hash returns a stable 64-bit hash of key for the lifetime of seed.
func Hash[K comparable](seed maphash.Seed, key K) uint64 {
	if p, ok := any(key).(Partitionable); ok {
		return xxhash.Sum64String(p.PartitionKey())
	}
	return maphash.Comparable(seed, key)
}

// IndexOf maps key onto one of numPartitions slots.
func IndexOf[K comparable](seed maphash.Seed, key K, numPartitions int) int {
	switch numPartitions {
	case 0:
		panic("number of partitions cannot be 0")
	case 1:
		return 0
	default:
		return int(Hash(seed, key) % uint64(numPartitions))
	}
}
