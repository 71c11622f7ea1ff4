package hashtable

import (
	"hash/fnv"
	"hash/maphash"
)

// Hasher maps a key to a 64-bit hash. It must be deterministic for the
// lifetime of the table that uses it.
type Hasher[K comparable] func(key K) uint64

// Option configures a Table.
type Option[K comparable] func(*options[K])

type options[K comparable] struct {
	hasher Hasher[K]
}

// WithHasher installs a custom hash function.
func WithHasher[K comparable](h Hasher[K]) Option[K] {
	return func(o *options[K]) {
		if h != nil {
			o.hasher = h
		}
	}
}

// seededHasher returns a maphash-based hasher with a fresh random seed.
func seededHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// StringHasher hashes a string with 64-bit FNV-1a. The result is the same
// in every process.
func StringHasher(key string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return h.Sum64()
}
