package hashtable

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultSize is the bucket count used by NewDefault.
const DefaultSize = 10

// Table errors.
var (
	ErrInvalidSize = errors.New("bucket count must be positive")
)

// Entry is a key/value pair stored in a bucket.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// String formats the entry as "key: value".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}

// Table is a hash table with a fixed number of chained buckets.
type Table[K comparable, V any] struct {
	buckets [][]Entry[K, V]
	hash    Hasher[K]
	count   int
}

// New creates a Table with size buckets.
func New[K comparable, V any](size int, opts ...Option[K]) (*Table[K, V], error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	o := options[K]{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasher == nil {
		o.hasher = seededHasher[K]()
	}

	return &Table[K, V]{
		buckets: make([][]Entry[K, V], size),
		hash:    o.hasher,
	}, nil
}

// NewDefault creates a Table with DefaultSize buckets.
func NewDefault[K comparable, V any](opts ...Option[K]) *Table[K, V] {
	t, _ := New[K, V](DefaultSize, opts...)
	return t
}

// BucketIndex returns the bucket that key maps to.
func (t *Table[K, V]) BucketIndex(key K) int {
	return int(t.hash(key) % uint64(len(t.buckets)))
}

// Insert stores value under key. An existing key has its value replaced
// in place; a new key is appended to the end of its bucket.
func (t *Table[K, V]) Insert(key K, value V) {
	idx := t.BucketIndex(key)
	bucket := t.buckets[idx]
	for i := range bucket {
		if bucket[i].Key == key {
			bucket[i].Value = value
			return
		}
	}
	t.buckets[idx] = append(bucket, Entry[K, V]{Key: key, Value: value})
	t.count++
}

// Search returns the value stored under key.
// It returns the zero value and false if the key is absent.
func (t *Table[K, V]) Search(key K) (V, bool) {
	for _, e := range t.buckets[t.BucketIndex(key)] {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes key and reports whether it was present.
// Deleting an absent key changes nothing.
func (t *Table[K, V]) Delete(key K) bool {
	idx := t.BucketIndex(key)
	bucket := t.buckets[idx]
	for i := range bucket {
		if bucket[i].Key == key {
			copy(bucket[i:], bucket[i+1:])
			bucket[len(bucket)-1] = Entry[K, V]{}
			t.buckets[idx] = bucket[:len(bucket)-1]
			t.count--
			return true
		}
	}
	return false
}

// Size returns the fixed number of buckets.
func (t *Table[K, V]) Size() int {
	return len(t.buckets)
}

// Len returns the number of stored entries.
func (t *Table[K, V]) Len() int {
	return t.count
}

// BucketLen returns the number of entries in bucket i.
// It returns 0 for an out-of-range index.
func (t *Table[K, V]) BucketLen(i int) int {
	if i < 0 || i >= len(t.buckets) {
		return 0
	}
	return len(t.buckets[i])
}

// Bucket returns a copy of the entries in bucket i, in insertion order.
// It returns nil for an out-of-range index.
func (t *Table[K, V]) Bucket(i int) []Entry[K, V] {
	if i < 0 || i >= len(t.buckets) {
		return nil
	}
	out := make([]Entry[K, V], len(t.buckets[i]))
	copy(out, t.buckets[i])
	return out
}

// Keys returns all keys in bucket order, then insertion order within a
// bucket.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// Display writes one line per bucket listing its entries:
//
//	Bucket 0: [name: Alice]
//	Bucket 1: []
func (t *Table[K, V]) Display(w io.Writer) error {
	for i, bucket := range t.buckets {
		if _, err := fmt.Fprintf(w, "Bucket %d: %s\n", i, formatBucket(bucket)); err != nil {
			return err
		}
	}
	return nil
}

// String returns the Display listing.
func (t *Table[K, V]) String() string {
	var sb strings.Builder
	_ = t.Display(&sb)
	return sb.String()
}

func formatBucket[K comparable, V any](bucket []Entry[K, V]) string {
	parts := make([]string, len(bucket))
	for i, e := range bucket {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
