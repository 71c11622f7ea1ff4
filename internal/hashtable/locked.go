package hashtable

import (
	"io"
	"sync"
)

// Locked is a Table guarded by a read/write mutex.
type Locked[K comparable, V any] struct {
	mu    sync.RWMutex
	table *Table[K, V]
}

// NewLocked creates a Locked table with size buckets.
func NewLocked[K comparable, V any](size int, opts ...Option[K]) (*Locked[K, V], error) {
	t, err := New[K, V](size, opts...)
	if err != nil {
		return nil, err
	}
	return &Locked[K, V]{table: t}, nil
}

// Insert stores value under key.
func (l *Locked[K, V]) Insert(key K, value V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.table.Insert(key, value)
}

// Search returns the value stored under key.
func (l *Locked[K, V]) Search(key K) (V, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.table.Search(key)
}

// Delete removes key and reports whether it was present.
func (l *Locked[K, V]) Delete(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.table.Delete(key)
}

// Len returns the number of stored entries.
func (l *Locked[K, V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.table.Len()
}

// Display writes the bucket listing while holding the read lock.
func (l *Locked[K, V]) Display(w io.Writer) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.table.Display(w)
}
