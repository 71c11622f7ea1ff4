// Package hashtable implements a fixed-size hash table with separate
// chaining.
//
// # Overview
//
// A Table holds a fixed number of buckets chosen at construction (10 by
// default). A key is placed in bucket hash(key) mod size. Each bucket keeps
// its entries in insertion order, and a lookup scans the bucket linearly:
//
//	Bucket 0: [name: Alice]
//	Bucket 1: []
//	...
//	Bucket 4: [age: 25]
//	...
//
// Re-inserting an existing key overwrites its value in place, so the entry
// keeps its position in the bucket.
//
// The bucket count never changes. Under heavy collision a bucket grows
// without bound and operations degrade to O(n).
//
// # Hashing
//
// The default hasher uses hash/maphash with a seed drawn per table, so
// bucket placement is stable for the lifetime of one table but differs
// between tables. Use WithHasher(StringHasher) for string keys when
// placement must be reproducible, for example in snapshots.
//
// # Concurrency
//
// Table is not safe for concurrent use. Locked wraps a Table with a
// sync.RWMutex for callers that share one across goroutines.
package hashtable
