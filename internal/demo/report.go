package demo

// Probe is the outcome of a boolean trie query.
type Probe struct {
	Query  string
	Result bool
}

// TrieReport records the trie step.
type TrieReport struct {
	Words    []string
	Searches []Probe
	Prefixes []Probe
}

// HeapReport records the heap step.
type HeapReport struct {
	// Snapshots holds the heap layout after each insertion.
	Snapshots [][]int
	Min       int
	Extracted int
	// ExtractOK is false when the heap was empty at extraction.
	ExtractOK  bool
	After      []int
	MinAfter   int
	MinAfterOK bool
}

// Lookup is the outcome of a hash table search.
type Lookup struct {
	Key   string
	Value any
	Found bool
}

// Deletion is the outcome of a hash table delete followed by a search for
// the same key.
type Deletion struct {
	Key        string
	Deleted    bool
	FoundAfter bool
}

// TableReport records the hash table step.
type TableReport struct {
	Buckets   int
	Before    string
	Lookups   []Lookup
	Deletions []Deletion
	After     string
}

// Report is the full result of a demonstration run.
type Report struct {
	RunID string
	Trie  TrieReport
	Heap  HeapReport
	Table TableReport
}
