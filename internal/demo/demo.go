package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/KilimcininKorOglu/dsbox/internal/config"
	"github.com/KilimcininKorOglu/dsbox/internal/hashtable"
	"github.com/KilimcininKorOglu/dsbox/internal/heap"
	"github.com/KilimcininKorOglu/dsbox/internal/logging"
	"github.com/KilimcininKorOglu/dsbox/internal/trie"
)

// ErrInvalidConfig is returned by Run when the configuration fails
// validation.
var ErrInvalidConfig = errors.New("invalid demo configuration")

// Run executes the trie, heap and hash table demonstrations described by
// cfg, echoing progress to w.
func Run(w io.Writer, cfg *config.Config, logger logging.Logger) (*Report, error) {
	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	runID := logging.GenerateRunID()
	logger = logger.WithRunID(runID)
	report := &Report{RunID: runID}

	fmt.Fprintln(w, "=== Data Structures Demonstration ===")

	report.Trie = runTrie(w, &cfg.Demo, logger.WithFields("component", "trie"))
	report.Heap = runHeap(w, &cfg.Demo, logger.WithFields("component", "heap"))

	tr, err := runTable(w, cfg, logger.WithFields("component", "hashtable"))
	if err != nil {
		return nil, err
	}
	report.Table = tr

	logger.Info("demo complete",
		"words", len(report.Trie.Words),
		"heap_min", report.Heap.Min,
		"table_entries", len(cfg.Demo.Entries),
	)
	return report, nil
}

func runTrie(w io.Writer, dc *config.DemoConfig, logger logging.Logger) TrieReport {
	fmt.Fprintln(w, "\n--- Trie Demo ---")

	t := trie.New()
	for _, word := range dc.Words {
		t.Insert(word)
		logger.Debug("inserted word", "word", word)
	}

	rep := TrieReport{Words: append([]string(nil), dc.Words...)}
	for _, q := range dc.SearchWords {
		found := t.Search(q)
		rep.Searches = append(rep.Searches, Probe{Query: q, Result: found})
		fmt.Fprintf(w, "Search %q: %t\n", q, found)
	}
	for _, p := range dc.Prefixes {
		found := t.StartsWith(p)
		rep.Prefixes = append(rep.Prefixes, Probe{Query: p, Result: found})
		fmt.Fprintf(w, "Starts with %q: %t\n", p, found)
	}
	return rep
}

func runHeap(w io.Writer, dc *config.DemoConfig, logger logging.Logger) HeapReport {
	fmt.Fprintln(w, "\n--- Min Heap Demo ---")

	h := heap.New[int]()
	var rep HeapReport
	for _, v := range dc.HeapValues {
		h.Insert(v)
		snapshot := h.Values()
		rep.Snapshots = append(rep.Snapshots, snapshot)
		fmt.Fprintf(w, "Inserted: %d Heap: %v\n", v, snapshot)
		logger.Debug("inserted value", "value", v, "size", h.Len())
	}

	rep.Min, _ = h.GetMin()
	rep.Extracted, rep.ExtractOK = h.ExtractMin()
	fmt.Fprintf(w, "Extract Min: %d\n", rep.Extracted)

	rep.After = h.Values()
	fmt.Fprintf(w, "Heap after extract: %v\n", rep.After)

	rep.MinAfter, rep.MinAfterOK = h.GetMin()
	if rep.MinAfterOK {
		fmt.Fprintf(w, "Current Min: %d\n", rep.MinAfter)
	} else {
		fmt.Fprintln(w, "Current Min: none")
	}
	logger.Debug("extracted minimum", "min", rep.Extracted, "size", h.Len())
	return rep
}

func runTable(w io.Writer, cfg *config.Config, logger logging.Logger) (TableReport, error) {
	fmt.Fprintln(w, "\n--- Hash Table Demo ---")

	table, err := newTable(&cfg.HashTable)
	if err != nil {
		return TableReport{}, err
	}

	for _, e := range cfg.Demo.Entries {
		table.Insert(e.Key, e.Value)
		logger.Debug("inserted entry", "key", e.Key, "bucket", table.BucketIndex(e.Key))
	}

	rep := TableReport{Buckets: table.Size(), Before: table.String()}
	fmt.Fprint(w, rep.Before)

	for _, k := range cfg.Demo.LookupKeys {
		v, ok := table.Search(k)
		rep.Lookups = append(rep.Lookups, Lookup{Key: k, Value: v, Found: ok})
		if ok {
			fmt.Fprintf(w, "Search %q: %v\n", k, v)
		} else {
			fmt.Fprintf(w, "Search %q: not found\n", k)
		}
	}

	for _, k := range cfg.Demo.DeleteKeys {
		deleted := table.Delete(k)
		_, still := table.Search(k)
		rep.Deletions = append(rep.Deletions, Deletion{Key: k, Deleted: deleted, FoundAfter: still})
		fmt.Fprintf(w, "Delete %q: %t\n", k, deleted)
		if !deleted {
			logger.Warn("delete of absent key", "key", k)
		}
	}

	rep.After = table.String()
	fmt.Fprintln(w, "After deletions:")
	fmt.Fprint(w, rep.After)
	return rep, nil
}

func newTable(cfg *config.HashTableConfig) (*hashtable.Table[string, any], error) {
	var opts []hashtable.Option[string]
	if cfg.Hasher == "" || cfg.Hasher == config.HasherFNV {
		opts = append(opts, hashtable.WithHasher[string](hashtable.StringHasher))
	}
	return hashtable.New[string, any](cfg.Buckets, opts...)
}
