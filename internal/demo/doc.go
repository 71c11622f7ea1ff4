// Package demo replays the reference demonstration against the trie, heap
// and hash table packages.
//
// Run executes each step in order, echoes intermediate states to a writer
// and returns a Report with every observed result, so callers and tests can
// inspect outcomes without parsing console output. RenderSummary prints a
// Report as a table.
package demo
