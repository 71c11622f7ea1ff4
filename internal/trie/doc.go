// Package trie implements a prefix tree keyed by runes.
//
// # Overview
//
// Shared prefixes share a path from the root:
//
//	Root
//	 ├─ a
//	 │   └─ p
//	 │       └─ p*        "app"
//	 │           └─ l
//	 │               └─ e*  "apple"
//	 └─ b
//	     └─ a ─ n ─ a ─ n ─ a*  "banana"
//
// Nodes marked * terminate an inserted word. Every operation walks at most
// len(word) nodes, independent of how many words are stored.
//
// # Usage
//
//	t := trie.New()
//	t.Insert("apple")
//	t.Insert("app")
//
//	t.Search("apple")     // true
//	t.Search("appl")      // false
//	t.StartsWith("appl")  // true
//	t.WordsWithPrefix("ap") // ["app", "apple"]
//
// Nodes are never removed. A Trie is not safe for concurrent use.
package trie
