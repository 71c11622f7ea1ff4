package trie

// Trie is a prefix tree over runes.
type Trie struct {
	root  *Node
	count int
}

// New creates an empty Trie with a fresh root node.
func New() *Trie {
	return &Trie{
		root: NewNode(),
	}
}

// Root returns the root node of the trie.
func (t *Trie) Root() *Node {
	return t.root
}

// Insert adds word to the trie, allocating nodes for any unseen prefix.
// Inserting a word twice has no further effect.
func (t *Trie) Insert(word string) {
	node := t.root
	for _, r := range word {
		node = node.childOrCreate(r)
	}
	if !node.IsEnd {
		node.IsEnd = true
		t.count++
	}
}

// Search reports whether word was inserted exactly.
func (t *Trie) Search(word string) bool {
	node := t.walk(word)
	return node != nil && node.IsEnd
}

// StartsWith reports whether prefix is a path from the root, regardless of
// whether any word ends there.
func (t *Trie) StartsWith(prefix string) bool {
	return t.walk(prefix) != nil
}

// WordsWithPrefix returns all inserted words beginning with prefix, in
// ascending rune order. It returns nil if no word has that prefix.
func (t *Trie) WordsWithPrefix(prefix string) []string {
	node := t.walk(prefix)
	if node == nil {
		return nil
	}

	var results []string
	collect(node, []rune(prefix), &results)
	return results
}

// Len returns the number of distinct words inserted.
func (t *Trie) Len() int {
	return t.count
}

// walk follows s from the root and returns the node reached, or nil if
// some rune of s has no child.
func (t *Trie) walk(s string) *Node {
	node := t.root
	for _, r := range s {
		node = node.Child(r)
		if node == nil {
			return nil
		}
	}
	return node
}

// collect appends every word below node to results in depth-first,
// rune-sorted order. path holds the runes leading to node.
func collect(node *Node, path []rune, results *[]string) {
	if node.IsEnd {
		*results = append(*results, string(path))
	}
	for _, r := range node.sortedRunes() {
		collect(node.Children[r], append(path, r), results)
	}
}
