package trie

import "slices"

// Node is a single trie node. Each child is owned by exactly one parent.
type Node struct {
	// Children maps the next rune of a word to the node that continues it.
	Children map[rune]*Node

	// IsEnd is true when the path from the root to this node spells an
	// inserted word.
	IsEnd bool
}

// NewNode creates an empty, non-terminal node.
func NewNode() *Node {
	return &Node{
		Children: make(map[rune]*Node),
		IsEnd:    false,
	}
}

// Child returns the child for r, or nil if there is none.
func (n *Node) Child(r rune) *Node {
	return n.Children[r]
}

// childOrCreate returns the child for r, allocating it if missing.
func (n *Node) childOrCreate(r rune) *Node {
	child, exists := n.Children[r]
	if !exists {
		child = NewNode()
		n.Children[r] = child
	}
	return child
}

// IsLeaf returns true if this node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.Children)
}

// sortedRunes returns the child keys in ascending order.
func (n *Node) sortedRunes() []rune {
	runes := make([]rune, 0, len(n.Children))
	for r := range n.Children {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return runes
}
