package trie

import "slices"

// node is a node in a Trie. label is the full string spelled by the path from
// the root, edges holds the keys of children in ascending order and terminal
// marks the end of a stored word.
type node struct {
	label    string
	children map[rune]*node
	edges    []rune
	terminal bool
}

func newNode(label string) *node {
	return &node{label: label, children: make(map[rune]*node)}
}

// child returns the child reached by character, creating it when absent.
func (n *node) child(character rune) *node {
	if next, ok := n.children[character]; ok {
		return next
	}
	next := newNode(n.label + string(character))
	n.children[character] = next
	i, _ := slices.BinarySearch(n.edges, character)
	n.edges = slices.Insert(n.edges, i, character)
	return next
}

// find follows word from n one rune at a time and returns nil as soon as an
// edge is missing.
func (n *node) find(word string) *node {
	current := n
	for _, character := range word {
		next, ok := current.children[character]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}
