package trie

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Trie is a dictionary of words stored by their common prefixes. It supports
// membership tests and breadth-first prefix completion.
//
// A Trie does no locking. Any Insert or Load must be serialised with every
// other call by the caller; Contains, HasPrefix, Complete and Len may run
// concurrently with each other.
type Trie struct {
	root       *node
	words      int
	normalised bool
}

// New creates a new empty trie. Words are compared case-insensitively and
// normalisation is off.
func New() *Trie {
	t := new(Trie)
	t.root = newNode("")
	t.WithoutNormalisation()
	return t
}

// WithNormalisation makes the Trie strip diacritics before storing or looking up
// words, so Jurg will find Jürgen and Jürg will find Jurgen.
// It has no effect once the Trie holds words.
func (t *Trie) WithNormalisation() *Trie {
	if t.words == 0 {
		t.normalised = true
	}
	return t
}

// WithoutNormalisation sets the Trie to store words with their diacritics.
// It has no effect once the Trie holds words.
func (t *Trie) WithoutNormalisation() *Trie {
	if t.words == 0 {
		t.normalised = false
	}
	return t
}

// canonical returns the form under which word is stored. Runes are lowered one
// at a time so the canonical form of a prefix is a prefix of the canonical form
// of the word.
func (t *Trie) canonical(word string) string {
	var transformer transform.Transformer = runes.Map(unicode.ToLower)
	if t.normalised {
		transformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, transformer)
	}
	canonical, _, err := transform.String(transformer, word)
	if err != nil {
		return strings.ToLower(word)
	}
	return canonical
}

// Insert adds word to the Trie. It reports true if the word was not stored
// before and false if it is a duplicate. A word that is empty after
// canonicalization is rejected with ErrEmptyWord.
func (t *Trie) Insert(word string) (bool, error) {
	word = t.canonical(word)
	if len(word) == 0 {
		return false, ErrEmptyWord
	}
	currentNode := t.root
	for _, character := range word {
		currentNode = currentNode.child(character)
	}
	if currentNode.terminal {
		return false, nil
	}
	currentNode.terminal = true
	t.words++
	return true, nil
}

// Contains reports whether word is a complete word in the Trie. A word that is
// only a prefix of stored words is not contained.
func (t *Trie) Contains(word string) bool {
	n := t.root.find(t.canonical(word))
	return n != nil && n.terminal
}

// HasPrefix reports whether any stored word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	n := t.root.find(t.canonical(prefix))
	if n == nil {
		return false
	}
	return n.terminal || len(n.edges) > 0
}

// Complete returns at most limit words that start with prefix, including prefix
// itself when it is a word. Words are returned level by level, shorter words
// first and in ascending character order within a level. Traversal stops as
// soon as limit words are collected. A limit of zero or less returns no words.
func (t *Trie) Complete(prefix string, limit int) []string {
	completions := []string{}
	if limit <= 0 {
		return completions
	}
	start := t.root.find(t.canonical(prefix))
	if start == nil {
		return completions
	}
	queue := []*node{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.terminal {
			completions = append(completions, current.label)
			if len(completions) == limit {
				return completions
			}
		}
		for _, character := range current.edges {
			queue = append(queue, current.children[character])
		}
	}
	return completions
}

// Len returns the number of words in the Trie.
func (t *Trie) Len() int {
	return t.words
}
