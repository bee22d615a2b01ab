package trie

import (
	"errors"
	"fmt"
)

// ErrEmptyWord is returned by Insert when a word is empty after canonicalization.
var ErrEmptyWord = errors.New("trie: empty word")

// LoadError reports a failure of a dictionary source. The trie returned
// alongside it holds every word read before the failure.
type LoadError struct {
	// Source names the dictionary, usually a file path.
	Source string
	// Lines is the number of lines consumed before the failure.
	Lines int
	Err   error
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("trie: loading dictionary after %d lines: %v", e.Lines, e.Err)
	}
	return fmt.Sprintf("trie: loading dictionary %q after %d lines: %v", e.Source, e.Lines, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
