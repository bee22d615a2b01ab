package trie

import (
	"bufio"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"
)

// WordSource is a sequence of dictionary lines, one word per line.
// *bufio.Scanner satisfies it.
type WordSource interface {
	Scan() bool
	Text() string
	Err() error
}

type loader struct {
	log    logr.Logger
	source string
}

// LoadOption configures how a dictionary is loaded.
type LoadOption func(l *loader)

// WithLogger sets the logger receiving load progress. Summaries are logged at
// V(1), skipped lines at V(2).
func WithLogger(log logr.Logger) LoadOption {
	return func(l *loader) {
		l.log = log
	}
}

// WithSourceName names the source in log lines and in a LoadError.
func WithSourceName(name string) LoadOption {
	return func(l *loader) {
		l.source = name
	}
}

func newLoader(opts []LoadOption) *loader {
	l := &loader{log: logr.Discard()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FromWordSource creates a Trie holding every non-blank line of src. If src
// fails, the words read so far are kept and a *LoadError is returned along
// with the partial Trie.
func FromWordSource(src WordSource, opts ...LoadOption) (*Trie, error) {
	t := New()
	_, err := t.Load(src, opts...)
	return t, err
}

// FromReader is FromWordSource over the lines of r.
func FromReader(r io.Reader, opts ...LoadOption) (*Trie, error) {
	return FromWordSource(bufio.NewScanner(r), opts...)
}

// FromFile loads the dictionary at path on fs. A file that cannot be opened
// yields an empty Trie and a *LoadError.
func FromFile(fs afero.Fs, path string, opts ...LoadOption) (*Trie, error) {
	t := New()
	_, err := t.LoadFile(fs, path, opts...)
	return t, err
}

// LoadFile is Load over the lines of the file at path on fs.
func (t *Trie) LoadFile(fs afero.Fs, path string, opts ...LoadOption) (int, error) {
	f, err := fs.Open(path)
	if err != nil {
		return 0, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	opts = append([]LoadOption{WithSourceName(path)}, opts...)
	return t.Load(bufio.NewScanner(f), opts...)
}

// Load inserts every non-blank line of src into t, surrounding whitespace
// trimmed, and returns the number of words that were new. On a source failure
// the words inserted so far stay in t and a *LoadError is returned.
func (t *Trie) Load(src WordSource, opts ...LoadOption) (int, error) {
	l := newLoader(opts)
	added, lines := 0, 0
	for src.Scan() {
		lines++
		word := strings.TrimSpace(src.Text())
		if word == "" {
			l.log.V(2).Info("skipping blank line", "source", l.source, "line", lines)
			continue
		}
		isNew, err := t.Insert(word)
		if err != nil {
			l.log.V(2).Info("skipping line", "source", l.source, "line", lines, "reason", err.Error())
			continue
		}
		if isNew {
			added++
		}
	}
	if err := src.Err(); err != nil {
		return added, &LoadError{Source: l.source, Lines: lines, Err: err}
	}
	l.log.V(1).Info("loaded dictionary", "source", l.source, "lines", lines, "added", added, "words", t.Len())
	return added, nil
}
