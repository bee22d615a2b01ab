/*
Package trie provides a case-insensitive dictionary of words stored in a
prefix tree. It answers membership queries and produces bounded,
breadth-first autocompletions for a prefix, and can be bulk-loaded from any
line-oriented word source.
*/
package trie
