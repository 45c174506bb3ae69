// Package wordgraph provides the adjacency index for word chains:
// given a vocabulary, it answers which words are exactly one character
// substitution apart, without comparing every pair.
package wordgraph

import "sort"

// New builds an Index over words. The input may contain duplicates
// (bucketed once) and mixed lengths (words partition by length — a
// bucket key encodes both position and remaining bytes, so words of
// different lengths never share a bucket). Zero-length words carry no
// buckets and therefore no neighbors; they are accepted, not rejected.
//
// Time: O(total characters across the vocabulary).
// Memory: O(total characters) for the buckets.
func New(words []string) *Index {
	ix := &Index{
		words:   make(map[string]struct{}, len(words)),
		buckets: make(map[bucketKey][]string),
	}
	for _, w := range words {
		if _, dup := ix.words[w]; dup {
			continue
		}
		ix.words[w] = struct{}{}
		for i := 0; i < len(w); i++ {
			k := keyAt(w, i)
			ix.buckets[k] = append(ix.buckets[k], w)
		}
	}
	ix.labelComponents()

	return ix
}

// Neighbors returns every vocabulary word that differs from word in
// exactly one byte position, sorted ascending. The query word need not
// be a vocabulary member; it is never part of its own result. A word of
// length 0 has no neighbors.
//
// Time: O(L · bucket sizes), where L = len(word).
func (ix *Index) Neighbors(word string) []string {
	if len(word) == 0 {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for i := 0; i < len(word); i++ {
		for _, w := range ix.buckets[keyAt(word, i)] {
			if w == word {
				continue
			}
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	sort.Strings(out)

	return out
}

// Contains reports whether word is a vocabulary member.
func (ix *Index) Contains(word string) bool {
	_, ok := ix.words[word]
	return ok
}

// Len returns the number of distinct vocabulary words.
func (ix *Index) Len() int {
	return len(ix.words)
}

// Words returns the vocabulary, sorted ascending. The slice is a copy;
// callers may mutate it freely.
func (ix *Index) Words() []string {
	out := make([]string, 0, len(ix.words))
	for w := range ix.words {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// WordsOfLength returns the sorted vocabulary words of length n — the
// partition within which chains can exist. Empty if no word has that
// length.
func (ix *Index) WordsOfLength(n int) []string {
	var out []string
	for w := range ix.words {
		if len(w) == n {
			out = append(out, w)
		}
	}
	sort.Strings(out)

	return out
}
