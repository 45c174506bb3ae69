// Package wordgraph provides the adjacency index for word chains:
// it discovers which vocabulary words are exactly one character
// substitution apart, and answers neighbor, membership, and
// connectivity queries over that implicit graph.
//
// What
//
//   - Build an Index once from a word list with New.
//   - Neighbors(word) returns the exact set of vocabulary words that
//     share the word's length and differ in exactly one position —
//     no false positives, no false negatives.
//   - Contains, Len, Words, and WordsOfLength expose the vocabulary.
//   - Connected and Components expose the graph's connected components,
//     letting callers reject hopeless chain queries in O(1).
//
// Why
//
//   - Comparing every pair of words costs O(n²·L). Grouping words into
//     wildcard buckets (the word with one position masked) costs
//     O(n·L): two distinct equal-length words are neighbors if and only
//     if they share a bucket. This is the index's structural invariant
//     and the single most important algorithmic choice in the module.
//
// Determinism
//
//	Neighbors, Words, and WordsOfLength return sorted slices, so
//	iteration order — and everything built on top, including chain
//	enumeration order — is fully reproducible.
//
// Concurrency
//
//	New is the only writer. After it returns, the Index is immutable;
//	any number of goroutines may query it concurrently with no locking.
//
// Complexity (n = words, L = word length)
//
//   - Build:     O(n·L) time, O(n·L) memory
//   - Neighbors: O(L · matching bucket sizes)
//   - Contains:  O(1); Connected: O(1)
//
// Usage
//
//	ix := wordgraph.New([]string{"bird", "bind", "bord", "bond", "bong", "song"})
//	ix.Neighbors("bird")        // [bind bord]
//	ix.Contains("bond")         // true
//	ix.Connected("bird", "song") // true
//
// Errors
//
//	Construction and queries cannot fail: duplicate input words bucket
//	once, mixed lengths partition naturally, and a zero-length word
//	simply has no neighbors. Chain-level validation lives in package
//	chains.
package wordgraph
