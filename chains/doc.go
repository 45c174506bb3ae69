// Package chains enumerates minimal word chains over a wordgraph.Index:
// every shortest sequence of one-character substitutions connecting a
// start word to an end word through the vocabulary.
//
// What
//
//   - Find(idx, start, end) returns a Result whose Chains field holds
//     EVERY minimal chain, each inclusive of both endpoints:
//
//     bird → bord → bond → bong → song
//     bird → bind → bond → bong → song
//     bird → bind → bing → bong → song
//     bird → bind → bing → sing → song
//
//   - Result offers Count and Contains for inspection.
//   - Functional options tune one call at a time:
//   - WithMaxResults(n): deterministic truncation of the chain set
//   - WithMaxDepth(d):   give up beyond d substitution steps
//
// Why
//
//   - A standard BFS records one parent per word and reconstructs one
//     shortest path. Word puzzles want all of them, so the search here
//     retains the full predecessor set at every level and expands the
//     Cartesian product of choices on the walk back — the bird→song
//     vocabulary above genuinely has four distinct minimal chains.
//
// Determinism
//
//	Frontiers and predecessor lists are kept sorted, so Chains always
//	come out in the same order, and WithMaxResults always keeps the
//	same prefix of that order.
//
// Policy
//
//   - Find(idx, w, w) yields the single one-word chain [w]: a
//     zero-step chain exists from every word to itself.
//   - Endpoints need not be vocabulary members. Chains are anchored by
//     neighbor lookups, which are answerable for any word; an endpoint
//     nothing connects to produces an empty Result, not an error.
//   - NotFound is a value: absent endpoints, disconnected components,
//     and exhausted depth limits all return an empty Result and a nil
//     error. Only caller mistakes (nil index, empty words, mismatched
//     lengths, bad options) are errors, and they are detected before
//     the search begins.
//
// Complexity (n = vocabulary size, L = word length)
//
//   - Search: O(n·L) word visits — each word freezes at its first level
//   - Memory: O(n) for distances and predecessor lists, plus the chains
//     themselves (the Cartesian expansion can be combinatorial, which
//     is exactly what WithMaxResults bounds)
//
// Usage
//
//	ix := wordgraph.New(words)
//	res, err := chains.Find(ix, "bird", "song")
//	if err != nil {
//	    // handle one of:
//	    // ErrNilIndex, ErrEmptyWord, ErrLengthMismatch, ErrOptionViolation
//	}
//	for _, chain := range res.Chains {
//	    fmt.Println(strings.Join(chain, " → "))
//	}
//
// Errors
//
//   - ErrNilIndex        if the index pointer is nil.
//   - ErrEmptyWord       if start or end is the empty string.
//   - ErrLengthMismatch  if start and end differ in length.
//   - ErrOptionViolation if an invalid Option (e.g. negative limit) is supplied.
package chains
