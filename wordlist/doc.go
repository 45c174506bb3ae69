// Package wordlist reads and validates newline-separated word lists,
// producing vocabularies ready for wordgraph.New.
//
// What
//
//   - Read(r) scans one word per line from any io.Reader: trims
//     whitespace, lowercases, skips blank lines.
//   - ReadFile(path) does the same from a file on disk.
//   - Words must be ASCII letters only; anything else fails with
//     ErrNonAlphaWord naming the offending word.
//
// Why
//
//   - Dictionary files (one word per line, as in /usr/share/dict/words)
//     are the natural vocabulary source, and adjacency positions are
//     byte offsets — restricting input to a single-byte alphabet keeps
//     "one character" and "one byte" the same thing.
//
// Mixed word lengths are fine: the index partitions the vocabulary by
// length, and length agreement is checked per query by package chains.
//
// Usage
//
//	words, err := wordlist.ReadFile("words.txt")
//	if err != nil {
//	    // handle ErrNonAlphaWord or the underlying I/O error
//	}
//	ix := wordgraph.New(words)
package wordlist
