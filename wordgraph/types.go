// Package wordgraph defines the Index type and sentinel errors
// for the wordgraph subpackage of github.com/shaunhegarty/wordchain.
package wordgraph

// bucketKey identifies one wildcard bucket: all words of the same length
// whose bytes agree everywhere except at position pos.
//
// rest holds the word with the byte at pos removed, so the key is
// comparable and collision-free for arbitrary byte content — no wildcard
// marker character can ever clash with vocabulary text.
type bucketKey struct {
	pos  int
	rest string
}

// Index answers one-substitution adjacency queries over a fixed
// vocabulary. It is immutable once built: New is the only writer, every
// method afterwards is read-only, so an Index may be shared by any
// number of goroutines without locking.
type Index struct {
	// words is the deduplicated vocabulary.
	words map[string]struct{}

	// buckets maps each wildcard pattern to the words matching it.
	// Two distinct equal-length words are neighbors iff they share
	// at least one bucket.
	buckets map[bucketKey][]string

	// comp assigns every vocabulary word a connected-component label;
	// words in different components can never be chained together.
	comp map[string]int

	// compCount is the number of distinct component labels.
	compCount int
}

// keyAt returns the bucket key of word with a wildcard at position i.
func keyAt(word string, i int) bucketKey {
	return bucketKey{pos: i, rest: word[:i] + word[i+1:]}
}
