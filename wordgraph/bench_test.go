package wordgraph_test

import (
	"testing"

	"github.com/shaunhegarty/wordchain/wordgraph"
)

// benchWords is the full 4-letter cube over a 5-letter alphabet:
// 5⁴ = 625 words, each with 4·(5−1) = 16 neighbors.
var benchWords = cubeWords("abcde", 4)

// BenchmarkNew measures index construction, including the
// component-labelling sweep.
func BenchmarkNew(b *testing.B) {
	chars := 0
	for _, w := range benchWords {
		chars += len(w)
	}

	b.ReportAllocs()
	b.SetBytes(int64(chars))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = wordgraph.New(benchWords)
	}
}

// BenchmarkNeighbors measures a single neighbor lookup on a dense cube.
func BenchmarkNeighbors(b *testing.B) {
	ix := wordgraph.New(benchWords)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = ix.Neighbors("abcd")
	}
}

// BenchmarkNeighbors_Sparse measures lookups where buckets are tiny.
func BenchmarkNeighbors_Sparse(b *testing.B) {
	ix := wordgraph.New([]string{"bird", "bind", "bord", "bond", "bend", "bing", "bong", "sing", "song"})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = ix.Neighbors("bind")
	}
}
