package wordgraph_test

import (
	"fmt"

	"github.com/shaunhegarty/wordchain/wordgraph"
)

// ExampleIndex_Neighbors shows neighbor discovery over a small
// vocabulary: bird can step to bind (r→n) or bord (i→o), nothing else.
func ExampleIndex_Neighbors() {
	ix := wordgraph.New([]string{"bird", "bind", "bord", "bond", "bong", "song"})

	fmt.Println(ix.Neighbors("bird"))
	fmt.Println(ix.Neighbors("bond"))
	// Output:
	// [bind bord]
	// [bind bong bord]
}

// ExampleIndex_Connected shows the O(1) connectivity check: bird can
// eventually reach song, but cat and dog have no connecting words.
func ExampleIndex_Connected() {
	ix := wordgraph.New([]string{"bird", "bind", "bord", "bond", "bong", "song", "cat", "dog"})

	fmt.Println(ix.Connected("bird", "song"))
	fmt.Println(ix.Connected("cat", "dog"))
	fmt.Println(ix.Components())
	// Output:
	// true
	// false
	// 3
}
