// Package wordchain builds word chains (word ladders): sequences of
// equal-length vocabulary words where each step changes exactly one
// letter, such as bird → bord → bond → bong → song.
//
// 🚀 What is wordchain?
//
//	A small, pure-Go library that brings together:
//		• Adjacency index: wildcard-bucket neighbor discovery in O(n·L),
//		  no pairwise comparison
//		• Chain search: level-synchronized BFS that enumerates ALL
//		  minimal chains between two words, not just one
//		• Word lists: newline-separated dictionary loading with
//		  letters-only validation
//
// ✨ Why choose wordchain?
//
//   - Minimal API – build an index once, query it as often as you like
//   - Deterministic – sorted neighbor and chain enumeration order
//   - Pure Go – no cgo, no hidden deps
//   - Safe sharing – the index is immutable after construction, so any
//     number of goroutines may query it concurrently without locks
//
// Everything is organized under three subpackages:
//
//	wordgraph/ — the adjacency index: neighbors, membership, components
//	chains/    — minimal-chain enumeration between a start and end word
//	wordlist/  — reading and validating word lists from files or readers
//
// Quick ASCII example:
//
//	    bird───bind───bing───sing
//	      │      │      │      │
//	    bord───bond───bong───song
//
//	four distinct minimal chains connect bird to song.
//
// Dive into the examples/ directory and each package's doc.go for full
// usage, complexity notes, and error semantics.
//
//	go get github.com/shaunhegarty/wordchain
package wordchain
