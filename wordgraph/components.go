package wordgraph

import "sort"

// labelComponents assigns every vocabulary word a component label via a
// BFS sweep over the one-substitution graph. Runs once, from New; the
// labels are read-only afterwards.
//
// Time:   O(total characters), each word and bucket visited once.
// Memory: O(vocabulary size) for labels and queue.
func (ix *Index) labelComponents() {
	ix.comp = make(map[string]int, len(ix.words))
	// Sorted seed order keeps component numbering reproducible.
	seeds := make([]string, 0, len(ix.words))
	for w := range ix.words {
		seeds = append(seeds, w)
	}
	sort.Strings(seeds)

	for _, seed := range seeds {
		if _, done := ix.comp[seed]; done {
			continue
		}
		ix.compCount++
		queue := []string{seed}
		ix.comp[seed] = ix.compCount
		for qi := 0; qi < len(queue); qi++ {
			for _, nbr := range ix.Neighbors(queue[qi]) {
				if _, done := ix.comp[nbr]; done {
					continue
				}
				ix.comp[nbr] = ix.compCount
				queue = append(queue, nbr)
			}
		}
	}
}

// Connected reports whether a and b are vocabulary members joined by
// some sequence of one-substitution steps. False whenever either word
// is outside the vocabulary. Connected(w, w) is true for any member w.
func (ix *Index) Connected(a, b string) bool {
	ca, ok := ix.comp[a]
	if !ok {
		return false
	}
	cb, ok := ix.comp[b]

	return ok && ca == cb
}

// Components returns the number of connected components in the
// vocabulary graph (isolated words count as their own component).
func (ix *Index) Components() int {
	return ix.compCount
}
