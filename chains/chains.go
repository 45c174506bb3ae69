// Package chains enumerates all minimal word chains between two words
// over a wordgraph.Index, using a level-synchronized breadth-first
// search that retains every predecessor of every discovered word.
package chains

import (
	"fmt"
	"sort"

	"github.com/shaunhegarty/wordchain/wordgraph"
)

// walker encapsulates mutable search state for one Find call.
type walker struct {
	idx  *wordgraph.Index
	opts FindOptions

	// dist freezes each word at the level it was first discovered;
	// a frozen word is never revisited, which rules out cycles and
	// bounds the search to one visit per vocabulary word.
	dist map[string]int

	// preds maps each discovered word to ALL words one level closer to
	// the start that reach it. A single back-pointer would reconstruct
	// one minimal chain; the full list is what makes every minimal
	// chain enumerable.
	preds map[string][]string
}

// Find returns every minimal chain from start to end, where each step
// substitutes exactly one character and every intermediate word belongs
// to the index's vocabulary. Neither endpoint is required to be a
// vocabulary member: Neighbors is answerable for any word, so an
// out-of-vocabulary start can still anchor chains, while an unreachable
// endpoint simply produces an empty Result — absence of a chain is a
// value, never an error.
//
// Find(ix, w, w) returns the single one-word chain [w].
//
// Returns ErrNilIndex, ErrEmptyWord, or ErrLengthMismatch for invalid
// input, and ErrOptionViolation for bad options; all are detected
// before any search begins.
func Find(idx *wordgraph.Index, start, end string, opts ...Option) (*Result, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start == "" || end == "" {
		return nil, ErrEmptyWord
	}
	if len(start) != len(end) {
		return nil, fmt.Errorf("%w: %q vs %q", ErrLengthMismatch, start, end)
	}

	res := &Result{Start: start, End: end}
	if start == end {
		res.Chains = [][]string{{start}}
		return res, nil
	}
	// Component labels make the hopeless case O(1).
	if idx.Contains(start) && idx.Contains(end) && !idx.Connected(start, end) {
		return res, nil
	}

	w := &walker{
		idx:   idx,
		opts:  o,
		dist:  make(map[string]int, idx.Len()),
		preds: make(map[string][]string, idx.Len()),
	}
	if w.search(start, end) {
		res.Chains = w.reconstruct(start, end)
	}

	return res, nil
}

// search runs the level-synchronized BFS from start. It returns true
// once end has been discovered at its minimal distance, with w.preds
// holding every predecessor of every discovered word.
func (w *walker) search(start, end string) bool {
	w.dist[start] = 0
	frontier := []string{start}
	// A chain visits each vocabulary word at most once, so any minimal
	// distance fits within Len()+1 levels. The bound is defensive; the
	// no-revisit rule already guarantees termination.
	limit := w.idx.Len() + 1

	for depth := 1; len(frontier) > 0 && depth <= limit; depth++ {
		if w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth {
			return false
		}
		next := make(map[string]struct{})
		for _, word := range frontier {
			for _, nbr := range w.idx.Neighbors(word) {
				if _, frozen := w.dist[nbr]; frozen {
					continue // first discovery was its minimal distance
				}
				// Frontier is sorted and Neighbors is sorted, so each
				// predecessor list comes out sorted without extra work.
				w.preds[nbr] = append(w.preds[nbr], word)
				next[nbr] = struct{}{}
			}
		}
		if len(next) == 0 {
			return false
		}
		for word := range next {
			w.dist[word] = depth
		}
		if _, found := next[end]; found {
			return true
		}
		frontier = frontier[:0]
		for word := range next {
			frontier = append(frontier, word)
		}
		sort.Strings(frontier)
	}

	return false
}

// reconstruct walks backward from end to start through the predecessor
// lists, emitting the Cartesian expansion of predecessor choices at
// every level. Each distinct backward walk is one chain; the forward
// chain is the reversed walk. Enumeration order follows the sorted
// predecessor lists, and stops as soon as MaxResults is reached.
func (w *walker) reconstruct(start, end string) [][]string {
	var out [][]string
	var walk func(word string, tail []string) bool
	walk = func(word string, tail []string) bool {
		tail = append(tail, word)
		if word == start {
			chain := make([]string, len(tail))
			for i, j := 0, len(tail)-1; j >= 0; i, j = i+1, j-1 {
				chain[i] = tail[j]
			}
			out = append(out, chain)

			return w.opts.MaxResults == 0 || len(out) < w.opts.MaxResults
		}
		for _, p := range w.preds[word] {
			if !walk(p, tail) {
				return false
			}
		}

		return true
	}
	walk(end, make([]string, 0, w.dist[end]+1))

	return out
}
