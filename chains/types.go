// Package chains provides tunable options and error definitions
// for minimal word-chain enumeration over a wordgraph.Index.
package chains

import (
	"errors"
	"fmt"
)

// Sentinel errors for chain enumeration.
var (
	// ErrNilIndex is returned if a nil index pointer is passed.
	ErrNilIndex = errors.New("chains: index is nil")

	// ErrEmptyWord is returned when the start or end word is empty.
	ErrEmptyWord = errors.New("chains: start and end words must be non-empty")

	// ErrLengthMismatch is returned when start and end differ in length;
	// substitution-only chains can never connect them.
	ErrLengthMismatch = errors.New("chains: start and end words differ in length")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("chains: invalid option supplied")
)

// Option configures chain enumeration via functional arguments.
// If an Option is invalid (e.g. negative limit), it will be recorded
// internally and surfaced as ErrOptionViolation when Find is invoked.
type Option func(*FindOptions)

// FindOptions holds parameters to customize chain enumeration.
type FindOptions struct {
	// MaxResults, if > 0, truncates the set of enumerated chains.
	// A value of 0 explicitly disables any limit.
	MaxResults int

	// MaxDepth, if > 0, stops searching beyond this many substitution
	// steps; a minimal chain longer than MaxDepth yields an empty
	// Result. A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a FindOptions with sane defaults:
//   - no result limit (MaxResults == 0)
//   - no depth limit (MaxDepth == 0)
//   - error channel clear.
func DefaultOptions() FindOptions {
	return FindOptions{
		MaxResults: 0,
		MaxDepth:   0,
		err:        nil,
	}
}

// WithMaxResults caps how many chains are enumerated. The truncation is
// deterministic: chains are produced in sorted-predecessor order, and
// enumeration stops as soon as the cap is reached rather than computing
// the full set and discarding.
//
//	n > 0: keep at most n chains
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxResults(n int) Option {
	return func(o *FindOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxResults cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no limit"
			o.MaxResults = 0
		default:
			o.MaxResults = n
		}
	}
}

// WithMaxDepth stops the search at the given number of steps.
//
//	d > 0: search no deeper than d substitutions
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *FindOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of one chain query:
//   - Start, End: the queried words, as given.
//   - Chains: every minimal chain from Start to End, each inclusive of
//     both endpoints; empty when no chain exists.
type Result struct {
	Start  string
	End    string
	Chains [][]string
}

// Count returns the number of chains found.
func (r *Result) Count() int {
	return len(r.Chains)
}

// Contains reports whether the exact chain appears in the result.
func (r *Result) Contains(chain []string) bool {
	for _, c := range r.Chains {
		if len(c) != len(chain) {
			continue
		}
		match := true
		for i := range c {
			if c[i] != chain[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}
