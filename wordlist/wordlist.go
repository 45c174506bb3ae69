// Package wordlist reads newline-separated word lists for use as
// chain vocabularies.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNonAlphaWord is returned when a word contains anything other than
// ASCII letters; one-substitution adjacency assumes single-byte
// alphabet positions.
var ErrNonAlphaWord = errors.New("wordlist: words must contain letters only")

// Read collects words from r, one per line. Lines are trimmed of
// surrounding whitespace, lowercased, and blank lines are skipped.
// A word containing any byte outside a–z after lowercasing fails with
// ErrNonAlphaWord wrapping the offending word.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if !isAlpha(word) {
			return nil, fmt.Errorf("%w: %q", ErrNonAlphaWord, word)
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read: %w", err)
	}

	return words, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// isAlpha reports whether every byte of word is an ASCII lowercase letter.
func isAlpha(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}

	return true
}
