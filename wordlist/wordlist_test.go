package wordlist_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shaunhegarty/wordchain/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRead_TrimsLowercasesAndSkipsBlanks verifies line handling.
func TestRead_TrimsLowercasesAndSkipsBlanks(t *testing.T) {
	in := "bird\n  Bind\n\n\tBORD\nsong\n"

	words, err := wordlist.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"bird", "bind", "bord", "song"}, words)
}

// TestRead_RejectsNonAlpha: anything outside a–z fails with the
// offending word in the message.
func TestRead_RejectsNonAlpha(t *testing.T) {
	_, err := wordlist.Read(strings.NewReader("bird\ndon't\nsong\n"))
	assert.ErrorIs(t, err, wordlist.ErrNonAlphaWord)
	assert.Contains(t, err.Error(), "don't")

	_, err = wordlist.Read(strings.NewReader("word1\n"))
	assert.ErrorIs(t, err, wordlist.ErrNonAlphaWord)
}

// TestRead_Empty yields an empty word list, not an error.
func TestRead_Empty(t *testing.T) {
	words, err := wordlist.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, words)
}

// TestReadFile round-trips a list through disk.
func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ncot\ncog\ndog\n"), 0o600))

	words, err := wordlist.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cot", "cog", "dog"}, words)
}

// TestReadFile_Missing surfaces the underlying open error.
func TestReadFile_Missing(t *testing.T) {
	_, err := wordlist.ReadFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
