package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyList(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrEmpty)

	_, err = New([]string{"", "  "})
	require.ErrorIs(t, err, ErrEmpty)
}

func TestIsValidCaseInsensitive(t *testing.T) {
	d, err := New([]string{"cat", "Bean", "dog"})
	require.NoError(t, err)

	tests := []struct {
		word     string
		expected bool
	}{
		{"cat", true},
		{"CAT", true},
		{"Cat", true},
		{"bean", true},
		{"BEAN", true},
		{"dog", true},
		{"cow", false},
		{"ca", false},
		{"cats", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.expected, d.IsValid(tt.word), "IsValid(%q)", tt.word)
	}
}

func TestEveryInsertedWordIsValid(t *testing.T) {
	words := []string{"zebra", "apple", "mango", "kiwi", "fig", "date", "pear"}
	d, err := New(words)
	require.NoError(t, err)

	for _, w := range words {
		assert.Truef(t, d.IsValid(w), "IsValid(%q) should be true", w)
	}
	for _, w := range []string{"aardvark", "zzz", "mangos", "figs", "apricot"} {
		assert.Falsef(t, d.IsValid(w), "IsValid(%q) should be false", w)
	}
}

func TestWordsAreSortedAndDeduplicated(t *testing.T) {
	d, err := New([]string{"pear", "apple", "Pear", "fig"})
	require.NoError(t, err)

	assert.Equal(t, []string{"apple", "fig", "pear"}, d.Words())
	assert.Equal(t, 3, d.Len())
}

func TestNilDictionary(t *testing.T) {
	var d *Dictionary
	assert.False(t, d.IsValid("cat"))
	assert.Zero(t, d.Len())
}

func TestDefaultDictionary(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	assert.Greater(t, d.Len(), 1000)
	for _, w := range []string{"cat", "bean", "word", "zebra", "tea"} {
		assert.Truef(t, d.IsValid(w), "embedded list should contain %q", w)
	}
	for _, w := range d.Words() {
		assert.Len(t, Normalize([]string{w}), 1, "embedded word %q should already be normalized", w)
	}
}

func TestLoadSkipsBlankAndCommentLines(t *testing.T) {
	d, err := Load(strings.NewReader("# header\n\ncat\n  dog  \n\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"cat", "dog"}, d.Words())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("ant\nbee\n"), 0o600))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, d.IsValid("bee"))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = LoadFile(empty)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestNormalize(t *testing.T) {
	raw := []string{"cat", "a", "it", "Bean", "beans", "trees!", "longer", "don't", "cat", "ox", "sky"}
	assert.Equal(t, []string{"cat", "beans", "sky"}, Normalize(raw))
}
