// Package dictionary holds the immutable word list used to recognise words on
// the board. Lookups are case-insensitive binary searches over a sorted slice.
package dictionary

import (
	"errors"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// ErrEmpty is returned when a dictionary would be built from no words.
var ErrEmpty = errors.New("dictionary: word list is empty")

// Dictionary is a sorted, read-only word list. It is safe for concurrent use.
type Dictionary struct {
	words []string
}

// New builds a dictionary from words. Entries are lowercased, sorted and
// deduplicated; the caller's slice is not retained.
func New(words []string) (*Dictionary, error) {
	normalized := lo.Uniq(lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = strings.ToLower(strings.TrimSpace(w))
		return w, w != ""
	}))
	if len(normalized) == 0 {
		return nil, ErrEmpty
	}
	sort.Strings(normalized)

	return &Dictionary{words: normalized}, nil
}

// IsValid reports whether word is in the dictionary, ignoring case.
func (d *Dictionary) IsValid(word string) bool {
	if d == nil || word == "" {
		return false
	}
	word = strings.ToLower(word)

	i := sort.SearchStrings(d.words, word)
	return i < len(d.words) && d.words[i] == word
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Words returns a copy of the sorted word list.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}
