// Package letters draws weighted random letters for new tiles.
package letters

import (
	"errors"
	"fmt"
	"sort"
)

// UpperBound is the total of all letter weights in the default table.
const UpperBound = 10000

// ErrBadWeights is returned for weight tables that cannot be resolved.
var ErrBadWeights = errors.New("letters: invalid weight table")

// DefaultWeights approximates English letter frequency, in hundredths of a percent.
var DefaultWeights = map[rune]int{
	'a': 817, 'b': 149, 'c': 278, 'd': 425, 'e': 1268, 'f': 223, 'g': 202,
	'h': 609, 'i': 697, 'j': 15, 'k': 77, 'l': 403, 'm': 241, 'n': 675,
	'o': 751, 'p': 193, 'q': 10, 'r': 599, 's': 633, 't': 906, 'u': 276,
	'v': 98, 'w': 236, 'x': 15, 'y': 197, 'z': 7,
}

// Table maps draws in [0, upper) to letters through cumulative weights.
type Table struct {
	bounds  []int // cumulative weight, ascending
	letters []rune
	upper   int
}

// NewTable builds a cumulative table. Letters are ordered alphabetically and
// the weights must be non-negative and sum to upper.
func NewTable(weights map[rune]int, upper int) (*Table, error) {
	if upper <= 0 {
		return nil, fmt.Errorf("%w: upper bound %d", ErrBadWeights, upper)
	}

	letters := make([]rune, 0, len(weights))
	for r, w := range weights {
		if r < 'a' || r > 'z' {
			return nil, fmt.Errorf("%w: %q is not a lowercase letter", ErrBadWeights, r)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight for %q", ErrBadWeights, r)
		}
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	t := &Table{
		bounds:  make([]int, len(letters)),
		letters: letters,
		upper:   upper,
	}
	total := 0
	for i, r := range letters {
		total += weights[r]
		t.bounds[i] = total
	}
	if total != upper {
		return nil, fmt.Errorf("%w: weights sum to %d, want %d", ErrBadWeights, total, upper)
	}

	return t, nil
}

// DefaultTable returns the table for DefaultWeights.
func DefaultTable() *Table {
	t, err := NewTable(DefaultWeights, UpperBound)
	if err != nil {
		panic(err)
	}
	return t
}

// Upper returns the exclusive upper bound of valid draws.
func (t *Table) Upper() int {
	return t.upper
}

// Resolve returns the letter with the smallest cumulative bound >= draw.
// Draws outside [0, upper) are clamped.
func (t *Table) Resolve(draw int) rune {
	if draw < 0 {
		draw = 0
	}
	i := sort.SearchInts(t.bounds, draw)
	if i >= len(t.letters) {
		i = len(t.letters) - 1
	}
	return t.letters[i]
}
